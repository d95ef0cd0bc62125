package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"motioncat/internal/anim"
)

const (
	repeatTag       = "repeat"
	repeatHalfCycle = 600 * time.Millisecond
	repeatHold      = 250 * time.Millisecond
)

// repeatPhase is the pulse loop's current leg.
type repeatPhase int

const (
	pulseGrow repeatPhase = iota
	pulseShrink
	pulseHold
)

// repeatView pulses a box forever: grow, shrink, hold, repeat. Enter
// pauses and resumes the loop.
type repeatView struct {
	env exampleEnv

	phase    repeatPhase
	progress *anim.Tween // 0 = smallest, 1 = largest
	holdEnd  time.Time
	paused   bool
	pausedAt float64 // progress frozen at pause time
}

var _ View = (*repeatView)(nil)

func newRepeatView(env exampleEnv) *repeatView {
	v := &repeatView{env: env}
	v.startPhase(pulseGrow, 0, time.Now())
	return v
}

// startPhase arms the tween (or hold window) for the given leg, starting
// the animated value from cur.
func (v *repeatView) startPhase(p repeatPhase, cur float64, now time.Time) {
	v.phase = p
	switch p {
	case pulseGrow:
		v.progress = anim.NewTween(cur, 1, v.env.dur(repeatHalfCycle), anim.EaseInOut)
		v.progress.Start(now)
	case pulseShrink:
		v.progress = anim.NewTween(cur, 0, v.env.dur(repeatHalfCycle), anim.EaseInOut)
		v.progress.Start(now)
	case pulseHold:
		v.holdEnd = now.Add(repeatHold)
	}
}

// Init implements View.
func (v *repeatView) Init() tea.Cmd {
	return v.env.Clock.Frame(repeatTag)
}

// Update implements View.
func (v *repeatView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			v.paused = !v.paused
			if v.paused {
				// The tween keeps wall-clock time underneath, so freeze
				// the value now and render from it until resume.
				v.pausedAt = v.progress.At(time.Now())
				return v, nil
			}
			// Resume the current leg from the frozen value.
			now := time.Now()
			v.startPhase(v.phase, v.pausedAt, now)
			return v, v.env.Clock.Frame(repeatTag)
		case "r":
			nv := newRepeatView(v.env)
			return nv, nv.Init()
		}
	case anim.FrameMsg:
		if msg.Tag != repeatTag || v.paused {
			return v, nil
		}
		v.advance(msg.Time)
		return v, v.env.Clock.Frame(repeatTag)
	}
	return v, nil
}

// advance moves the loop's state machine forward one frame.
func (v *repeatView) advance(now time.Time) {
	switch v.phase {
	case pulseGrow:
		if v.progress.Done(now) {
			v.startPhase(pulseShrink, 1, now)
		}
	case pulseShrink:
		if v.progress.Done(now) {
			v.startPhase(pulseHold, 0, now)
		}
	case pulseHold:
		if !now.Before(v.holdEnd) {
			v.startPhase(pulseGrow, 0, now)
		}
	}
}

// View implements View.
func (v *repeatView) View() string {
	p := v.progress.At(time.Now())
	if v.paused {
		p = v.pausedAt
	}
	w := int(anim.Lerp(8, 26, p) + 0.5)
	h := int(anim.Lerp(1, 5, p) + 0.5)
	// Center the pulse so it grows outward.
	x := (30 - w) / 2
	y := (6 - h) / 2
	body := placeAt(x, y, solidBox(v.env.Theme.Palette.Highlight, w, h))
	state := "looping"
	if v.paused {
		state = "paused"
	}
	body += "\n" + v.env.Theme.Muted.Render(state)
	return v.env.chrome("Repeat", "enter: pause/resume · r: reset · esc: back", body)
}
