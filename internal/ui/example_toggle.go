package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"motioncat/internal/anim"
)

const (
	toggleTag      = "toggle"
	toggleWidthOff = 8.0
	toggleWidthOn  = 24.0
	toggleDuration = 400 * time.Millisecond
)

// toggleView is the basic state-triggered transition: one boolean, one
// tweened width, two colors. Enter flips the state exactly once per press.
type toggleView struct {
	env exampleEnv

	on    bool
	width *anim.Tween
}

var _ View = (*toggleView)(nil)

func newToggleView(env exampleEnv) *toggleView {
	return &toggleView{
		env:   env,
		width: anim.NewTween(toggleWidthOff, toggleWidthOff, env.dur(toggleDuration), anim.EaseInOut),
	}
}

// On reports the tracked boolean.
func (v *toggleView) On() bool { return v.on }

// Init implements View.
func (v *toggleView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *toggleView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return v, v.flip(time.Now())
		case "r":
			nv := newToggleView(v.env)
			return nv, nv.Init()
		}
	case anim.FrameMsg:
		if msg.Tag != toggleTag || !v.width.Started() || v.width.Done(msg.Time) {
			return v, nil
		}
		return v, v.env.Clock.Frame(toggleTag)
	}
	return v, nil
}

// flip toggles the state and retargets the width tween from wherever it
// currently is, so mid-flight presses stay continuous.
func (v *toggleView) flip(now time.Time) tea.Cmd {
	v.on = !v.on
	target := toggleWidthOff
	if v.on {
		target = toggleWidthOn
	}
	v.width = anim.NewTween(v.width.At(now), target, v.env.dur(toggleDuration), anim.EaseInOut)
	v.width.Start(now)
	return v.env.Clock.Frame(toggleTag)
}

// View implements View.
func (v *toggleView) View() string {
	now := time.Now()
	color := v.env.Theme.Palette.Danger
	state := "off"
	if v.on {
		color = v.env.Theme.Palette.BoxA
		state = "on"
	}
	body := solidBox(color, int(v.width.At(now)+0.5), 3)
	body += "\n\n" + v.env.Theme.Muted.Render("state: "+state)
	return v.env.chrome("Basic toggle", "enter: toggle · r: reset · esc: back", body)
}
