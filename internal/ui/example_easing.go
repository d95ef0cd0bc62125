package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"motioncat/internal/anim"
)

const (
	easingTag      = "easing"
	easingTrack    = 40
	easingDuration = 1500 * time.Millisecond
)

// easingView races one dot per named curve across a track so the curves
// can be compared side by side.
type easingView struct {
	env exampleEnv

	clock  *anim.Tween // normalized time shared by every row
	active int         // highlighted curve
}

var _ View = (*easingView)(nil)

func newEasingView(env exampleEnv) *easingView {
	return &easingView{
		env:   env,
		clock: anim.NewTween(0, 1, env.dur(easingDuration), anim.Linear),
	}
}

// Init implements View. The race starts on entry.
func (v *easingView) Init() tea.Cmd {
	v.clock.Start(time.Now())
	return v.env.Clock.Frame(easingTag)
}

// Update implements View.
func (v *easingView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			v.clock.Start(time.Now())
			return v, v.env.Clock.Frame(easingTag)
		case "tab":
			v.active = (v.active + 1) % len(anim.CurveNames)
			return v, nil
		case "r":
			nv := newEasingView(v.env)
			return nv, nv.Init()
		}
	case anim.FrameMsg:
		if msg.Tag != easingTag {
			return v, nil
		}
		if v.clock.Done(msg.Time) {
			return v, nil
		}
		return v, v.env.Clock.Frame(easingTag)
	}
	return v, nil
}

// View implements View.
func (v *easingView) View() string {
	now := time.Now()
	t := v.clock.At(now)

	var b strings.Builder
	for i, name := range anim.CurveNames {
		x := int(anim.CurveByName(name)(t)*easingTrack + 0.5)
		if x > easingTrack {
			x = easingTrack
		}
		track := strings.Repeat("·", x) + "●" + strings.Repeat(" ", easingTrack-x)

		label := v.env.Theme.Muted.Render(pad(name, 12))
		dot := v.env.Theme.Normal.Render(track)
		if i == v.active {
			label = v.env.Theme.Selected.Render(pad(name, 12))
			dot = v.env.Theme.Selected.Render(track)
		}
		b.WriteString(label + dot + "\n")
	}
	return v.env.chrome("Timing curves", "enter: replay · tab: highlight next curve · r: reset · esc: back", b.String())
}
