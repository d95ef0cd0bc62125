package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"motioncat/internal/anim"
)

const (
	springTag       = "spring"
	springTrack     = 44.0
	springFrequency = 6.0
	springDamping   = 0.4 // underdamped so the overshoot is visible
)

// springView drives a box toward a target with a damped spring; enter
// bounces the target between the track's edges.
type springView struct {
	env exampleEnv

	spring  *anim.Spring
	atFar   bool
	ticking bool // a frame loop is armed
}

var _ View = (*springView)(nil)

func newSpringView(env exampleEnv) *springView {
	return &springView{
		env:    env,
		spring: anim.NewSpring(env.Clock.FPS, springFrequency, springDamping),
	}
}

// Init implements View.
func (v *springView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *springView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			v.atFar = !v.atFar
			v.spring.Target = 0
			if v.atFar {
				v.spring.Target = springTrack
			}
			if v.env.Reduced {
				v.spring.Snap()
				return v, nil
			}
			// Retargeting while the loop runs must not arm a second
			// loop, or the physics would step twice per interval.
			if v.ticking {
				return v, nil
			}
			v.ticking = true
			return v, v.env.Clock.Frame(springTag)
		case "r":
			nv := newSpringView(v.env)
			return nv, nv.Init()
		}
	case anim.FrameMsg:
		if msg.Tag != springTag || !v.ticking {
			return v, nil
		}
		v.spring.Step()
		if v.spring.Settled() {
			v.ticking = false
			return v, nil
		}
		return v, v.env.Clock.Frame(springTag)
	}
	return v, nil
}

// View implements View.
func (v *springView) View() string {
	x := int(v.spring.Pos + 0.5)
	if x < 0 {
		x = 0
	}
	body := placeAt(x, 0, solidBox(v.env.Theme.Palette.BoxB, 6, 3))
	return v.env.chrome("Spring", "enter: bounce the target · r: reset · esc: back", body)
}
