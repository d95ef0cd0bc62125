package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"motioncat/internal/anim"
)

const (
	transformTag      = "transform"
	transformDuration = 500 * time.Millisecond
)

// transformView scales and translates a box with a single shared tween,
// so both transforms stay in lockstep.
type transformView struct {
	env exampleEnv

	big      bool
	progress *anim.Tween // 0 = small at origin, 1 = large and offset
}

var _ View = (*transformView)(nil)

func newTransformView(env exampleEnv) *transformView {
	return &transformView{
		env:      env,
		progress: anim.NewTween(0, 0, env.dur(transformDuration), anim.EaseInOut),
	}
}

// Init implements View.
func (v *transformView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *transformView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			now := time.Now()
			v.big = !v.big
			target := 0.0
			if v.big {
				target = 1.0
			}
			v.progress = anim.NewTween(v.progress.At(now), target, v.env.dur(transformDuration), anim.EaseInOut)
			v.progress.Start(now)
			return v, v.env.Clock.Frame(transformTag)
		case "r":
			nv := newTransformView(v.env)
			return nv, nv.Init()
		}
	case anim.FrameMsg:
		if msg.Tag != transformTag || !v.progress.Started() || v.progress.Done(msg.Time) {
			return v, nil
		}
		return v, v.env.Clock.Frame(transformTag)
	}
	return v, nil
}

// View implements View.
func (v *transformView) View() string {
	p := v.progress.At(time.Now())
	w := int(anim.Lerp(6, 22, p) + 0.5)
	h := int(anim.Lerp(2, 6, p) + 0.5)
	x := int(anim.Lerp(0, 24, p) + 0.5)
	y := int(anim.Lerp(0, 2, p) + 0.5)
	body := placeAt(x, y, solidBox(v.env.Theme.Palette.BoxA, w, h))
	return v.env.chrome("Transform", "enter: scale and translate · r: reset · esc: back", body)
}
