package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"motioncat/internal/anim"
)

const (
	fadeTag      = "fade"
	fadeDuration = 400 * time.Millisecond
)

// fadeView fakes opacity in a medium with no alpha channel: the box's
// color is blended toward the terminal background as it "disappears".
type fadeView struct {
	env exampleEnv

	visible bool
	alpha   *anim.Tween // 1 = fully shown, 0 = gone
}

var _ View = (*fadeView)(nil)

func newFadeView(env exampleEnv) *fadeView {
	return &fadeView{
		env:     env,
		visible: true,
		alpha:   anim.NewTween(1, 1, 0, nil),
	}
}

// Init implements View.
func (v *fadeView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *fadeView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			now := time.Now()
			v.visible = !v.visible
			target := 0.0
			if v.visible {
				target = 1.0
			}
			v.alpha = anim.NewTween(v.alpha.At(now), target, v.env.dur(fadeDuration), anim.EaseInOut)
			v.alpha.Start(now)
			return v, v.env.Clock.Frame(fadeTag)
		case "r":
			nv := newFadeView(v.env)
			return nv, nv.Init()
		}
	case anim.FrameMsg:
		if msg.Tag != fadeTag || !v.alpha.Started() || v.alpha.Done(msg.Time) {
			return v, nil
		}
		return v, v.env.Clock.Frame(fadeTag)
	}
	return v, nil
}

// View implements View.
func (v *fadeView) View() string {
	a := v.alpha.At(time.Now())
	p := v.env.Theme.Palette
	color := v.env.Theme.Blend(p.Background, p.BoxB, a)
	label := v.env.Theme.Blend(p.Background, p.Text, a)

	body := solidBox(color, 20, 4)
	body += "\n" + v.env.Theme.Normal.Foreground(label).Render(fmt.Sprintf("opacity %.2f", a))
	return v.env.chrome("Fade", "enter: show/hide · r: reset · esc: back", body)
}
