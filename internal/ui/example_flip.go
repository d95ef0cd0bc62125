package ui

import (
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"motioncat/internal/anim"
)

const (
	flipTag      = "flip"
	flipDuration = 700 * time.Millisecond
	flipMaxWidth = 22
)

// flipView fakes a card spinning around its vertical axis: the rendered
// width follows |cos| through zero and the face swaps at the midpoint.
type flipView struct {
	env exampleEnv

	angle *anim.Tween // 0..1, one half-turn per flip
	front bool        // face shown before the current flip's midpoint
}

var _ View = (*flipView)(nil)

func newFlipView(env exampleEnv) *flipView {
	return &flipView{
		env:   env,
		angle: anim.NewTween(0, 0, 0, nil),
		front: true,
	}
}

// Init implements View.
func (v *flipView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *flipView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			now := time.Now()
			if v.angle.Started() && !v.angle.Done(now) {
				return v, nil // one flip at a time
			}
			v.angle = anim.NewTween(0, 1, v.env.dur(flipDuration), anim.EaseInOut)
			v.angle.Start(now)
			return v, v.env.Clock.Frame(flipTag)
		case "r":
			nv := newFlipView(v.env)
			return nv, nv.Init()
		}
	case anim.FrameMsg:
		if msg.Tag != flipTag || !v.angle.Started() {
			return v, nil
		}
		if v.angle.Done(msg.Time) {
			// Flip finished: the back is now the resting face.
			v.front = !v.front
			v.angle = anim.NewTween(0, 0, 0, nil)
			return v, nil
		}
		return v, v.env.Clock.Frame(flipTag)
	}
	return v, nil
}

// View implements View.
func (v *flipView) View() string {
	now := time.Now()
	p := 0.0
	if v.angle.Started() {
		p = v.angle.At(now)
	}

	w := int(float64(flipMaxWidth)*math.Abs(math.Cos(math.Pi*p)) + 0.5)
	if w < 1 {
		w = 1
	}

	showFront := v.front
	if p >= 0.5 {
		showFront = !showFront
	}
	face, color := "MOTION", v.env.Theme.Palette.BoxA
	if !showFront {
		face, color = "CAT", v.env.Theme.Palette.BoxB
	}
	if w < len(face)+2 {
		face = "" // too edge-on to read
	}

	card := lipgloss.NewStyle().
		Background(color).
		Foreground(v.env.Theme.Palette.Background).
		Width(w).
		Height(5).
		Align(lipgloss.Center, lipgloss.Center).
		Render(face)

	// Keep the card centered as it narrows.
	x := (flipMaxWidth - w) / 2
	body := placeAt(x, 0, card)
	body += "\n" + v.env.Theme.Muted.Render("face: "+strings.ToLower(faceName(showFront)))
	return v.env.chrome("3D flip", "enter: flip · r: reset · esc: back", body)
}

func faceName(front bool) string {
	if front {
		return "FRONT"
	}
	return "BACK"
}
