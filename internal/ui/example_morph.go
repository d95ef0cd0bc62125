package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"motioncat/internal/anim"
)

const (
	morphTag      = "morph"
	morphDuration = 600 * time.Millisecond
)

// rect is a box frame in cells.
type rect struct {
	x, y, w, h int
}

// The two layout slots the shared element morphs between.
var (
	morphThumb    = rect{x: 2, y: 0, w: 10, h: 3}
	morphExpanded = rect{x: 16, y: 1, w: 34, h: 8}
)

// morphView animates one box's frame between a thumbnail slot and an
// expanded slot; position and size interpolate together so it reads as a
// single element changing layout.
type morphView struct {
	env exampleEnv

	expanded bool
	progress *anim.Tween // 0 = thumbnail, 1 = expanded
}

var _ View = (*morphView)(nil)

func newMorphView(env exampleEnv) *morphView {
	return &morphView{
		env:      env,
		progress: anim.NewTween(0, 0, 0, nil),
	}
}

// Init implements View.
func (v *morphView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *morphView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			now := time.Now()
			v.expanded = !v.expanded
			target := 0.0
			if v.expanded {
				target = 1.0
			}
			cur := 0.0
			if v.progress.Started() {
				cur = v.progress.At(now)
			}
			v.progress = anim.NewTween(cur, target, v.env.dur(morphDuration), anim.EaseInOut)
			v.progress.Start(now)
			return v, v.env.Clock.Frame(morphTag)
		case "r":
			nv := newMorphView(v.env)
			return nv, nv.Init()
		}
	case anim.FrameMsg:
		if msg.Tag != morphTag || !v.progress.Started() || v.progress.Done(msg.Time) {
			return v, nil
		}
		return v, v.env.Clock.Frame(morphTag)
	}
	return v, nil
}

// frameAt returns the morphing element's current frame.
func (v *morphView) frameAt(now time.Time) rect {
	p := 0.0
	if v.progress.Started() {
		p = v.progress.At(now)
	}
	return rect{
		x: int(anim.Lerp(float64(morphThumb.x), float64(morphExpanded.x), p) + 0.5),
		y: int(anim.Lerp(float64(morphThumb.y), float64(morphExpanded.y), p) + 0.5),
		w: int(anim.Lerp(float64(morphThumb.w), float64(morphExpanded.w), p) + 0.5),
		h: int(anim.Lerp(float64(morphThumb.h), float64(morphExpanded.h), p) + 0.5),
	}
}

// View implements View.
func (v *morphView) View() string {
	r := v.frameAt(time.Now())
	label := "thumb"
	if v.expanded {
		label = "expanded"
	}
	box := lipgloss.NewStyle().
		Background(v.env.Theme.Palette.Accent).
		Foreground(v.env.Theme.Palette.Background).
		Width(r.w).
		Height(r.h).
		Align(lipgloss.Center, lipgloss.Center).
		Render(label)
	body := placeAt(r.x, r.y, box)
	return v.env.chrome("Geometry morph", "enter: morph between slots · r: reset · esc: back", body)
}
