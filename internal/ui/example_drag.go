package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"motioncat/internal/anim"
)

const (
	dragTag       = "drag"
	dragFrequency = 7.0
	dragDamping   = 0.6
	dragHomeX     = 20
	dragHomeY     = 3
)

// dragView pins a box to the live mouse translation while the left
// button is held, then springs it back to the zero offset on release.
type dragView struct {
	env exampleEnv

	dragging         bool
	anchorX, anchorY int // press position minus the offset at press time
	offX, offY       float64

	springX, springY *anim.Spring

	// Each spring-back run gets its own frame tag so a frame from an
	// interrupted run cannot double-step the physics of the next one.
	armGen   int
	frameTag string
}

var _ View = (*dragView)(nil)

func newDragView(env exampleEnv) *dragView {
	return &dragView{
		env:     env,
		springX: anim.NewSpring(env.Clock.FPS, dragFrequency, dragDamping),
		springY: anim.NewSpring(env.Clock.FPS, dragFrequency, dragDamping),
	}
}

// Offset returns the box's current offset from home, in cells.
func (v *dragView) Offset() (float64, float64) { return v.offX, v.offY }

// Dragging reports whether a drag gesture is live.
func (v *dragView) Dragging() bool { return v.dragging }

// Init implements View.
func (v *dragView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *dragView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "r" {
			nv := newDragView(v.env)
			return nv, nv.Init()
		}
	case tea.MouseMsg:
		return v.handleMouse(msg)
	case anim.FrameMsg:
		if msg.Tag != v.frameTag || v.frameTag == "" || v.dragging {
			return v, nil
		}
		v.springX.Step()
		v.springY.Step()
		v.offX, v.offY = v.springX.Pos, v.springY.Pos
		if v.springX.Settled() && v.springY.Settled() {
			v.offX, v.offY = 0, 0
			v.frameTag = ""
			return v, nil
		}
		return v, v.env.Clock.Frame(v.frameTag)
	}
	return v, nil
}

// handleMouse implements the gesture: press anchors, motion tracks the
// translation one-for-one, release hands the offset to the spring.
func (v *dragView) handleMouse(m tea.MouseMsg) (View, tea.Cmd) {
	switch m.Action {
	case tea.MouseActionPress:
		if m.Button != tea.MouseButtonLeft {
			return v, nil
		}
		v.dragging = true
		v.frameTag = "" // kill any spring-back loop still in flight
		v.anchorX = m.X - int(v.offX)
		v.anchorY = m.Y - int(v.offY)
		return v, nil
	case tea.MouseActionMotion:
		if !v.dragging {
			return v, nil
		}
		v.offX = float64(m.X - v.anchorX)
		v.offY = float64(m.Y - v.anchorY)
		return v, nil
	case tea.MouseActionRelease:
		if !v.dragging {
			return v, nil
		}
		v.dragging = false
		v.springX.Pos, v.springX.Vel, v.springX.Target = v.offX, 0, 0
		v.springY.Pos, v.springY.Vel, v.springY.Target = v.offY, 0, 0
		if v.env.Reduced {
			v.springX.Snap()
			v.springY.Snap()
			v.offX, v.offY = 0, 0
			return v, nil
		}
		v.armGen++
		v.frameTag = fmt.Sprintf("%s.%d", dragTag, v.armGen)
		return v, v.env.Clock.Frame(v.frameTag)
	}
	return v, nil
}

// View implements View.
func (v *dragView) View() string {
	x := dragHomeX + int(v.offX)
	y := dragHomeY + int(v.offY)
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	body := placeAt(x, y, solidBox(v.env.Theme.Palette.Highlight, 8, 3))
	body += "\n" + v.env.Theme.Muted.Render(fmt.Sprintf("offset: (%+.0f, %+.0f)", v.offX, v.offY))
	return v.env.chrome("Drag", "drag the box with the mouse · r: reset · esc: back", body)
}
