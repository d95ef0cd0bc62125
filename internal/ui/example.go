package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"motioncat/internal/anim"
	"motioncat/internal/catalog"
)

// exampleEnv carries the per-run settings every example screen needs.
// Screens never share state with each other; they only share the theme,
// the frame clock, and the reduced-motion switch.
type exampleEnv struct {
	Theme   *Theme
	Clock   anim.Clock
	Reduced bool
}

// dur returns d, collapsed to zero under reduced motion so end states
// appear immediately.
func (e exampleEnv) dur(d time.Duration) time.Duration {
	if e.Reduced {
		return 0
	}
	return d
}

// chrome renders the shared example screen frame: title, hint line, body.
func (e exampleEnv) chrome(title, hint, body string) string {
	var b strings.Builder
	b.WriteString(e.Theme.Title.Render(title) + "\n")
	b.WriteString(e.Theme.Hint.Render(hint) + "\n\n")
	b.WriteString(body)
	return b.String()
}

// solidBox renders a w-by-h block of the given color.
func solidBox(c lipgloss.Color, w, h int) string {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	row := strings.Repeat(" ", w)
	rows := make([]string, h)
	for i := range rows {
		rows[i] = row
	}
	return lipgloss.NewStyle().Background(c).Render(strings.Join(rows, "\n"))
}

// placeAt positions content inside an empty canvas: y blank lines above,
// x columns of indent on every line.
func placeAt(x, y int, content string) string {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	indent := strings.Repeat(" ", x)
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = indent + line
	}
	return strings.Repeat("\n", y) + strings.Join(lines, "\n")
}

// newExampleView constructs the example screen for a catalog index.
func newExampleView(idx int, env exampleEnv) View {
	switch catalog.Entries[idx].Slug {
	case "toggle":
		return newToggleView(env)
	case "easing":
		return newEasingView(env)
	case "spring":
		return newSpringView(env)
	case "transform":
		return newTransformView(env)
	case "repeat":
		return newRepeatView(env)
	case "sequence":
		return newSequenceView(env)
	case "flip":
		return newFlipView(env)
	case "morph":
		return newMorphView(env)
	case "progress":
		return newProgressView(env)
	case "drag":
		return newDragView(env)
	case "fade":
		return newFadeView(env)
	}
	return nil
}
