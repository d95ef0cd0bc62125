package ui

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette is the set of raw colors a theme draws from. True-color hex
// values; the dark set is Catppuccin Mocha, the light set Latte.
type Palette struct {
	Accent     lipgloss.Color // titles, highlights
	Highlight  lipgloss.Color // selected items, active curve
	Danger     lipgloss.Color // the "off"/alternate box color
	Muted      lipgloss.Color // dimmed text, hints
	Text       lipgloss.Color // normal text
	Background lipgloss.Color // terminal background assumed by fades
	BoxA       lipgloss.Color // primary animated-box color
	BoxB       lipgloss.Color // secondary animated-box color
}

var darkPalette = Palette{
	Accent:     "#94e2d5",
	Highlight:  "#cba6f7",
	Danger:     "#f38ba8",
	Muted:      "#6c7086",
	Text:       "#cdd6f4",
	Background: "#1e1e2e",
	BoxA:       "#89b4fa",
	BoxB:       "#fab387",
}

var lightPalette = Palette{
	Accent:     "#179299",
	Highlight:  "#8839ef",
	Danger:     "#d20f39",
	Muted:      "#9ca0b0",
	Text:       "#4c4f69",
	Background: "#eff1f5",
	BoxA:       "#1e66f5",
	BoxB:       "#fe640b",
}

// Theme bundles the shared style definitions used across the catalog and
// example screens.
type Theme struct {
	Name    string
	Palette Palette

	Title    lipgloss.Style // Bold accent - screen titles
	Hint     lipgloss.Style // Muted - help/hint lines
	Selected lipgloss.Style // Bold highlight - selected items
	Muted    lipgloss.Style // Dimmed text
	Normal   lipgloss.Style // Normal text
	Box      lipgloss.Style // Rounded box around modal content
}

// NewTheme builds the theme for the given name ("dark" or "light";
// anything else gets dark).
func NewTheme(name string) *Theme {
	p := darkPalette
	if name == "light" {
		p = lightPalette
	}
	return &Theme{
		Name:    name,
		Palette: p,
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Accent),
		Hint: lipgloss.NewStyle().
			Foreground(p.Muted),
		Selected: lipgloss.NewStyle().
			Foreground(p.Highlight).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(p.Muted),
		Normal: lipgloss.NewStyle().
			Foreground(p.Text),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Highlight).
			Padding(1, 2).
			Margin(1),
	}
}

// Blend returns the color t of the way from a to b, mixed in Lab space so
// the fade reads evenly. Invalid hex input falls back to a.
func (th *Theme) Blend(a, b lipgloss.Color, t float64) lipgloss.Color {
	ca, errA := colorful.Hex(string(a))
	cb, errB := colorful.Hex(string(b))
	if errA != nil || errB != nil {
		return a
	}
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return lipgloss.Color(ca.BlendLab(cb, t).Clamped().Hex())
}
