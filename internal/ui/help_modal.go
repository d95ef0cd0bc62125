package ui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// helpModal lists every binding: the leader commands from the registry
// plus the keys each example screen handles itself.
type helpModal struct {
	theme *Theme
	reg   *KeybindRegistry
}

// Ensure helpModal implements View.
var _ View = (*helpModal)(nil)

func newHelpModal(theme *Theme, reg *KeybindRegistry) *helpModal {
	return &helpModal{theme: theme, reg: reg}
}

// Init implements View.
func (h *helpModal) Init() tea.Cmd {
	return nil
}

// Update implements View. Dismissal is handled by the overlay stack.
func (h *helpModal) Update(msg tea.Msg) (View, tea.Cmd) {
	return h, nil
}

// screenKeys are the keys example screens handle themselves, outside the
// registry.
var screenKeys = [][2]string{
	{"enter", "trigger the example's animation"},
	{"r", "reset the open example"},
	{"tab", "cycle the active curve (easing)"},
	{"esc/q", "back to the catalog (q quits from the catalog)"},
	{"j/k, arrows", "move in the catalog"},
	{"/", "filter the catalog"},
}

// View implements View.
func (h *helpModal) View() string {
	var b strings.Builder
	b.WriteString(h.theme.Title.Render("Keys") + "\n\n")

	for _, kv := range screenKeys {
		b.WriteString(h.theme.Selected.Render(pad(kv[0], 12)))
		b.WriteString(h.theme.Normal.Render(kv[1]) + "\n")
	}

	if h.reg != nil {
		b.WriteString("\n" + h.theme.Title.Render("Leader (SPC)") + "\n\n")
		hints := h.reg.Hints()
		seqs := make([]string, 0, len(hints))
		for s := range hints {
			seqs = append(seqs, s)
		}
		sort.Strings(seqs)
		for _, s := range seqs {
			b.WriteString(h.theme.Selected.Render(pad(s, 12)))
			b.WriteString(h.theme.Normal.Render(hints[s]) + "\n")
		}
	}

	b.WriteString("\n" + h.theme.Hint.Render("esc: close"))
	return h.theme.Box.Render(b.String())
}

func pad(s string, n int) string {
	if len(s) >= n {
		return s + " "
	}
	return s + strings.Repeat(" ", n-len(s))
}
