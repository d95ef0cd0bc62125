package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"motioncat/internal/catalog"
)

// catalogItem implements list.Item for a catalog entry.
type catalogItem struct {
	catalog.Entry
}

func (c catalogItem) FilterValue() string { return c.Slug + " " + c.Entry.Title }
func (c catalogItem) Title() string       { return c.Entry.Title }
func (c catalogItem) Description() string { return c.Blurb }

// CatalogView lists every example; enter opens the selected one.
type CatalogView struct {
	list  list.Model
	theme *Theme
}

// Ensure CatalogView implements View.
var _ View = (*CatalogView)(nil)

// NewCatalogView builds the catalog list from the static registry.
func NewCatalogView(theme *Theme) *CatalogView {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = theme.Selected
	delegate.Styles.SelectedDesc = theme.Selected.Bold(false)
	delegate.Styles.NormalTitle = theme.Normal
	delegate.Styles.NormalDesc = theme.Muted

	items := make([]list.Item, len(catalog.Entries))
	for i, e := range catalog.Entries {
		items[i] = catalogItem{Entry: e}
	}

	l := list.New(items, delegate, 0, 0)
	l.Title = "Examples"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = theme.Title

	return &CatalogView{list: l, theme: theme}
}

// SelectedSlug returns the slug under the cursor, honoring any active filter.
func (c *CatalogView) SelectedSlug() (string, bool) {
	it, ok := c.list.SelectedItem().(catalogItem)
	if !ok {
		return "", false
	}
	return it.Slug, true
}

// Filtering reports whether the list's filter input is capturing keys.
// The app-level keybind system stands down while it is.
func (c *CatalogView) Filtering() bool {
	return c.list.FilterState() == list.Filtering
}

// Init implements View.
func (c *CatalogView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (c *CatalogView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		c.list.SetWidth(msg.Width)
		c.list.SetHeight(msg.Height - 4) // Reserve space for header and hint
		return c, nil
	}

	// list.Model handles j/k/g/G/arrows and "/" filtering natively.
	// Enter is handled by app.go at the application level.
	var cmd tea.Cmd
	c.list, cmd = c.list.Update(msg)
	return c, cmd
}

// View implements View.
func (c *CatalogView) View() string {
	// Set default dimensions if not set (for tests)
	if c.list.Width() == 0 {
		c.list.SetWidth(80)
	}
	if c.list.Height() == 0 {
		c.list.SetHeight(20)
	}

	var b strings.Builder
	b.WriteString(c.theme.Title.Render(fmt.Sprintf("motioncat (%d examples)", len(catalog.Entries))) + "\n")
	b.WriteString(c.theme.Hint.Render("enter: open · /: filter · SPC: commands · q: quit") + "\n\n")
	b.WriteString(c.list.View())
	return b.String()
}
