package ui

import tea "github.com/charmbracelet/bubbletea"

// View is a single screen in the catalog app: the catalog list, an
// example, or a modal. It mirrors Bubble Tea's model shape but returns
// a View from Update so screens can swap themselves out (reset does
// this).
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}
