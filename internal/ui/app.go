package ui

import (
	"github.com/charmbracelet/lipgloss"

	tea "github.com/charmbracelet/bubbletea"

	"motioncat/internal/anim"
	"motioncat/internal/catalog"
	"motioncat/internal/config"
)

// OpenExampleMsg is sent when the user opens an example from the catalog.
type OpenExampleMsg struct {
	Slug string
}

// NextExampleMsg / PrevExampleMsg step between neighboring examples
// without going back through the catalog (SPC n / SPC p).
type NextExampleMsg struct{}
type PrevExampleMsg struct{}

// ResetExampleMsg restores the open example to its initial state (SPC r).
type ResetExampleMsg struct{}

// ShowHelpMsg opens the help overlay (SPC ?).
type ShowHelpMsg struct{}

// AppModel is the root model: the catalog at the bottom of the view
// stack, the open example (if any) above it, overlays on top of both.
type AppModel struct {
	Views      ViewStack
	Overlays   OverlayStack
	Catalog    *CatalogView
	KeyHandler *KeyHandler
	Theme      *Theme
	Env        exampleEnv

	exampleIdx    int // index into catalog.Entries, -1 on the catalog
	width, height int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model. startIdx >= 0 opens
// directly on that example (the CLI slug path); -1 starts on the catalog.
func NewAppModel(cfg config.Config, startIdx int) *AppModel {
	theme := NewTheme(cfg.Theme)
	env := exampleEnv{
		Theme:   theme,
		Clock:   anim.NewClock(cfg.FPS),
		Reduced: cfg.ReducedMotion,
	}

	reg := NewKeybindRegistry()
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("SPC ?", func() tea.Msg { return ShowHelpMsg{} }, "Help")
	reg.BindWithDescForMode("SPC r", func() tea.Msg { return ResetExampleMsg{} }, "Reset example", []AppMode{ModeExample})
	reg.BindWithDescForMode("SPC n", func() tea.Msg { return NextExampleMsg{} }, "Next example", []AppMode{ModeExample})
	reg.BindWithDescForMode("SPC p", func() tea.Msg { return PrevExampleMsg{} }, "Previous example", []AppMode{ModeExample})

	a := &AppModel{
		Catalog:    NewCatalogView(theme),
		KeyHandler: NewKeyHandler(reg),
		Theme:      theme,
		Env:        env,
		exampleIdx: -1,
	}
	a.Views.Push(a.Catalog)
	if startIdx >= 0 && startIdx < len(catalog.Entries) {
		a.openExample(startIdx)
	}
	return a
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Mode returns the current top-level mode.
func (m *AppModel) Mode() AppMode {
	if m.exampleIdx >= 0 {
		return ModeExample
	}
	return ModeCatalog
}

// openExample pushes (or replaces) the example screen for idx.
func (m *AppModel) openExample(idx int) tea.Cmd {
	v := newExampleView(idx, m.Env)
	if v == nil {
		return nil
	}
	if m.exampleIdx >= 0 {
		m.Views.Replace(v)
	} else {
		m.Views.Push(v)
	}
	m.exampleIdx = idx
	if m.width > 0 {
		v.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	}
	return v.Init()
}

// closeExample pops back to the catalog.
func (m *AppModel) closeExample() {
	if m.exampleIdx < 0 {
		return
	}
	m.Views.Pop()
	m.exampleIdx = -1
}

// stepExample moves to the example delta positions away, wrapping around.
func (m *AppModel) stepExample(delta int) tea.Cmd {
	if m.exampleIdx < 0 {
		return nil
	}
	n := len(catalog.Entries)
	return m.openExample(((m.exampleIdx+delta)%n + n) % n)
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Views.Peek().Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		// Every stacked view tracks the terminal size, not just the top.
		var cmds []tea.Cmd
		for i, v := range a.Views.Stack {
			nv, cmd := v.Update(msg)
			a.Views.Stack[i] = nv
			cmds = append(cmds, cmd)
		}
		if cmd, ok := a.Overlays.UpdateTop(msg); ok {
			cmds = append(cmds, cmd)
		}
		return a, tea.Batch(cmds...)

	case OpenExampleMsg:
		if idx := catalog.Index(msg.Slug); idx >= 0 {
			return a, a.openExample(idx)
		}
		return a, nil
	case NextExampleMsg:
		return a, a.stepExample(1)
	case PrevExampleMsg:
		return a, a.stepExample(-1)
	case ResetExampleMsg:
		if a.exampleIdx >= 0 {
			return a, a.openExample(a.exampleIdx)
		}
		return a, nil
	case ShowHelpMsg:
		a.Overlays.Push(Overlay{View: newHelpModal(a.Theme, a.KeyHandler.Registry), Dismiss: "esc"})
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	// Frame ticks, sequence steps, mouse events, everything else: the
	// top view owns them.
	v, cmd := a.Views.Peek().Update(msg)
	a.Views.Replace(v)
	return a, cmd
}

// handleKey routes key presses: overlays first, then the leader system,
// then app-level navigation, then the top view.
func (a *appModelAdapter) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if top, ok := a.Overlays.Peek(); ok {
		if top.IsDismissKey(msg.String()) {
			a.Overlays.Pop()
			return a, nil
		}
		cmd, _ := a.Overlays.UpdateTop(msg)
		return a, cmd
	}

	// While the catalog filter input is live it owns every key.
	if a.Mode() == ModeCatalog && a.Catalog.Filtering() {
		v, cmd := a.Views.Peek().Update(msg)
		a.Views.Replace(v)
		return a, cmd
	}

	if a.KeyHandler != nil {
		if consumed, keyCmd := a.KeyHandler.Handle(msg); consumed {
			return a, keyCmd
		}
	}

	// App-level navigation. Inside an example q backs out like esc;
	// only from the catalog does it quit.
	switch msg.String() {
	case "esc", "q":
		if a.Mode() == ModeExample {
			a.closeExample()
			return a, nil
		}
		if msg.String() == "q" {
			return a, tea.Quit
		}
	}
	if a.Mode() == ModeCatalog && msg.String() == "enter" {
		if slug, ok := a.Catalog.SelectedSlug(); ok {
			return a, func() tea.Msg {
				return OpenExampleMsg{Slug: slug}
			}
		}
		return a, nil
	}

	v, cmd := a.Views.Peek().Update(msg)
	a.Views.Replace(v)
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if top, ok := a.Overlays.Peek(); ok {
		if a.width > 0 && a.height > 0 {
			return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, top.View.View())
		}
		return top.View.View()
	}
	base := a.Views.Peek().View()
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		base += "\n" + RenderKeybindHelp(a.KeyHandler, a.Mode(), a.Theme)
	}
	return base
}
