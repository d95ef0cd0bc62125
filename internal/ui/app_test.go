package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"motioncat/internal/catalog"
	"motioncat/internal/config"
)

func newTestApp(t *testing.T, startIdx int) *appModelAdapter {
	t.Helper()
	cfg := config.Default()
	a := NewAppModel(cfg, startIdx)
	return &appModelAdapter{AppModel: a}
}

func TestAppStartsOnCatalog(t *testing.T) {
	a := newTestApp(t, -1)
	if a.Mode() != ModeCatalog {
		t.Fatalf("expected ModeCatalog, got %s", a.Mode())
	}
	if a.Views.Len() != 1 {
		t.Errorf("expected 1 stacked view, got %d", a.Views.Len())
	}
}

func TestAppStartsOnExampleWithSlug(t *testing.T) {
	idx := catalog.Index("spring")
	a := newTestApp(t, idx)
	if a.Mode() != ModeExample {
		t.Fatalf("expected ModeExample, got %s", a.Mode())
	}
	if _, ok := a.Views.Peek().(*springView); !ok {
		t.Errorf("expected springView on top, got %T", a.Views.Peek())
	}
}

func TestQBacksOutOfExampleAndQuitsFromCatalog(t *testing.T) {
	a := newTestApp(t, catalog.Index("toggle"))

	_, cmd := a.Update(keyMsg("q"))
	if a.Mode() != ModeCatalog {
		t.Fatalf("q inside an example should pop to the catalog, still in %s", a.Mode())
	}
	if cmd != nil {
		t.Fatal("popping back must not quit")
	}

	_, cmd = a.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("q on the catalog should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", cmd())
	}
}

func TestEnterOpensSelectedExample(t *testing.T) {
	a := newTestApp(t, -1)

	_, cmd := a.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("enter on catalog should produce an open command")
	}
	a.Update(cmd())

	if a.Mode() != ModeExample {
		t.Fatalf("expected ModeExample after enter, got %s", a.Mode())
	}
	if a.Views.Len() != 2 {
		t.Errorf("expected catalog + example on stack, got %d views", a.Views.Len())
	}
	// First catalog entry is the toggle example.
	if _, ok := a.Views.Peek().(*toggleView); !ok {
		t.Errorf("expected toggleView on top, got %T", a.Views.Peek())
	}
}

func TestEscReturnsToCatalog(t *testing.T) {
	a := newTestApp(t, catalog.Index("morph"))

	a.Update(keyMsg("esc"))
	if a.Mode() != ModeCatalog {
		t.Fatalf("expected ModeCatalog after esc, got %s", a.Mode())
	}
	if a.Views.Len() != 1 {
		t.Errorf("expected only the catalog on the stack, got %d views", a.Views.Len())
	}
}

func TestLeaderNextAndPrevStepBetweenExamples(t *testing.T) {
	a := newTestApp(t, 0)

	_, cmd := a.Update(NextExampleMsg{})
	_ = cmd
	if a.exampleIdx != 1 {
		t.Errorf("expected example 1 after next, got %d", a.exampleIdx)
	}

	a.Update(PrevExampleMsg{})
	if a.exampleIdx != 0 {
		t.Errorf("expected example 0 after prev, got %d", a.exampleIdx)
	}

	// Prev from the first example wraps to the last.
	a.Update(PrevExampleMsg{})
	if a.exampleIdx != len(catalog.Entries)-1 {
		t.Errorf("expected wrap to %d, got %d", len(catalog.Entries)-1, a.exampleIdx)
	}
}

func TestResetReplacesExampleWithFreshState(t *testing.T) {
	a := newTestApp(t, catalog.Index("toggle"))

	// Flip the toggle, then reset.
	_, _ = a.Update(keyMsg("enter"))
	tv := a.Views.Peek().(*toggleView)
	if !tv.On() {
		t.Fatal("enter should flip the toggle on")
	}

	a.Update(ResetExampleMsg{})
	tv = a.Views.Peek().(*toggleView)
	if tv.On() {
		t.Error("reset should restore the initial off state")
	}
}

func TestHelpOverlayOpensAndDismisses(t *testing.T) {
	a := newTestApp(t, -1)

	a.Update(ShowHelpMsg{})
	if a.Overlays.Len() != 1 {
		t.Fatalf("expected 1 overlay, got %d", a.Overlays.Len())
	}
	top, _ := a.Overlays.Peek()
	if _, ok := top.View.(*helpModal); !ok {
		t.Errorf("expected helpModal on overlay, got %T", top.View)
	}
	if !strings.Contains(top.View.View(), "Keys") {
		t.Error("help modal should render a Keys section")
	}

	a.Update(keyMsg("esc"))
	if a.Overlays.Len() != 0 {
		t.Errorf("esc should dismiss the overlay, %d left", a.Overlays.Len())
	}
}

func TestLeaderSequenceOpensHelp(t *testing.T) {
	a := newTestApp(t, -1)

	a.Update(keyMsg(" "))
	if !a.KeyHandler.LeaderWaiting {
		t.Fatal("space should enter leader mode")
	}
	_, cmd := a.Update(keyMsg("?"))
	if cmd == nil {
		t.Fatal("SPC ? should produce a command")
	}
	a.Update(cmd())
	if a.Overlays.Len() != 1 {
		t.Errorf("expected help overlay after SPC ?, got %d overlays", a.Overlays.Len())
	}
}

func TestWindowSizeReachesAllStackedViews(t *testing.T) {
	a := newTestApp(t, catalog.Index("drag"))

	a.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	if a.width != 100 || a.height != 40 {
		t.Errorf("app should record size, got %dx%d", a.width, a.height)
	}
	// Catalog below the example must have been resized too.
	if a.Catalog.list.Width() != 100 {
		t.Errorf("catalog width = %d, want 100", a.Catalog.list.Width())
	}
}

func TestCatalogViewRendersEntries(t *testing.T) {
	c := NewCatalogView(NewTheme("dark"))
	out := c.View()
	if !strings.Contains(out, "motioncat") {
		t.Error("catalog header missing")
	}
	if !strings.Contains(out, "Basic toggle") {
		t.Error("first entry missing from catalog render")
	}
	slug, ok := c.SelectedSlug()
	if !ok || slug != catalog.Entries[0].Slug {
		t.Errorf("SelectedSlug = %q, %v; want %q, true", slug, ok, catalog.Entries[0].Slug)
	}
}
