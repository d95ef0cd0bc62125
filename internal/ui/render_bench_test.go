package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"motioncat/internal/anim"
	"motioncat/internal/catalog"
)

// BenchmarkCatalogView_Render benchmarks catalog rendering.
func BenchmarkCatalogView_Render(b *testing.B) {
	c := NewCatalogView(NewTheme("dark"))
	c.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.View()
	}
}

// BenchmarkExampleViews_Render renders every example once per iteration,
// mid-animation, which is the hot path at 30-120 fps.
func BenchmarkExampleViews_Render(b *testing.B) {
	env := exampleEnv{Theme: NewTheme("dark"), Clock: anim.NewClock(60)}
	views := make([]View, len(catalog.Entries))
	for i := range catalog.Entries {
		views[i] = newExampleView(i, env)
		views[i].Init()
		views[i].Update(keyMsg("enter"))
		views[i].Update(anim.FrameMsg{Tag: catalog.Entries[i].Slug, Time: time.Now()})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, v := range views {
			_ = v.View()
		}
	}
}
