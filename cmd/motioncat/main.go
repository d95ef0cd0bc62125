package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"motioncat/internal/catalog"
	"motioncat/internal/config"
	"motioncat/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "motioncat: %v\n", err)
		os.Exit(1)
	}

	startIdx := -1
	if len(os.Args) > 1 {
		idx, ok := catalog.Resolve(os.Args[1])
		if !ok {
			fmt.Fprintf(os.Stderr, "motioncat: unknown example %q\n\nExamples:\n", os.Args[1])
			for _, e := range catalog.Entries {
				fmt.Fprintf(os.Stderr, "  %-10s %s\n", e.Slug, e.Blurb)
			}
			os.Exit(1)
		}
		startIdx = idx
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	model := ui.NewAppModel(cfg, startIdx).AsTeaModel()
	p := tea.NewProgram(model, opts...)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "motioncat: %v\n", err)
		os.Exit(1)
	}
}
