package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"motioncat/internal/anim"
)

const (
	progressTag      = "progress"
	progressDuration = 3 * time.Second
)

// progressView fills a bar from 0 to 1. The tracked value comes from a
// linear tween, so it is monotone within a run and clamped to [0,1] by
// construction; the bubbles bar only renders it.
type progressView struct {
	env exampleEnv

	bar   progress.Model
	value *anim.Tween
}

var _ View = (*progressView)(nil)

func newProgressView(env exampleEnv) *progressView {
	bar := progress.New(
		progress.WithGradient(string(env.Theme.Palette.BoxA), string(env.Theme.Palette.Accent)),
		progress.WithWidth(46),
	)
	return &progressView{
		env:   env,
		bar:   bar,
		value: anim.NewTween(0, 1, env.dur(progressDuration), anim.Linear),
	}
}

// Value returns the tracked progress at now.
func (v *progressView) Value(now time.Time) float64 {
	if !v.value.Started() {
		return 0
	}
	return v.value.At(now)
}

// Init implements View. The fill starts on entry.
func (v *progressView) Init() tea.Cmd {
	v.value.Start(time.Now())
	return v.env.Clock.Frame(progressTag)
}

// Update implements View.
func (v *progressView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			// Restart from zero; within a run the value only climbs.
			v.value = anim.NewTween(0, 1, v.env.dur(progressDuration), anim.Linear)
			v.value.Start(time.Now())
			return v, v.env.Clock.Frame(progressTag)
		case "r":
			nv := newProgressView(v.env)
			return nv, nv.Init()
		}
	case anim.FrameMsg:
		if msg.Tag != progressTag || !v.value.Started() || v.value.Done(msg.Time) {
			return v, nil
		}
		return v, v.env.Clock.Frame(progressTag)
	}
	return v, nil
}

// View implements View.
func (v *progressView) View() string {
	val := v.Value(time.Now())
	body := v.bar.ViewAs(val)
	body += "\n\n" + v.env.Theme.Muted.Render(fmt.Sprintf("%3.0f%%", val*100))
	return v.env.chrome("Progress", "enter: restart · r: reset · esc: back", body)
}
