package anim

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is one animation frame. Tag identifies the screen that
// scheduled it: a screen re-arms the clock only while it is animating,
// and ignores frames tagged for somebody else (for instance frames still
// in flight after navigating away).
type FrameMsg struct {
	Tag  string
	Time time.Time
}

// Clock issues frame ticks at a fixed rate.
type Clock struct {
	FPS int
}

// NewClock returns a clock at the given frame rate. Rates outside 8..120
// are clamped.
func NewClock(fps int) Clock {
	if fps < 8 {
		fps = 8
	}
	if fps > 120 {
		fps = 120
	}
	return Clock{FPS: fps}
}

// Interval returns the duration of one frame.
func (c Clock) Interval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// Frame returns a command delivering the next FrameMsg for tag.
func (c Clock) Frame(tag string) tea.Cmd {
	return tea.Tick(c.Interval(), func(t time.Time) tea.Msg {
		return FrameMsg{Tag: tag, Time: t}
	})
}
