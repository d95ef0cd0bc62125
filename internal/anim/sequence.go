package anim

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// seqGen issues run generations. Process-wide and monotonic, so a run's
// generation is never reused, not even by a freshly constructed Sequence
// replacing a discarded one.
var seqGen atomic.Uint64

// StepMsg announces that a sequence step's delay has elapsed. The owning
// screen applies the step's effect when Accept returns true.
type StepMsg struct {
	Gen   uint64
	Index int
}

// Sequence schedules a chain of delayed steps. Each step message carries
// the generation current at scheduling time; Cancel retires the
// generation, so step messages from an abandoned run are dropped by
// Accept rather than firing against a screen that moved on. This keeps
// the deferred callback tied to the screen's lifetime instead of
// dangling.
type Sequence struct {
	Delays []time.Duration

	gen     uint64
	running bool
}

// NewSequence creates a sequence with the given per-step delays, measured
// from the moment the previous step fired (or Start, for step 0).
func NewSequence(delays ...time.Duration) *Sequence {
	return &Sequence{Delays: delays}
}

// Start schedules step 0 and returns the command that will deliver it.
// An empty sequence returns nil.
func (s *Sequence) Start() tea.Cmd {
	if len(s.Delays) == 0 {
		return nil
	}
	s.gen = seqGen.Add(1)
	s.running = true
	return s.schedule(0)
}

// Accept reports whether the message belongs to the current run.
// Stale generations and out-of-range indices are rejected.
func (s *Sequence) Accept(msg StepMsg) bool {
	return s.running && msg.Gen == s.gen && msg.Index >= 0 && msg.Index < len(s.Delays)
}

// Next schedules the step after idx, or marks the run finished when idx
// was the last step. Callers invoke it after applying an accepted step.
func (s *Sequence) Next(idx int) tea.Cmd {
	next := idx + 1
	if next >= len(s.Delays) {
		s.running = false
		return nil
	}
	return s.schedule(next)
}

// Cancel invalidates every pending step of the current run.
func (s *Sequence) Cancel() {
	s.gen = 0
	s.running = false
}

// Running reports whether a run has started and not yet finished or been
// cancelled.
func (s *Sequence) Running() bool { return s.running }

func (s *Sequence) schedule(idx int) tea.Cmd {
	gen := s.gen
	d := s.Delays[idx]
	return tea.Tick(d, func(time.Time) tea.Msg {
		return StepMsg{Gen: gen, Index: idx}
	})
}
