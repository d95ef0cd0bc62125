package anim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The commands below invoke tea.Tick directly, which blocks for the step
// delay, so every test uses millisecond delays.

func TestSequenceStepsInOrder(t *testing.T) {
	s := NewSequence(time.Millisecond, time.Millisecond)

	cmd := s.Start()
	require.NotNil(t, cmd)
	require.True(t, s.Running())

	msg, ok := cmd().(StepMsg)
	require.True(t, ok)
	require.True(t, s.Accept(msg))
	assert.Equal(t, 0, msg.Index)

	cmd = s.Next(msg.Index)
	require.NotNil(t, cmd)
	msg, ok = cmd().(StepMsg)
	require.True(t, ok)
	require.True(t, s.Accept(msg))
	assert.Equal(t, 1, msg.Index)

	// Last step: Next finishes the run.
	assert.Nil(t, s.Next(msg.Index))
	assert.False(t, s.Running())
}

func TestSequenceCancelDropsPendingSteps(t *testing.T) {
	s := NewSequence(time.Millisecond)

	cmd := s.Start()
	require.NotNil(t, cmd)
	s.Cancel()

	msg, ok := cmd().(StepMsg)
	require.True(t, ok)
	assert.False(t, s.Accept(msg), "step from cancelled run must be dropped")
	assert.False(t, s.Running())
}

func TestSequenceRestartInvalidatesEarlierRun(t *testing.T) {
	s := NewSequence(time.Millisecond)

	first := s.Start()
	second := s.Start()

	staleMsg := first().(StepMsg)
	liveMsg := second().(StepMsg)

	assert.False(t, s.Accept(staleMsg))
	assert.True(t, s.Accept(liveMsg))
}

func TestSequenceReplacementRejectsDiscardedRunsStep(t *testing.T) {
	old := NewSequence(time.Millisecond, time.Millisecond)
	cmd := old.Start()
	first := cmd().(StepMsg)
	require.True(t, old.Accept(first))

	// Step 1 is in flight when the owning screen is rebuilt and the old
	// sequence discarded without a Cancel call.
	pending := old.Next(first.Index)
	stale := pending().(StepMsg)

	fresh := NewSequence(time.Millisecond, time.Millisecond)
	fresh.Start()

	assert.False(t, fresh.Accept(stale),
		"step from a discarded sequence must not be accepted by its replacement")
}

func TestSequenceAcceptRejectsOutOfRangeIndex(t *testing.T) {
	s := NewSequence(time.Millisecond)
	cmd := s.Start()
	msg := cmd().(StepMsg)
	assert.False(t, s.Accept(StepMsg{Gen: msg.Gen, Index: 5}))
	assert.False(t, s.Accept(StepMsg{Gen: msg.Gen, Index: -1}))
}

func TestEmptySequence(t *testing.T) {
	s := NewSequence()
	assert.Nil(t, s.Start())
	assert.False(t, s.Running())
}

func TestClockClampsRate(t *testing.T) {
	assert.Equal(t, 8, NewClock(1).FPS)
	assert.Equal(t, 120, NewClock(500).FPS)
	assert.Equal(t, 30, NewClock(30).FPS)
	assert.Equal(t, time.Second/30, NewClock(30).Interval())
}
