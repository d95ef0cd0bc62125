package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpringSettlesOnTarget(t *testing.T) {
	s := NewSpring(60, 6.0, 0.8)
	s.Target = 40

	settled := false
	for i := 0; i < 10*60; i++ {
		s.Step()
		if s.Settled() {
			settled = true
			break
		}
	}
	require.True(t, settled, "spring did not settle within 10s of frames")
	assert.InDelta(t, 40, s.Pos, settleEpsilon)
}

func TestUnderdampedSpringOvershoots(t *testing.T) {
	s := NewSpring(60, 6.0, 0.3)
	s.Target = 10

	overshot := false
	for i := 0; i < 5*60; i++ {
		s.Step()
		if s.Pos > 10 {
			overshot = true
			break
		}
	}
	assert.True(t, overshot, "damping 0.3 should overshoot the target")
}

func TestSpringSnap(t *testing.T) {
	s := NewSpring(60, 6.0, 0.8)
	s.Target = -12.5
	s.Vel = 3
	s.Snap()
	assert.Equal(t, -12.5, s.Pos)
	assert.Zero(t, s.Vel)
	assert.True(t, s.Settled())
}
