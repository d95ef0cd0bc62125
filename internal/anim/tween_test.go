package anim

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTweenValueStaysWithinEndpoints(t *testing.T) {
	start := time.Unix(0, 0)
	for _, name := range CurveNames {
		tw := NewTween(3, 11, time.Second, CurveByName(name))
		tw.Start(start)
		for ms := -100; ms <= 1500; ms += 16 {
			now := start.Add(time.Duration(ms) * time.Millisecond)
			v := tw.At(now)
			assert.GreaterOrEqual(t, v, 3.0, "%s at %dms", name, ms)
			assert.LessOrEqual(t, v, 11.0, "%s at %dms", name, ms)
		}
	}
}

func TestTweenEndpoints(t *testing.T) {
	start := time.Unix(0, 0)
	tw := NewTween(0, 1, time.Second, EaseInOut)

	// Unstarted tween sits at From.
	assert.InDelta(t, 0, tw.At(start), 1e-9)
	assert.False(t, tw.Done(start))

	tw.Start(start)
	assert.InDelta(t, 0, tw.At(start), 1e-9)
	assert.InDelta(t, 1, tw.At(start.Add(time.Second)), 1e-9)
	assert.InDelta(t, 1, tw.At(start.Add(time.Hour)), 1e-9)
	require.True(t, tw.Done(start.Add(time.Second)))
	require.False(t, tw.Done(start.Add(999*time.Millisecond)))
}

func TestTweenZeroDurationCompletesImmediately(t *testing.T) {
	start := time.Unix(0, 0)
	tw := NewTween(2, 7, 0, nil)
	tw.Start(start)
	assert.InDelta(t, 7, tw.At(start), 1e-9)
	assert.True(t, tw.Done(start))
}

func TestTweenReverseIsContinuous(t *testing.T) {
	start := time.Unix(0, 0)
	tw := NewTween(0, 10, time.Second, Linear)
	tw.Start(start)

	mid := start.Add(300 * time.Millisecond)
	before := tw.At(mid)
	tw.Reverse(mid)

	// No jump at the reversal instant.
	assert.InDelta(t, before, tw.At(mid), 1e-9)
	// And it heads back to the original From.
	assert.InDelta(t, 0, tw.At(mid.Add(2*time.Second)), 1e-9)
}

func TestTweenProgressMonotoneForMonotoneCurves(t *testing.T) {
	start := time.Unix(0, 0)
	tw := NewTween(0, 1, time.Second, Cubic)
	tw.Start(start)
	prev := math.Inf(-1)
	for ms := 0; ms <= 1100; ms += 10 {
		p := tw.Progress(start.Add(time.Duration(ms) * time.Millisecond))
		require.GreaterOrEqual(t, p+1e-12, prev, "at %dms", ms)
		prev = p
	}
}
