package anim

import "time"

// Tween animates a scalar from From to To over Duration with a Curve.
// Zero value is unusable; call Start before sampling. A Tween holds no
// timers of its own: the owning screen samples it on frame ticks, so a
// screen that stops ticking simply freezes the value.
type Tween struct {
	From, To float64
	Duration time.Duration
	Curve    Curve

	start   time.Time
	started bool
}

// NewTween returns an unstarted tween. A nil curve means Linear.
func NewTween(from, to float64, d time.Duration, c Curve) *Tween {
	if c == nil {
		c = Linear
	}
	return &Tween{From: from, To: to, Duration: d, Curve: c}
}

// Start begins the tween at the given instant. Restarting is allowed and
// resets progress to zero.
func (tw *Tween) Start(now time.Time) {
	tw.start = now
	tw.started = true
}

// Started reports whether Start has been called.
func (tw *Tween) Started() bool { return tw.started }

// Progress returns the eased progress in [0,1] at the given instant.
// Before Start it is 0; at or after Start+Duration it is 1. A zero or
// negative Duration completes immediately (the reduced-motion path).
func (tw *Tween) Progress(now time.Time) float64 {
	if !tw.started {
		return 0
	}
	if tw.Duration <= 0 {
		return 1
	}
	t := float64(now.Sub(tw.start)) / float64(tw.Duration)
	return tw.Curve(clamp01(t))
}

// At returns the tween's value at the given instant, always within the
// closed interval between From and To.
func (tw *Tween) At(now time.Time) float64 {
	return Lerp(tw.From, tw.To, tw.Progress(now))
}

// Done reports whether the tween has reached its end value.
func (tw *Tween) Done(now time.Time) bool {
	if !tw.started {
		return false
	}
	return tw.Duration <= 0 || !now.Before(tw.start.Add(tw.Duration))
}

// Reverse swaps the endpoints and restarts from the given instant,
// preserving visual continuity when flipped mid-flight: the new tween
// starts from wherever the old one currently is.
func (tw *Tween) Reverse(now time.Time) {
	cur := tw.At(now)
	tw.From, tw.To = cur, tw.From
	tw.Start(now)
}
