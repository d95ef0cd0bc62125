package anim

import "github.com/charmbracelet/harmonica"

// settleEpsilon bounds both position error and velocity when deciding a
// spring has come to rest.
const settleEpsilon = 0.01

// Spring is a damped harmonic oscillator driving a position toward a
// target. It wraps harmonica's projected-spring solver with the position
// and velocity pair every caller ends up carrying anyway.
type Spring struct {
	solver harmonica.Spring

	Pos, Vel float64
	Target   float64
}

// NewSpring creates a spring stepped at the given frame rate.
// Frequency is the angular frequency (stiffness); damping below 1 gives
// the characteristic overshoot, 1 is critically damped.
func NewSpring(fps int, frequency, damping float64) *Spring {
	return &Spring{
		solver: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
	}
}

// Step advances the spring by one frame toward Target.
func (s *Spring) Step() {
	s.Pos, s.Vel = s.solver.Update(s.Pos, s.Vel, s.Target)
}

// Settled reports whether the spring is at rest on its target.
func (s *Spring) Settled() bool {
	d := s.Pos - s.Target
	if d < 0 {
		d = -d
	}
	v := s.Vel
	if v < 0 {
		v = -v
	}
	return d < settleEpsilon && v < settleEpsilon
}

// Snap moves the spring directly to the target at zero velocity.
// Used by the reduced-motion path.
func (s *Spring) Snap() {
	s.Pos = s.Target
	s.Vel = 0
}
