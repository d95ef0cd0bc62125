package anim

import "math"

// Curve maps normalized time [0,1] to normalized progress [0,1].
// Every curve satisfies f(0)=0 and f(1)=1; inputs outside [0,1] are clamped.
type Curve func(t float64) float64

// Named curves available to examples and config.
var (
	Linear Curve = func(t float64) float64 { return clamp01(t) }

	// EaseIn starts slow and accelerates (quadratic).
	EaseIn Curve = func(t float64) float64 {
		t = clamp01(t)
		return t * t
	}

	// EaseOut starts fast and decelerates (quadratic).
	EaseOut Curve = func(t float64) float64 {
		t = clamp01(t)
		return t * (2 - t)
	}

	// EaseInOut accelerates through the first half and decelerates through
	// the second (sine-based, matching the host framework defaults the
	// examples imitate).
	EaseInOut Curve = func(t float64) float64 {
		t = clamp01(t)
		return 0.5 - 0.5*math.Cos(math.Pi*t)
	}

	// Cubic is a sharper ease-in-out (smoothstep-style cubic).
	Cubic Curve = func(t float64) float64 {
		t = clamp01(t)
		if t < 0.5 {
			return 4 * t * t * t
		}
		u := 2*t - 2
		return 0.5*u*u*u + 1
	}
)

// CurveNames lists the named curves in display order.
var CurveNames = []string{"linear", "ease-in", "ease-out", "ease-in-out", "cubic"}

// CurveByName returns the named curve, defaulting to Linear for unknown names.
func CurveByName(name string) Curve {
	switch name {
	case "ease-in":
		return EaseIn
	case "ease-out":
		return EaseOut
	case "ease-in-out":
		return EaseInOut
	case "cubic":
		return Cubic
	default:
		return Linear
	}
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Lerp interpolates between a and b by normalized t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
