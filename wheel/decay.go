package wheel

import "math"

// DefaultFriction is the fling friction used when none is configured.
const DefaultFriction = 8.0

// decayScale converts a friction multiplier into the exponential decay rate.
const decayScale = 4.2

// ProjectStop returns where a fling starting at current with the given
// velocity (pixels per second) comes to rest under exponential decay. The
// result is not clamped.
func ProjectStop(current, velocity, friction float64) float64 {
	if friction <= 0 {
		return current
	}
	return current + velocity/(friction*decayScale)
}

// SnapTarget clamps a projected stop into r and rounds it to the nearest item
// boundary. Boundaries are multiples of itemHeight measured from r.Max, which
// is itself a multiple of itemHeight for every odd visible count.
func SnapTarget(projected float64, itemHeight int, r Range) float64 {
	if itemHeight <= 0 {
		return r.Clamp(projected)
	}
	h := float64(itemHeight)
	d := r.Clamp(projected) - r.Max
	rem := math.Mod(d, h)
	steps := math.Round((d - rem) / h)
	if math.Abs(rem) >= h/2 {
		steps += math.Copysign(1, rem)
	}
	return r.Clamp(r.Max + steps*h)
}
