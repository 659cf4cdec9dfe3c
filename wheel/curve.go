package wheel

import (
	"iter"
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// Curve produces the intermediate values of an animated scroll. The sequence
// is finite and its last value is exactly to.
type Curve interface {
	Values(from, to, velocity float64) iter.Seq[float64]
}

// DefaultFPS is the frame rate curves are sampled at.
const DefaultFPS = 60

// Spring animates with a damped harmonic oscillator. Velocity is honored, so
// a fling keeps its momentum into the snap.
type Spring struct {
	FPS       int
	Frequency float64 // angular frequency
	Damping   float64 // damping ratio; < 1 overshoots
}

// DefaultSpring is slightly bouncy with medium-low stiffness.
func DefaultSpring() Spring {
	return Spring{FPS: DefaultFPS, Frequency: 20, Damping: 0.75}
}

const (
	springRestDistance = 0.5 // px
	springRestVelocity = 2   // px/s
	springMaxFrames    = 10 * DefaultFPS
)

func (s Spring) Values(from, to, velocity float64) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if s.Frequency <= 0 {
			yield(to)
			return
		}
		fps := s.FPS
		if fps <= 0 {
			fps = DefaultFPS
		}
		sp := harmonica.NewSpring(harmonica.FPS(fps), s.Frequency, s.Damping)
		pos, vel := from, velocity
		for range springMaxFrames {
			pos, vel = sp.Update(pos, vel, to)
			if math.Abs(pos-to) < springRestDistance && math.Abs(vel) < springRestVelocity {
				break
			}
			if !yield(pos) {
				return
			}
		}
		yield(to)
	}
}

// EasingFunc maps time progress in [0, 1] to value progress.
type EasingFunc func(t float64) float64

var (
	EaseLinear    EasingFunc = func(t float64) float64 { return t }
	EaseOutQuad   EasingFunc = func(t float64) float64 { return t * (2 - t) }
	EaseInOutQuad EasingFunc = func(t float64) float64 {
		if t < 0.5 {
			return 2 * t * t
		}
		return -1 + (4-2*t)*t
	}
	EaseOutCubic EasingFunc = func(t float64) float64 {
		t--
		return t*t*t + 1
	}
	// EaseOutBack overshoots slightly then settles.
	EaseOutBack EasingFunc = func(t float64) float64 {
		c1 := 1.70158
		c3 := c1 + 1
		return 1 + c3*(t-1)*(t-1)*(t-1) + c1*(t-1)*(t-1)
	}
)

// EasingByName returns the easing function for name, or nil if unknown.
func EasingByName(name string) EasingFunc {
	switch name {
	case "linear":
		return EaseLinear
	case "ease-out":
		return EaseOutQuad
	case "ease", "ease-in-out":
		return EaseInOutQuad
	case "cubic":
		return EaseOutCubic
	case "back":
		return EaseOutBack
	default:
		return nil
	}
}

// Tween animates over a fixed duration. It ignores the initial velocity.
type Tween struct {
	FPS      int
	Duration time.Duration
	Easing   EasingFunc
}

func (tw Tween) Values(from, to, _ float64) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		fps := tw.FPS
		if fps <= 0 {
			fps = DefaultFPS
		}
		easing := tw.Easing
		if easing == nil {
			easing = EaseOutCubic
		}
		frames := int(math.Ceil(tw.Duration.Seconds() * float64(fps)))
		for i := 1; i < frames; i++ {
			if !yield(from + (to-from)*easing(float64(i)/float64(frames))) {
				return
			}
		}
		yield(to)
	}
}

// Snap jumps straight to the target.
type Snap struct{}

func (Snap) Values(_, to, _ float64) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		yield(to)
	}
}

// CurveByName returns the default curve of the named kind: "spring", "tween"
// or "snap".
func CurveByName(name string) (Curve, bool) {
	switch name {
	case "spring", "":
		return DefaultSpring(), true
	case "tween":
		return Tween{FPS: DefaultFPS, Duration: 250 * time.Millisecond, Easing: EaseOutCubic}, true
	case "snap", "none":
		return Snap{}, true
	default:
		return nil, false
	}
}
