package ui

import "time"

// velocityWindow is how far back DragTracker looks when estimating the
// release velocity.
const velocityWindow = 100 * time.Millisecond

type dragSample struct {
	y float64
	t time.Time
}

// DragTracker turns the pointer positions of one press into drag deltas and
// a release velocity. Timestamps are passed in so callers can drive it from
// the game loop or from tests.
type DragTracker struct {
	active  bool
	pointer int
	startY  float64
	lastY   float64
	moved   bool
	samples []dragSample
}

// Begin starts tracking pointer at y.
func (d *DragTracker) Begin(pointer int, y float64, now time.Time) {
	d.active = true
	d.pointer = pointer
	d.startY = y
	d.lastY = y
	d.moved = false
	d.samples = append(d.samples[:0], dragSample{y: y, t: now})
}

// Active reports whether a press is being tracked.
func (d *DragTracker) Active() bool {
	return d.active
}

// Pointer returns the pointer ID passed to Begin.
func (d *DragTracker) Pointer() int {
	return d.pointer
}

// Dragging reports whether the pointer has travelled past TapSlop since
// Begin.
func (d *DragTracker) Dragging() bool {
	return d.moved
}

// Move records the pointer at y and returns the delta to apply. It returns
// 0 until the pointer leaves the tap slop; the first delta then covers the
// whole distance from the press.
func (d *DragTracker) Move(y float64, now time.Time) (delta float64, started bool) {
	if !d.active {
		return 0, false
	}
	d.record(y, now)
	if !d.moved {
		if abs(y-d.startY) < TapSlop {
			return 0, false
		}
		d.moved = true
		started = true
		d.lastY = d.startY
	}
	delta = y - d.lastY
	d.lastY = y
	return delta, started
}

// End stops tracking and returns the release velocity in pixels per second,
// positive downward. A pointer that rested for longer than the velocity
// window before release yields 0.
func (d *DragTracker) End(now time.Time) float64 {
	if !d.active {
		return 0
	}
	d.active = false
	v := d.velocity(now)
	d.samples = d.samples[:0]
	return v
}

func (d *DragTracker) record(y float64, now time.Time) {
	cutoff := now.Add(-velocityWindow)
	kept := d.samples[:0]
	for _, s := range d.samples {
		if s.t.After(cutoff) {
			kept = append(kept, s)
		}
	}
	d.samples = append(kept, dragSample{y: y, t: now})
}

func (d *DragTracker) velocity(now time.Time) float64 {
	cutoff := now.Add(-velocityWindow)
	var first, last *dragSample
	for i := range d.samples {
		s := &d.samples[i]
		if !s.t.After(cutoff) {
			continue
		}
		if first == nil {
			first = s
		}
		last = s
	}
	if first == nil || first == last {
		return 0
	}
	dt := last.t.Sub(first.t).Seconds()
	if dt <= 0 {
		return 0
	}
	return (last.y - first.y) / dt
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
