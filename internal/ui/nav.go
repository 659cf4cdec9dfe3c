package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Direction represents a navigation direction.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// InputState returns the arrow-key direction pressed this frame, with key
// repeat while held.
func InputState() Direction {
	switch {
	case inputRepeating(ebiten.KeyArrowUp):
		return DirUp
	case inputRepeating(ebiten.KeyArrowDown):
		return DirDown
	case inputRepeating(ebiten.KeyArrowLeft):
		return DirLeft
	case inputRepeating(ebiten.KeyArrowRight):
		return DirRight
	}
	return DirNone
}

// KeyRepeating reports whether key was just pressed or is auto-repeating.
func KeyRepeating(key ebiten.Key) bool {
	return inputRepeating(key)
}

// UpdateInputState must be called at the end of each Update() to track key state.
func UpdateInputState() {
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if ebiten.IsKeyPressed(k) {
			keyHoldFrames[k]++
		} else {
			delete(keyHoldFrames, k)
		}
	}
}

var keyHoldFrames = make(map[ebiten.Key]int)

const (
	repeatDelay    = 18 // frames before repeat starts (~300ms at 60fps)
	repeatInterval = 4  // frames between repeats (~67ms at 60fps)
)

func inputRepeating(key ebiten.Key) bool {
	if !ebiten.IsKeyPressed(key) {
		return false
	}
	frames, held := keyHoldFrames[key]
	if !held || frames == 0 {
		return true // just pressed this frame
	}
	return frames >= repeatDelay && (frames-repeatDelay)%repeatInterval == 0
}

// mousePointer identifies the mouse in PointerEvent.ID; touches use their
// non-negative ebiten touch IDs.
const mousePointer = -1

// PointerEvent is one press, move or release of the mouse or a touch.
type PointerEvent struct {
	ID       int
	X, Y     int
	Pressed  bool // went down this frame
	Released bool // went up this frame
}

// PointerEvents collects this frame's mouse and touch activity. Moves are
// reported for every held pointer, every frame.
func PointerEvents() []PointerEvent {
	var events []PointerEvent

	mx, my := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		events = append(events, PointerEvent{ID: mousePointer, X: mx, Y: my, Pressed: true})
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		events = append(events, PointerEvent{ID: mousePointer, X: mx, Y: my, Released: true})
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		events = append(events, PointerEvent{ID: mousePointer, X: mx, Y: my})
	}

	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		events = append(events, PointerEvent{ID: int(id), X: x, Y: y, Pressed: true})
	}
	for _, id := range ebiten.AppendTouchIDs(nil) {
		if inpututil.TouchPressDuration(id) == 1 {
			continue
		}
		x, y := ebiten.TouchPosition(id)
		events = append(events, PointerEvent{ID: int(id), X: x, Y: y})
	}
	for _, id := range inpututil.AppendJustReleasedTouchIDs(nil) {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		events = append(events, PointerEvent{ID: int(id), X: x, Y: y, Released: true})
	}
	return events
}

// PointInRect returns true if point (px, py) is inside the rectangle (rx, ry, rw, rh).
func PointInRect(px, py int, rx, ry, rw, rh float64) bool {
	return float64(px) >= rx && float64(px) <= rx+rw &&
		float64(py) >= ry && float64(py) <= ry+rh
}

// MouseWheelDelta returns the mouse wheel scroll delta.
func MouseWheelDelta() (dx, dy float64) {
	return ebiten.Wheel()
}

// Lerp for color and scale interpolation
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpColor blends from a to b by t in [0, 1].
func LerpColor(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: uint8(Lerp(float64(a.R), float64(b.R), t)),
		G: uint8(Lerp(float64(a.G), float64(b.G), t)),
		B: uint8(Lerp(float64(a.B), float64(b.B), t)),
		A: uint8(Lerp(float64(a.A), float64(b.A), t)),
	}
}
