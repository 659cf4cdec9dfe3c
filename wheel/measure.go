package wheel

import (
	"math"
	"sync"
)

// Constraints bound the size a visual may take.
type Constraints struct {
	MinWidth, MaxWidth   int
	MinHeight, MaxHeight int
}

// Size is a measured width and height in pixels.
type Size struct {
	Width, Height int
}

// Measurable is an item or window visual that can report its size.
type Measurable interface {
	Measure(c Constraints) Size
}

// MeasurableFunc adapts a function to Measurable.
type MeasurableFunc func(c Constraints) Size

func (f MeasurableFunc) Measure(c Constraints) Size { return f(c) }

// PositionFunc receives an item's distance from the center line every layout
// pass: in item heights (selection) and in half viewport heights (viewport).
// Both are clamped to [-1, 1]; negative means above center.
type PositionFunc func(selectionOffset, viewportOffset float64)

// Placement is where one visual goes inside the wheel.
type Placement struct {
	Index int // -1 for the window
	X, Y  int
	Size

	SelectionOffset float64
	ViewportOffset  float64
}

// Frame is the result of one measurement pass.
type Frame struct {
	Width, Height int
	ItemHeight    int
	CenterLine    float64
	VisibleCount  int

	// First and Last bound the placed items; Last < First when none are.
	First, Last int

	Window Placement
	Items  []Placement
}

// Layout measures and places a wheel's visuals around a State.
type Layout struct {
	State      *State
	BufferSize int

	mu        sync.Mutex
	callbacks map[int]PositionFunc
}

// NewLayout creates a layout showing bufferSize items above and below the
// window.
func NewLayout(state *State, bufferSize int) *Layout {
	return &Layout{
		State:      state,
		BufferSize: bufferSize,
		callbacks:  make(map[int]PositionFunc),
	}
}

// SetPositionCallback registers fn for the item at index. A nil fn removes
// the registration.
func (l *Layout) SetPositionCallback(index int, fn PositionFunc) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if fn == nil {
		delete(l.callbacks, index)
		return
	}
	l.callbacks[index] = fn
}

func (l *Layout) ClearPositionCallbacks() {
	l.mu.Lock()
	clear(l.callbacks)
	l.mu.Unlock()
}

func (l *Layout) positionCallback(index int) PositionFunc {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.callbacks[index]
}

// VisibleCount returns how many item slots the viewport shows: 2*bufferSize+1
// capped to itemCount, and always odd so one slot sits on the center line.
func VisibleCount(bufferSize, itemCount int) int {
	n := min(2*bufferSize+1, itemCount)
	if n < 1 {
		return 1
	}
	if n%2 == 0 {
		n++
	}
	return n
}

// Measure runs one measurement pass: it sizes the viewport from the tallest
// item, pushes the geometry into the state and places the window and every
// item that can intersect the viewport.
func (l *Layout) Measure(items []Measurable, window Measurable, c Constraints) Frame {
	sizes := make([]Size, len(items))
	itemWidth, itemHeight := 0, 0
	for i, it := range items {
		sizes[i] = it.Measure(c)
		itemWidth = max(itemWidth, sizes[i].Width)
		itemHeight = max(itemHeight, sizes[i].Height)
	}
	visible := VisibleCount(l.BufferSize, len(items))

	var win Size
	if window != nil {
		wc := c
		wc.MinWidth = itemWidth
		wc.MinHeight = itemHeight
		wc.MaxWidth = max(wc.MaxWidth, wc.MinWidth)
		wc.MaxHeight = max(wc.MaxHeight, wc.MinHeight)
		win = window.Measure(wc)
	}
	width := max(itemWidth, win.Width)
	itemHeight = max(itemHeight, win.Height)
	height := visible * itemHeight
	center := float64(height) / 2

	l.State.Measured(len(items), itemHeight, visible)

	f := Frame{
		Width:        width,
		Height:       height,
		ItemHeight:   itemHeight,
		CenterLine:   center,
		VisibleCount: visible,
		Last:         -1,
		Window: Placement{
			Index: -1,
			X:     (width - win.Width) / 2,
			Y:     (height - win.Height) / 2,
			Size:  win,
		},
	}
	if len(items) == 0 || itemHeight == 0 {
		return f
	}

	scroll := l.State.Scroll()
	bounds := l.State.Range()
	h := float64(itemHeight)

	f.First = max(int((bounds.Max-scroll)/h)-visible/2, 0)
	f.Last = min(f.First+visible, len(items)-1)
	f.Items = make([]Placement, 0, f.Last-f.First+1)
	for index := f.First; index <= f.Last; index++ {
		size := sizes[index]
		itemY := scroll + h*float64(index)
		fromCenter := itemY + h/2 - center
		p := Placement{
			Index:           index,
			X:               (width - size.Width) / 2,
			Y:               int(math.Floor(itemY)) + (itemHeight-size.Height)/2,
			Size:            size,
			SelectionOffset: clampFloat(fromCenter/h, -1, 1),
			ViewportOffset:  clampFloat(fromCenter/(float64(height)/2), -1, 1),
		}
		f.Items = append(f.Items, p)
		if fn := l.positionCallback(index); fn != nil {
			fn(p.SelectionOffset, p.ViewportOffset)
		}
	}
	return f
}
