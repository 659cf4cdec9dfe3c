package wheel

import (
	"context"
	"errors"
	"math"
	"sync"
)

// Priority ranks scroll requests. A request may preempt a running operation
// of lower or equal priority.
type Priority int

const (
	Default Priority = iota
	UserInput
)

func (p Priority) String() string {
	switch p {
	case Default:
		return "default"
	case UserInput:
		return "user-input"
	default:
		return "unknown"
	}
}

// ErrRejected is returned when a scroll request loses arbitration: a drag is
// in progress or a higher-priority operation is running.
var ErrRejected = errors.New("wheel: scroll request rejected")

// task is the handle of the single operation allowed to drive the scroll.
type task struct {
	priority Priority
	ctx      context.Context
	cancel   context.CancelFunc
	done     chan struct{}
}

func (t *task) live() bool {
	return t.ctx.Err() == nil
}

// State holds the scroll position and selection of one wheel. It is safe for
// concurrent use: the UI goroutine feeds drags and layout passes while
// animated operations commit from the goroutine that requested them.
type State struct {
	mu sync.Mutex

	itemCount    int
	itemHeight   int
	visibleCount int
	bounds       Range
	measured     bool
	pendingIndex int

	scroll float64
	index  int
	offset float64

	dragging bool
	task     *task

	curve    Curve
	friction float64
	frames   Frames
	onSelect func(index int)

	// selections queues changed indexes in commit order; delivering is set
	// while one goroutine drains it.
	selections []int
	delivering bool

	interactions InteractionSource
}

// Option configures a State.
type Option func(*State)

// WithInitialIndex selects index once the first layout pass has run. Restore
// a saved selection with WithInitialIndex(saved).
func WithInitialIndex(index int) Option {
	return func(s *State) {
		s.pendingIndex = max(index, 0)
		s.index = s.pendingIndex
	}
}

func WithCurve(c Curve) Option {
	return func(s *State) { s.curve = c }
}

func WithFriction(f float64) Option {
	return func(s *State) { s.friction = f }
}

// WithFrames sets the frame source animations wait on between values.
func WithFrames(f Frames) Option {
	return func(s *State) { s.frames = f }
}

// WithOnSelect registers the selection-changed callback. It runs without the
// state lock held, possibly on an animating goroutine. Calls never overlap
// and arrive in commit order, so the last index delivered is Index().
func WithOnSelect(fn func(index int)) Option {
	return func(s *State) { s.onSelect = fn }
}

// NewState creates the state for one wheel. Without options it selects the
// first item, snaps with DefaultSpring and never waits between frames.
func NewState(opts ...Option) *State {
	s := &State{
		curve:    DefaultSpring(),
		friction: DefaultFriction,
		frames:   Immediate{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Index returns the selected item.
func (s *State) Index() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index
}

// Saved returns the value to persist across restarts.
func (s *State) Saved() int {
	return s.Index()
}

// Scroll returns the committed scroll value in pixels.
func (s *State) Scroll() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scroll
}

// Value returns the scroll position as a continuous index.
func (s *State) Value() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.valueLocked()
}

func (s *State) valueLocked() float64 {
	if !s.measured {
		return float64(s.index)
	}
	return (s.bounds.Max - s.scroll) / float64(s.itemHeight)
}

// ItemOffset returns how far the selected item is from dead center, in item
// heights, within [-0.5, 0.5].
func (s *State) ItemOffset() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.offset
}

// MaxItemHeight returns the height of one index step, or 0 before the first
// layout pass.
func (s *State) MaxItemHeight() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itemHeight
}

func (s *State) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itemCount
}

func (s *State) VisibleCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visibleCount
}

func (s *State) Range() Range {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bounds
}

// Dragging reports whether a drag owns the scroll.
func (s *State) Dragging() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dragging
}

// ActivePriority returns the priority of the running operation, if any.
func (s *State) ActivePriority() (Priority, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.task == nil || !s.task.live() {
		return 0, false
	}
	return s.task.priority, true
}

// Interactions returns the press/release stream of the wheel.
func (s *State) Interactions() *InteractionSource {
	return &s.interactions
}

func (s *State) SetCurve(c Curve) {
	s.mu.Lock()
	s.curve = c
	s.mu.Unlock()
}

func (s *State) SetFriction(f float64) {
	s.mu.Lock()
	s.friction = f
	s.mu.Unlock()
}

func (s *State) SetOnSelect(fn func(index int)) {
	s.mu.Lock()
	s.onSelect = fn
	s.mu.Unlock()
}

// Measured records the geometry of a layout pass. The first pass with items
// and a non-zero item height centers the initial index. Later passes that
// change the geometry keep the continuous value and cancel any running
// operation, whose pixel target is stale.
func (s *State) Measured(count, itemHeight, visibleCount int) {
	s.mu.Lock()
	if s.measured && count == s.itemCount && itemHeight == s.itemHeight && visibleCount == s.visibleCount {
		s.mu.Unlock()
		return
	}
	bounds := RangeFor(count, itemHeight, visibleCount)
	wasMeasured := s.measured
	var value float64
	if wasMeasured {
		s.cancelLocked()
		value = s.valueLocked()
		s.pendingIndex = s.index
	}
	s.itemCount = count
	s.itemHeight = itemHeight
	s.visibleCount = visibleCount
	s.bounds = bounds
	s.measured = itemHeight > 0 && count > 0
	if !s.measured {
		s.scroll = bounds.Max
		s.offset = 0
		s.mu.Unlock()
		return
	}
	if !wasMeasured {
		s.index = clampIndex(s.pendingIndex, count)
		value = float64(s.index)
	}
	s.commitLocked(bounds.ScrollForValue(value, itemHeight))
	s.mu.Unlock()
	s.deliver()
}

// Calculated reports whether a layout pass has established the initial
// scroll.
func (s *State) Calculated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.measured
}

// commitLocked clamps and stores a scroll value, then re-derives the
// selection from it. A changed index is queued for deliver.
func (s *State) commitLocked(v float64) {
	s.scroll = s.bounds.Clamp(v)
	prev := s.index
	s.index, s.offset = DeriveSelection(s.scroll, s.itemHeight, s.bounds, s.itemCount)
	if s.itemCount > 0 && s.index != prev {
		s.selections = append(s.selections, s.index)
	}
}

// deliver runs the selection callback for every queued index. Only one
// goroutine drains the queue at a time; a commit made meanwhile, including
// one made from inside the callback, is delivered by that goroutine after
// the current call returns. Must be called without the lock held.
func (s *State) deliver() {
	s.mu.Lock()
	if s.delivering {
		s.mu.Unlock()
		return
	}
	s.delivering = true
	for len(s.selections) > 0 {
		index := s.selections[0]
		s.selections = s.selections[1:]
		fn := s.onSelect
		s.mu.Unlock()
		if fn != nil {
			fn(index)
		}
		s.mu.Lock()
	}
	s.selections = nil
	s.delivering = false
	s.mu.Unlock()
}

func (s *State) cancelLocked() {
	if s.task != nil {
		s.task.cancel()
	}
}

// BeginDrag hands the scroll to a drag, cancelling any running operation
// regardless of its priority. Animated requests are rejected until EndDrag.
func (s *State) BeginDrag() {
	s.mu.Lock()
	s.dragging = true
	s.cancelLocked()
	s.mu.Unlock()
}

// Drag applies a vertical drag delta in pixels. Positive deltas move the
// content down, toward lower indexes. It never waits.
func (s *State) Drag(delta float64) {
	s.mu.Lock()
	s.cancelLocked()
	if !s.measured {
		s.mu.Unlock()
		return
	}
	s.commitLocked(s.scroll + delta)
	s.mu.Unlock()
	s.deliver()
}

// ReleaseDrag ends the drag without snapping. Callers that snap on another
// goroutine release first, so a later BeginDrag cannot be undone by a
// release that runs late.
func (s *State) ReleaseDrag() {
	s.mu.Lock()
	s.dragging = false
	s.mu.Unlock()
}

// EndDrag releases the drag and snaps with the release velocity in pixels per
// second.
func (s *State) EndDrag(ctx context.Context, velocity float64) error {
	s.ReleaseDrag()
	return s.Snap(ctx, velocity, UserInput)
}

// Stop cancels the running operation, if any.
func (s *State) Stop() {
	s.mu.Lock()
	s.cancelLocked()
	s.mu.Unlock()
}

// Snap projects where a fling with the given velocity would stop, rounds it
// to the nearest item and animates there, starting at that velocity.
func (s *State) Snap(ctx context.Context, velocity float64, p Priority) error {
	return s.startScroll(ctx, p, func(t *task) error {
		s.mu.Lock()
		if !s.measured {
			s.mu.Unlock()
			return nil
		}
		target := SnapTarget(ProjectStop(s.scroll, velocity, s.friction), s.itemHeight, s.bounds)
		s.mu.Unlock()
		return s.animate(t, target, velocity)
	})
}

// ScrollTo jumps to index. Out-of-range indexes are clamped.
func (s *State) ScrollTo(ctx context.Context, index int, p Priority) error {
	return s.ScrollToValue(ctx, float64(index), p)
}

// ScrollToValue jumps to a continuous index, so 2.25 leaves item 2 a quarter
// item above center.
func (s *State) ScrollToValue(ctx context.Context, value float64, p Priority) error {
	return s.startScroll(ctx, p, func(t *task) error {
		s.mu.Lock()
		if !s.measured {
			s.pendingIndex = max(int(math.Round(value)), 0)
			s.index = s.pendingIndex
			s.mu.Unlock()
			return nil
		}
		v := clampFloat(value, 0, float64(max(s.itemCount-1, 0)))
		target := s.bounds.ScrollForValue(v, s.itemHeight)
		s.mu.Unlock()
		s.commit(t, target)
		return nil
	})
}

// AnimateScrollTo animates to index with the configured curve. Out-of-range
// indexes are clamped.
func (s *State) AnimateScrollTo(ctx context.Context, index int, p Priority) error {
	return s.startScroll(ctx, p, func(t *task) error {
		s.mu.Lock()
		if !s.measured {
			s.pendingIndex = max(index, 0)
			s.index = s.pendingIndex
			s.mu.Unlock()
			return nil
		}
		target := s.bounds.ScrollFor(clampIndex(index, s.itemCount), s.itemHeight)
		s.mu.Unlock()
		return s.animate(t, target, 0)
	})
}

// IndexAt resolves a tap at local y to the item drawn there.
func (s *State) IndexAt(y float64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.itemHeight <= 0 || s.itemCount == 0 {
		return s.index
	}
	row := int(math.Floor(y / float64(s.itemHeight)))
	return clampIndex(s.index-s.visibleCount/2+row, s.itemCount)
}

// startScroll arbitrates and runs one operation. A running operation of lower
// or equal priority is cancelled and awaited first, so no two operations ever
// commit concurrently. It returns nil when run completes or is preempted.
func (s *State) startScroll(ctx context.Context, p Priority, run func(t *task) error) error {
	var t *task
	for t == nil {
		s.mu.Lock()
		if s.dragging {
			s.mu.Unlock()
			return ErrRejected
		}
		prev := s.task
		if prev == nil {
			tctx, cancel := context.WithCancel(ctx)
			t = &task{priority: p, ctx: tctx, cancel: cancel, done: make(chan struct{})}
			s.task = t
			s.mu.Unlock()
			break
		}
		if prev.live() && prev.priority > p {
			s.mu.Unlock()
			return ErrRejected
		}
		s.mu.Unlock()

		prev.cancel()
		select {
		case <-prev.done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	defer func() {
		s.mu.Lock()
		if s.task == t {
			s.task = nil
		}
		s.mu.Unlock()
		t.cancel()
		close(t.done)
	}()

	if err := run(t); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if t.ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}

// commit writes v unless t has been cancelled. The check happens under the
// lock, so a preempted operation cannot commit after its replacement started.
func (s *State) commit(t *task, v float64) bool {
	s.mu.Lock()
	if !t.live() {
		s.mu.Unlock()
		return false
	}
	s.commitLocked(v)
	s.mu.Unlock()
	s.deliver()
	return true
}

func (s *State) animate(t *task, to, velocity float64) error {
	s.mu.Lock()
	from, curve, frames := s.scroll, s.curve, s.frames
	s.mu.Unlock()

	for v := range curve.Values(from, to, velocity) {
		if err := frames.Wait(t.ctx); err != nil {
			return err
		}
		if !s.commit(t, v) {
			return t.ctx.Err()
		}
	}
	return nil
}

func clampIndex(index, count int) int {
	if count <= 0 {
		return 0
	}
	return clampInt(index, 0, count-1)
}
