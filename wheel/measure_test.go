package wheel

import (
	"context"
	"math"
	"testing"
)

func fixed(w, h int) Measurable {
	return MeasurableFunc(func(Constraints) Size { return Size{Width: w, Height: h} })
}

func items(n, w, h int) []Measurable {
	out := make([]Measurable, n)
	for i := range out {
		out[i] = fixed(w, h)
	}
	return out
}

func TestVisibleCount(t *testing.T) {
	tests := []struct {
		buffer, count int
		want          int
	}{
		{buffer: 3, count: 100, want: 7},
		{buffer: 3, count: 5, want: 5},
		{buffer: 3, count: 4, want: 5},
		{buffer: 3, count: 0, want: 1},
		{buffer: 0, count: 10, want: 1},
		{buffer: 2, count: 2, want: 3},
	}
	for _, tt := range tests {
		if got := VisibleCount(tt.buffer, tt.count); got != tt.want {
			t.Errorf("VisibleCount(%d, %d) = %d, want %d", tt.buffer, tt.count, got, tt.want)
		}
	}
}

func TestMeasureFrame(t *testing.T) {
	state := NewState()
	l := NewLayout(state, 3)
	window := MeasurableFunc(func(c Constraints) Size {
		return Size{Width: c.MinWidth + 10, Height: c.MinHeight}
	})

	f := l.Measure(items(10, 80, 40), window, Constraints{MaxWidth: 400, MaxHeight: 400})

	if f.Width != 90 || f.Height != 280 || f.ItemHeight != 40 || f.VisibleCount != 7 {
		t.Errorf("frame = %dx%d item %d visible %d, want 90x280 item 40 visible 7",
			f.Width, f.Height, f.ItemHeight, f.VisibleCount)
	}
	if f.CenterLine != 140 {
		t.Errorf("CenterLine = %v, want 140", f.CenterLine)
	}
	if f.Window.X != 0 || f.Window.Y != 120 || f.Window.Index != -1 {
		t.Errorf("Window = %+v, want index -1 at (0, 120)", f.Window)
	}
	if f.First != 0 || f.Last != 7 {
		t.Errorf("First, Last = %d, %d, want 0, 7", f.First, f.Last)
	}
	if state.MaxItemHeight() != 40 || state.Range().Max != 120 {
		t.Errorf("state not measured: height %d, range %+v", state.MaxItemHeight(), state.Range())
	}

	first := f.Items[0]
	if first.X != 5 || first.Y != 120 {
		t.Errorf("item 0 at (%d, %d), want (5, 120)", first.X, first.Y)
	}
	if first.SelectionOffset != 0 || first.ViewportOffset != 0 {
		t.Errorf("item 0 offsets = %v, %v, want 0, 0", first.SelectionOffset, first.ViewportOffset)
	}
}

func TestMeasureFollowsScroll(t *testing.T) {
	state := NewState(WithInitialIndex(5))
	l := NewLayout(state, 3)

	f := l.Measure(items(10, 80, 40), nil, Constraints{})
	if f.First != 2 || f.Last != 9 {
		t.Errorf("First, Last = %d, %d, want 2, 9", f.First, f.Last)
	}
	for _, p := range f.Items {
		if p.Index == 5 && p.Y != 120 {
			t.Errorf("selected item Y = %d, want 120", p.Y)
		}
	}

	state.Drag(-10)
	f = l.Measure(items(10, 80, 40), nil, Constraints{})
	for _, p := range f.Items {
		if p.Index != state.Index() {
			continue
		}
		if math.Abs(p.SelectionOffset+state.ItemOffset()) > 1e-9 {
			t.Errorf("SelectionOffset = %v, ItemOffset = %v, want opposite signs", p.SelectionOffset, state.ItemOffset())
		}
	}
}

func TestPositionCallbacks(t *testing.T) {
	state := NewState()
	l := NewLayout(state, 3)

	var gotSel, gotView float64
	calls := 0
	l.SetPositionCallback(1, func(sel, view float64) {
		gotSel, gotView = sel, view
		calls++
	})
	l.SetPositionCallback(2, func(float64, float64) { t.Error("removed callback called") })
	l.SetPositionCallback(2, nil)

	l.Measure(items(10, 80, 40), nil, Constraints{})
	if calls != 1 {
		t.Fatalf("callback called %d times, want 1", calls)
	}
	if gotSel != 1 || math.Abs(gotView-40.0/140) > 1e-9 {
		t.Errorf("offsets = %v, %v, want 1, %v", gotSel, gotView, 40.0/140)
	}

	if err := state.ScrollTo(context.Background(), 9, Default); err != nil {
		t.Fatal(err)
	}
	l.Measure(items(10, 80, 40), nil, Constraints{})
	if calls != 1 {
		t.Errorf("callback for an item outside the viewport was called")
	}

	l.ClearPositionCallbacks()
	state.Drag(1000)
	l.Measure(items(10, 80, 40), nil, Constraints{})
	if calls != 1 {
		t.Errorf("cleared callback was called")
	}
}

func TestPositionOffsetsAreClamped(t *testing.T) {
	state := NewState()
	l := NewLayout(state, 3)

	f := l.Measure(items(10, 80, 40), nil, Constraints{})
	for _, p := range f.Items {
		if p.SelectionOffset < -1 || p.SelectionOffset > 1 || p.ViewportOffset < -1 || p.ViewportOffset > 1 {
			t.Errorf("item %d offsets %v, %v outside [-1, 1]", p.Index, p.SelectionOffset, p.ViewportOffset)
		}
	}
	last := f.Items[len(f.Items)-1]
	if last.SelectionOffset != 1 {
		t.Errorf("far item SelectionOffset = %v, want 1", last.SelectionOffset)
	}
}

func TestMeasureWithoutItems(t *testing.T) {
	state := NewState()
	l := NewLayout(state, 3)

	f := l.Measure(nil, fixed(60, 30), Constraints{MaxWidth: 200, MaxHeight: 200})
	if f.Height != 30 || f.Width != 60 || f.VisibleCount != 1 {
		t.Errorf("frame = %dx%d visible %d, want 60x30 visible 1", f.Width, f.Height, f.VisibleCount)
	}
	if len(f.Items) != 0 || f.Last >= f.First {
		t.Errorf("items placed: %+v", f.Items)
	}
	if state.Calculated() {
		t.Error("state calculated with no items")
	}
}
