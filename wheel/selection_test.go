package wheel

import (
	"math"
	"testing"
)

func TestDeriveSelection(t *testing.T) {
	r := RangeFor(10, 40, 7) // Max 120, Min -240

	tests := []struct {
		name       string
		scroll     float64
		count      int
		wantIndex  int
		wantOffset float64
	}{
		{name: "first item centered", scroll: 120, count: 10, wantIndex: 0, wantOffset: 0},
		{name: "last item centered", scroll: -240, count: 10, wantIndex: 9, wantOffset: 0},
		{name: "quarter past index 2", scroll: 30, count: 10, wantIndex: 2, wantOffset: 0.25},
		{name: "quarter before index 3", scroll: 10, count: 10, wantIndex: 3, wantOffset: -0.25},
		{name: "halfway rounds up", scroll: 20, count: 10, wantIndex: 3, wantOffset: -0.5},
		{name: "above range clamps", scroll: 200, count: 10, wantIndex: 0, wantOffset: -0.5},
		{name: "no items", scroll: 0, count: 0, wantIndex: 0, wantOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, offset := DeriveSelection(tt.scroll, 40, r, tt.count)
			if index != tt.wantIndex {
				t.Errorf("index = %d, want %d", index, tt.wantIndex)
			}
			if math.Abs(offset-tt.wantOffset) > 1e-9 {
				t.Errorf("offset = %v, want %v", offset, tt.wantOffset)
			}
		})
	}
}

func TestDeriveSelectionUnmeasured(t *testing.T) {
	index, offset := DeriveSelection(50, 0, Range{}, 10)
	if index != 0 || offset != 0 {
		t.Errorf("DeriveSelection with zero item height = (%d, %v), want (0, 0)", index, offset)
	}
}
