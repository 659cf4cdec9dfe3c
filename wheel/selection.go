package wheel

import "math"

// DeriveSelection maps a committed scroll value to the selected index and the
// selected item's offset from the center line, in item heights.
//
// The offset is positive when the selected item sits above the center line and
// stays within [-0.5, 0.5].
func DeriveSelection(scroll float64, itemHeight int, r Range, count int) (index int, offset float64) {
	if count <= 0 || itemHeight <= 0 {
		return 0, 0
	}
	v := (r.Max - scroll) / float64(itemHeight)
	index = clampInt(int(math.Round(v)), 0, count-1)
	offset = clampFloat(v-float64(index), -0.5, 0.5)
	return index, offset
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
