package wheel

// Range is the span of valid scroll values, in pixels. Max centers the first
// item and Min centers the last one, so scrolling toward lower values moves
// toward higher indexes.
type Range struct {
	Min, Max float64
}

// RangeFor computes the scroll range for count items of itemHeight pixels in a
// viewport showing visibleCount items.
func RangeFor(count, itemHeight, visibleCount int) Range {
	height := visibleCount * itemHeight
	top := float64((height - itemHeight) / 2)
	if count <= 0 || itemHeight <= 0 {
		return Range{Min: top, Max: top}
	}
	return Range{
		Min: top - float64((count-1)*itemHeight),
		Max: top,
	}
}

// Clamp restricts v to the range.
func (r Range) Clamp(v float64) float64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// Width returns Max - Min.
func (r Range) Width() float64 {
	return r.Max - r.Min
}

// ScrollFor returns the scroll value that centers index.
func (r Range) ScrollFor(index, itemHeight int) float64 {
	return r.Max - float64(index*itemHeight)
}

// ScrollForValue is ScrollFor for a continuous index.
func (r Range) ScrollForValue(value float64, itemHeight int) float64 {
	return r.Max - value*float64(itemHeight)
}
