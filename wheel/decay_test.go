package wheel

import (
	"math"
	"testing"
)

func TestProjectStop(t *testing.T) {
	got := ProjectStop(0, -100, 8)
	want := -100 / 33.6
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("ProjectStop(0, -100, 8) = %v, want %v", got, want)
	}
	if got := ProjectStop(12, 500, 0); got != 12 {
		t.Errorf("ProjectStop with no friction = %v, want 12", got)
	}
}

func TestSnapTarget(t *testing.T) {
	r := RangeFor(10, 48, 7) // Max 144, Min -288

	tests := []struct {
		name      string
		projected float64
		want      float64
	}{
		{name: "small fling stays", projected: ProjectStop(0, -100, 8), want: 0},
		{name: "under half rounds back", projected: -23.9, want: 0},
		{name: "half rounds on", projected: -24, want: -48},
		{name: "over half rounds on", projected: -30, want: -48},
		{name: "positive over half", projected: 30, want: 48},
		{name: "positive under half", projected: 70, want: 48},
		{name: "beyond min clamps", projected: -5000, want: -288},
		{name: "beyond max clamps", projected: 5000, want: 144},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SnapTarget(tt.projected, 48, r)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("SnapTarget(%v) = %v, want %v", tt.projected, got, tt.want)
			}
		})
	}
}

func TestSnapTargetRemainderRule(t *testing.T) {
	r := RangeFor(10, 48, 7)
	for _, v := range []float64{-100, -400, -1000, 100, 250} {
		projected := ProjectStop(0, v, 8)
		clamped := r.Clamp(projected)
		rem := math.Mod(clamped, 48)
		want := clamped - rem
		if math.Abs(rem) >= 24 {
			want += math.Copysign(48, rem)
		}
		want = r.Clamp(want)
		if got := SnapTarget(projected, 48, r); math.Abs(got-want) > 1e-9 {
			t.Errorf("velocity %v: SnapTarget = %v, want %v", v, got, want)
		}
	}
}
