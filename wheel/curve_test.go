package wheel

import (
	"math"
	"slices"
	"testing"
	"time"
)

func TestSpringEndsAtTarget(t *testing.T) {
	tests := []struct {
		name               string
		from, to, velocity float64
	}{
		{name: "downward", from: 0, to: 200, velocity: 0},
		{name: "upward with fling", from: 120, to: -240, velocity: -900},
		{name: "already there", from: 48, to: 48, velocity: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := slices.Collect(DefaultSpring().Values(tt.from, tt.to, tt.velocity))
			if len(values) == 0 {
				t.Fatal("spring produced no values")
			}
			if len(values) > springMaxFrames+1 {
				t.Errorf("spring produced %d values, want at most %d", len(values), springMaxFrames+1)
			}
			if last := values[len(values)-1]; last != tt.to {
				t.Errorf("last value = %v, want %v", last, tt.to)
			}
			for _, v := range values {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("spring produced %v", v)
				}
			}
		})
	}
}

func TestSpringWithoutFrequencyJumps(t *testing.T) {
	values := slices.Collect(Spring{}.Values(0, 10, 0))
	if !slices.Equal(values, []float64{10}) {
		t.Errorf("values = %v, want [10]", values)
	}
}

func TestTweenFrames(t *testing.T) {
	tw := Tween{FPS: 10, Duration: 500 * time.Millisecond, Easing: EaseLinear}
	values := slices.Collect(tw.Values(0, 100, 0))
	want := []float64{20, 40, 60, 80, 100}
	if len(values) != len(want) {
		t.Fatalf("values = %v, want %v", values, want)
	}
	for i := range want {
		if math.Abs(values[i]-want[i]) > 1e-9 {
			t.Errorf("values[%d] = %v, want %v", i, values[i], want[i])
		}
	}
}

func TestTweenStopsWhenConsumerStops(t *testing.T) {
	tw := Tween{FPS: 60, Duration: time.Second}
	n := 0
	for range tw.Values(0, 100, 0) {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("consumed %d values, want 3", n)
	}
}

func TestSnapCurve(t *testing.T) {
	values := slices.Collect(Snap{}.Values(5, -40, 300))
	if !slices.Equal(values, []float64{-40}) {
		t.Errorf("values = %v, want [-40]", values)
	}
}

func TestEasingByName(t *testing.T) {
	for _, name := range []string{"linear", "ease-out", "ease", "ease-in-out", "cubic", "back"} {
		fn := EasingByName(name)
		if fn == nil {
			t.Errorf("EasingByName(%q) = nil", name)
			continue
		}
		if got := fn(1); math.Abs(got-1) > 1e-9 {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
		if got := fn(0); math.Abs(got) > 1e-9 {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
	}
	if EasingByName("wobble") != nil {
		t.Error("expected nil for unknown easing")
	}
}

func TestCurveByName(t *testing.T) {
	tests := []struct {
		name string
		want Curve
		ok   bool
	}{
		{name: "", want: DefaultSpring(), ok: true},
		{name: "spring", want: DefaultSpring(), ok: true},
		{name: "snap", want: Snap{}, ok: true},
		{name: "none", want: Snap{}, ok: true},
		{name: "bouncy", ok: false},
	}
	for _, tt := range tests {
		got, ok := CurveByName(tt.name)
		if ok != tt.ok {
			t.Errorf("CurveByName(%q) ok = %v, want %v", tt.name, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("CurveByName(%q) = %#v, want %#v", tt.name, got, tt.want)
		}
	}
	if c, ok := CurveByName("tween"); !ok {
		t.Error("tween not found")
	} else if _, isTween := c.(Tween); !isTween {
		t.Errorf("CurveByName(tween) = %T, want Tween", c)
	}
}
