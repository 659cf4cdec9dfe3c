package icon

import (
	"image"
	"image/color"
	"testing"
)

func TestGenerate(t *testing.T) {
	imgs := Generate()
	if len(imgs) != 2 {
		t.Fatalf("Generate returned %d images, want 2", len(imgs))
	}
	for i, want := range []int{64, 32} {
		if got := imgs[i].Bounds(); got != image.Rect(0, 0, want, want) {
			t.Errorf("image %d bounds = %v, want %dx%d", i, got, want, want)
		}
	}

	center := imgs[0].(*image.RGBA).RGBAAt(32, 32)
	if center != primary {
		t.Errorf("center row = %v, want %v", center, primary)
	}
	corner := imgs[0].(*image.RGBA).RGBAAt(0, 0)
	if corner != (color.RGBA{R: darkBG.R, G: darkBG.G, B: darkBG.B, A: 0xFF}) {
		t.Errorf("corner = %v, want background", corner)
	}
}
