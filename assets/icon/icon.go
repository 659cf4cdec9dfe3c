package icon

import (
	"image"
	"image/color"
	"math"
)

var (
	primary  = color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0xFF}
	accent   = color.RGBA{R: 0xAA, G: 0x5C, B: 0xC3, A: 0xFF}
	darkBG   = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF}
	surface  = color.RGBA{R: 0x1C, G: 0x1C, B: 0x24, A: 0xFF}
	bandFill = color.RGBA{R: 0x28, G: 0x28, B: 0x34, A: 0xFF}
)

// Generate returns 64x64 and 32x32 icon images for use with ebiten.SetWindowIcon.
func Generate() []image.Image {
	return []image.Image{
		generate(64),
		generate(32),
	}
}

func generate(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)

	fillRect(img, 0, 0, size, size, darkBG)
	fillRoundedRect(img, s*0.18, s*0.06, s*0.64, s*0.88, s*0.10, surface)
	drawWheel(img, s)
	return img
}

// drawWheel draws five rows fading and thinning away from a highlighted
// center row, like a picker seen head on.
func drawWheel(img *image.RGBA, s float64) {
	bandY := s * 0.40
	bandH := s * 0.20
	fillRoundedRect(img, s*0.18, bandY, s*0.64, bandH, s*0.04, bandFill)
	fillRect(img, int(s*0.18), int(bandY), int(s*0.64), max(1, int(s/32)), primary)
	fillRect(img, int(s*0.18), int(bandY+bandH), int(s*0.64), max(1, int(s/32)), primary)

	for row := -2; row <= 2; row++ {
		dist := math.Abs(float64(row)) / 2
		cy := s*0.50 + float64(row)*s*0.18
		h := s * 0.06 * (1 - 0.4*dist)
		w := s * 0.40 * (1 - 0.25*dist)
		c := accent
		if row == 0 {
			c = primary
		}
		c.A = uint8(255 * (1 - 0.6*dist))
		fillRoundedRect(img, s*0.5-w/2, cy-h/2, w, h, h/2, c)
	}
}

func fillRect(img *image.RGBA, x0, y0, w, h int, c color.Color) {
	bounds := img.Bounds()
	for y := y0; y < y0+h && y < bounds.Max.Y; y++ {
		for x := x0; x < x0+w && x < bounds.Max.X; x++ {
			if x >= 0 && y >= 0 {
				blendPixel(img, x, y, c)
			}
		}
	}
}

func fillRoundedRect(img *image.RGBA, xf, yf, wf, hf, rf float64, c color.Color) {
	x0 := int(xf)
	y0 := int(yf)
	x1 := int(xf + wf)
	y1 := int(yf + hf)
	r := rf
	bounds := img.Bounds()

	for y := y0; y <= y1 && y < bounds.Max.Y; y++ {
		for x := x0; x <= x1 && x < bounds.Max.X; x++ {
			if x < 0 || y < 0 {
				continue
			}
			// Check if inside rounded rect
			fx := float64(x)
			fy := float64(y)
			inside := true

			// Check corners
			if fx < xf+r && fy < yf+r {
				// Top-left corner
				dx := xf + r - fx
				dy := yf + r - fy
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			} else if fx > xf+wf-r && fy < yf+r {
				// Top-right corner
				dx := fx - (xf + wf - r)
				dy := yf + r - fy
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			} else if fx < xf+r && fy > yf+hf-r {
				// Bottom-left corner
				dx := xf + r - fx
				dy := fy - (yf + hf - r)
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			} else if fx > xf+wf-r && fy > yf+hf-r {
				// Bottom-right corner
				dx := fx - (xf + wf - r)
				dy := fy - (yf + hf - r)
				if dx*dx+dy*dy > r*r {
					inside = false
				}
			}

			if inside {
				blendPixel(img, x, y, c)
			}
		}
	}
}

// blendPixel alpha-blends color c onto the existing pixel at (x, y).
func blendPixel(img *image.RGBA, x, y int, c color.Color) {
	r0, g0, b0, a0 := c.RGBA()
	if a0 == 0 {
		return
	}
	if a0 == 0xFFFF {
		img.Set(x, y, c)
		return
	}

	// Existing pixel
	existing := img.RGBAAt(x, y)
	er := uint32(existing.R) * 257
	eg := uint32(existing.G) * 257
	eb := uint32(existing.B) * 257

	// Alpha blend
	alpha := a0
	invAlpha := 0xFFFF - alpha
	nr := (r0*alpha + er*invAlpha) / 0xFFFF
	ng := (g0*alpha + eg*invAlpha) / 0xFFFF
	nb := (b0*alpha + eb*invAlpha) / 0xFFFF

	img.SetRGBA(x, y, color.RGBA{
		R: uint8(nr >> 8),
		G: uint8(ng >> 8),
		B: uint8(nb >> 8),
		A: 0xFF,
	})
}
