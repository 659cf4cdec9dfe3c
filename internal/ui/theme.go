package ui

import "image/color"

// Dark theme colors
var (
	ColorBackground    = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF}
	ColorSurface       = color.RGBA{R: 0x1C, G: 0x1C, B: 0x24, A: 0xFF}
	ColorSurfaceHover  = color.RGBA{R: 0x28, G: 0x28, B: 0x34, A: 0xFF}
	ColorPrimary       = color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0xFF}
	ColorAccent        = color.RGBA{R: 0xAA, G: 0x5C, B: 0xC3, A: 0xFF} // styled wheel
	ColorText          = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
	ColorTextSecondary = color.RGBA{R: 0x90, G: 0x90, B: 0x9C, A: 0xFF}
	ColorTextMuted     = color.RGBA{R: 0x60, G: 0x60, B: 0x6C, A: 0xFF}
	ColorFocusBorder   = color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0xFF}
	ColorOverlay       = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xC0}
	ColorPressed       = color.RGBA{R: 0x00, G: 0x78, B: 0xA8, A: 0x60}
)

// Layout constants
const (
	ScreenWidth  = 1280
	ScreenHeight = 720

	PickerItemHeight = 48
	PickerMinWidth   = 140
	PickerItemPadX   = 24
	PickerGap        = 40
	PickerBuffer     = 3

	FontSizeTitle   = 28
	FontSizeHeading = 22
	FontSizeBody    = 20
	FontSizeSmall   = 13

	// TapSlop is how far a pointer may travel, in pixels, before a press
	// becomes a drag instead of a tap.
	TapSlop = 8
)
