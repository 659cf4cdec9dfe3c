package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var debugOverlayVisible bool

// ToggleDebugOverlay flips the overlay's visibility.
func ToggleDebugOverlay() {
	debugOverlayVisible = !debugOverlayVisible
}

func DebugOverlayVisible() bool {
	return debugOverlayVisible
}

// DrawDebugOverlay draws lines in a panel at the top right if the overlay is
// visible.
func DrawDebugOverlay(screen *ebiten.Image, lines []string) {
	if !debugOverlayVisible {
		return
	}

	const (
		padX    = 16.0
		padY    = 12.0
		lineH   = 18.0
		marginR = 20.0
		marginT = 20.0
	)

	rows := 2 + max(len(lines), 1) // header + separator
	panelH := float64(rows)*lineH + padY*2
	panelW := 520.0
	px := float64(ScreenWidth) - panelW - marginR
	py := marginT

	vector.DrawFilledRect(screen, float32(px), float32(py), float32(panelW), float32(panelH), ColorOverlay, false)

	x := px + padX
	y := py + padY

	DrawText(screen, "Debug: wheel state", x, y, FontSizeSmall, ColorPrimary)
	y += lineH
	DrawText(screen, "--- scroll / index / offset / owner ---", x, y, FontSizeSmall, ColorTextMuted)
	y += lineH

	if len(lines) == 0 {
		DrawText(screen, "(none)", x, y, FontSizeSmall, ColorTextSecondary)
		return
	}
	for _, line := range lines {
		DrawText(screen, line, x, y, FontSizeSmall, ColorText)
		y += lineH
	}
}
