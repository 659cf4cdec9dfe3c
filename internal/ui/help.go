package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HelpScreen lists the controls. It pops itself on its own key or Backspace.
type HelpScreen struct {
	Lines []string
	Close ebiten.Key
}

func NewHelpScreen(closeKey ebiten.Key, lines ...string) *HelpScreen {
	return &HelpScreen{Lines: lines, Close: closeKey}
}

func (h *HelpScreen) Name() string { return "Help" }
func (h *HelpScreen) OnEnter()     {}
func (h *HelpScreen) OnExit()      {}

func (h *HelpScreen) Update() (*ScreenTransition, error) {
	if inpututil.IsKeyJustPressed(h.Close) || inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		return &ScreenTransition{Type: TransitionPop}, nil
	}
	return nil, nil
}

func (h *HelpScreen) Draw(dst *ebiten.Image) {
	DrawTextCentered(dst, "Controls", ScreenWidth/2, 80, FontSizeTitle, ColorText)
	y := 160.0
	for _, line := range h.Lines {
		DrawTextCentered(dst, line, ScreenWidth/2, y, FontSizeBody, ColorTextSecondary)
		y += FontSizeBody * 1.8
	}
	DrawTextCentered(dst, h.Close.String()+" or Backspace to return", ScreenWidth/2, ScreenHeight-60, FontSizeSmall, ColorTextMuted)
}
