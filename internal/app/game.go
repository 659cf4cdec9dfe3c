package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/wheelpicker/internal/config"
	"github.com/depeter/wheelpicker/internal/ui"
	"github.com/depeter/wheelpicker/wheel"
)

// Game implements ebiten.Game and manages the overall application.
type Game struct {
	Config  *config.Config
	Screens *ui.ScreenManager

	// Clock releases one animation frame per tick to every animating wheel.
	Clock *wheel.Clock

	Width, Height int

	keys keybinds
}

// NewGame creates the Game with all dependencies.
func NewGame(cfg *config.Config) *Game {
	return &Game{
		Config:  cfg,
		Screens: ui.NewScreenManager(),
		Clock:   wheel.NewClock(),
		Width:   ui.ScreenWidth,
		Height:  ui.ScreenHeight,
		keys:    resolveKeybinds(cfg.Keybinds),
	}
}

// PickerKeys returns the wheel keys resolved from the config.
func (g *Game) PickerKeys() ui.PickerKeys {
	return ui.PickerKeys{Next: g.keys.next, Prev: g.keys.prev, Reset: g.keys.reset, Help: g.keys.help}
}

func (g *Game) Update() error {
	g.Clock.Tick()

	// Alt+Enter or the fullscreen key toggles fullscreen
	if (inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ebiten.IsKeyPressed(ebiten.KeyAlt)) ||
		inpututil.IsKeyJustPressed(g.keys.fullscreen) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if inpututil.IsKeyJustPressed(g.keys.debug) {
		ui.ToggleDebugOverlay()
	}
	if inpututil.IsKeyJustPressed(g.keys.quit) {
		return ebiten.Termination
	}

	if err := g.Screens.Update(); err != nil {
		return err
	}

	ui.UpdateInputState()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ui.ColorBackground)
	g.Screens.Draw(screen)
	if ui.DebugOverlayVisible() {
		ui.DrawDebugOverlay(screen, g.Screens.DebugLines())
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Width, g.Height
}

// Close exits every screen, stopping their animations.
func (g *Game) Close() {
	g.Screens.ClearStack()
}
