package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/depeter/wheelpicker/assets/icon"
	"github.com/depeter/wheelpicker/internal/app"
	"github.com/depeter/wheelpicker/internal/config"
	"github.com/depeter/wheelpicker/internal/constants"
	"github.com/depeter/wheelpicker/internal/ui"
)

func main() {
	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Init fonts
	if err := ui.InitFonts(goregular.TTF); err != nil {
		log.Fatalf("Failed to init fonts: %v", err)
	}

	// A broken selection file only costs the saved positions
	sel, err := config.LoadSelection()
	if err != nil {
		log.Printf("Failed to load selection, starting fresh: %v", err)
		sel = &config.Selection{}
	}

	game := app.NewGame(cfg)
	sf := &screenFactory{game: game, cfg: cfg, sel: sel}
	screen := sf.pushPickers()

	// Configure window
	ebiten.SetWindowSize(cfg.UI.Width, cfg.UI.Height)
	ebiten.SetWindowTitle("Wheel Picker")
	ebiten.SetWindowIcon(icon.Generate())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.UI.Fullscreen)
	ebiten.SetTPS(constants.TicksPerSecond)

	if err := ebiten.RunGame(game); err != nil {
		log.Printf("Game exited: %v", err)
	}

	saved := screen.Saved()
	game.Close()
	sel.Update(saved)
	if err := sel.Save(); err != nil {
		log.Printf("Failed to save selection: %v", err)
	}
}
