package main

import (
	"fmt"
	"log"

	"github.com/depeter/wheelpicker/internal/app"
	"github.com/depeter/wheelpicker/internal/config"
	"github.com/depeter/wheelpicker/internal/ui"
	"github.com/depeter/wheelpicker/wheel"
)

// screenFactory captures the shared dependencies for creating and wiring screens.
type screenFactory struct {
	game *app.Game
	cfg  *config.Config
	sel  *config.Selection
}

type wheelDef struct {
	name   string
	labels []string
	styled bool
}

func (sf *screenFactory) pushPickers() *ui.PickerScreen {
	curve, err := sf.cfg.Picker.BuildCurve()
	if err != nil {
		log.Printf("Failed to build picker curve, using spring: %v", err)
		curve = wheel.DefaultSpring()
	}

	defs := []wheelDef{
		{name: "items", labels: labels(10, "Item %d")},
		{name: "hours", labels: labels(24, "%02d")},
		{name: "minutes", labels: labels(60, "%02d")},
		{name: "styled", labels: labels(20, "Option %d"), styled: true},
	}

	pickers := make([]*ui.Picker, len(defs))
	for i, def := range defs {
		name := def.name
		pickers[i] = ui.NewPicker(name, def.labels, ui.PickerOptions{
			InitialIndex: sf.sel.Index(name),
			BufferSize:   sf.cfg.Picker.BufferSize,
			Curve:        curve,
			Friction:     sf.cfg.Picker.Friction,
			Frames:       sf.game.Clock,
			Styled:       def.styled,
			OnSelect: func(index int) {
				log.Printf("%s selected %s", name, def.labels[index])
			},
		})
	}

	screen := ui.NewPickerScreen("Wheel Picker", sf.game.PickerKeys(), pickers...)
	sf.game.Screens.Replace(screen)
	return screen
}

func labels(n int, format string) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf(format, i)
	}
	return out
}
