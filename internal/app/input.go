package app

import (
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/wheelpicker/internal/config"
)

// keyMap maps config key names to ebiten keys.
var keyMap = map[string]ebiten.Key{
	"space":     ebiten.KeySpace,
	"enter":     ebiten.KeyEnter,
	"return":    ebiten.KeyEnter,
	"tab":       ebiten.KeyTab,
	"escape":    ebiten.KeyEscape,
	"esc":       ebiten.KeyEscape,
	"backspace": ebiten.KeyBackspace,
	"home":      ebiten.KeyHome,
	"pageup":    ebiten.KeyPageUp,
	"pagedown":  ebiten.KeyPageDown,
	"left":      ebiten.KeyArrowLeft,
	"right":     ebiten.KeyArrowRight,
	"up":        ebiten.KeyArrowUp,
	"down":      ebiten.KeyArrowDown,
	"f1":        ebiten.KeyF1,
	"f2":        ebiten.KeyF2,
	"f3":        ebiten.KeyF3,
	"f4":        ebiten.KeyF4,
	"f5":        ebiten.KeyF5,
	"f6":        ebiten.KeyF6,
	"f7":        ebiten.KeyF7,
	"f8":        ebiten.KeyF8,
	"f9":        ebiten.KeyF9,
	"f10":       ebiten.KeyF10,
	"f11":       ebiten.KeyF11,
	"f12":       ebiten.KeyF12,
	"a":         ebiten.KeyA,
	"b":         ebiten.KeyB,
	"c":         ebiten.KeyC,
	"d":         ebiten.KeyD,
	"e":         ebiten.KeyE,
	"f":         ebiten.KeyF,
	"g":         ebiten.KeyG,
	"h":         ebiten.KeyH,
	"i":         ebiten.KeyI,
	"j":         ebiten.KeyJ,
	"k":         ebiten.KeyK,
	"l":         ebiten.KeyL,
	"m":         ebiten.KeyM,
	"n":         ebiten.KeyN,
	"o":         ebiten.KeyO,
	"p":         ebiten.KeyP,
	"q":         ebiten.KeyQ,
	"r":         ebiten.KeyR,
	"s":         ebiten.KeyS,
	"t":         ebiten.KeyT,
	"u":         ebiten.KeyU,
	"v":         ebiten.KeyV,
	"w":         ebiten.KeyW,
	"x":         ebiten.KeyX,
	"y":         ebiten.KeyY,
	"z":         ebiten.KeyZ,
	"0":         ebiten.KeyDigit0,
	"1":         ebiten.KeyDigit1,
	"2":         ebiten.KeyDigit2,
	"3":         ebiten.KeyDigit3,
	"4":         ebiten.KeyDigit4,
	"5":         ebiten.KeyDigit5,
	"6":         ebiten.KeyDigit6,
	"7":         ebiten.KeyDigit7,
	"8":         ebiten.KeyDigit8,
	"9":         ebiten.KeyDigit9,
}

// parseKey converts a config key name to an ebiten.Key.
func parseKey(name string) (ebiten.Key, bool) {
	k, ok := keyMap[strings.ToLower(strings.TrimSpace(name))]
	return k, ok
}

type keybinds struct {
	next, prev, reset, help ebiten.Key
	quit, debug, fullscreen ebiten.Key
}

// resolveKeybinds parses every configured key, falling back to the default
// binding for names it does not know.
func resolveKeybinds(cfg config.KeybindConfig) keybinds {
	def := config.DefaultConfig().Keybinds
	resolve := func(action, name, fallback string) ebiten.Key {
		if k, ok := parseKey(name); ok {
			return k
		}
		log.Printf("Unknown key %q for %s, using %s", name, action, fallback)
		k, _ := parseKey(fallback)
		return k
	}
	return keybinds{
		next:       resolve("next", cfg.Next, def.Next),
		prev:       resolve("prev", cfg.Prev, def.Prev),
		reset:      resolve("reset", cfg.Reset, def.Reset),
		help:       resolve("help", cfg.Help, def.Help),
		quit:       resolve("quit", cfg.Quit, def.Quit),
		debug:      resolve("debug", cfg.Debug, def.Debug),
		fullscreen: resolve("fullscreen", cfg.Fullscreen, def.Fullscreen),
	}
}
