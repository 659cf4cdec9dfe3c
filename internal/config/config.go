package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/depeter/wheelpicker/internal/constants"
	"github.com/depeter/wheelpicker/wheel"
)

type Config struct {
	UI       UIConfig      `toml:"ui"`
	Picker   PickerConfig  `toml:"picker"`
	Keybinds KeybindConfig `toml:"keybinds"`
}

type UIConfig struct {
	Fullscreen bool `toml:"fullscreen"`
	Width      int  `toml:"width"`
	Height     int  `toml:"height"`
}

// PickerConfig tunes the scroll physics shared by every wheel.
type PickerConfig struct {
	BufferSize int     `toml:"buffer_size"`
	Friction   float64 `toml:"friction"`

	// Curve is "spring", "tween" or "snap".
	Curve           string  `toml:"curve"`
	SpringFrequency float64 `toml:"spring_frequency"`
	SpringDamping   float64 `toml:"spring_damping"`
	TweenMillis     int     `toml:"tween_ms"`
	TweenEasing     string  `toml:"tween_easing"`
}

type KeybindConfig struct {
	Next       string `toml:"next"`
	Prev       string `toml:"prev"`
	Reset      string `toml:"reset"`
	Help       string `toml:"help"`
	Quit       string `toml:"quit"`
	Debug      string `toml:"debug"`
	Fullscreen string `toml:"fullscreen"`
}

func DefaultConfig() *Config {
	spring := wheel.DefaultSpring()
	return &Config{
		UI: UIConfig{
			Fullscreen: false,
			Width:      1280,
			Height:     720,
		},
		Picker: PickerConfig{
			BufferSize:      3,
			Friction:        wheel.DefaultFriction,
			Curve:           "spring",
			SpringFrequency: spring.Frequency,
			SpringDamping:   spring.Damping,
			TweenMillis:     250,
			TweenEasing:     "cubic",
		},
		Keybinds: KeybindConfig{
			Next:       "Down",
			Prev:       "Up",
			Reset:      "R",
			Help:       "H",
			Quit:       "Escape",
			Debug:      "F12",
			Fullscreen: "F",
		},
	}
}

// BuildCurve builds the animation curve described by the picker section.
func (p PickerConfig) BuildCurve() (wheel.Curve, error) {
	c, ok := wheel.CurveByName(p.Curve)
	if !ok {
		return nil, fmt.Errorf("unknown curve %q", p.Curve)
	}
	switch c := c.(type) {
	case wheel.Spring:
		c.FPS = constants.TicksPerSecond
		if p.SpringFrequency > 0 {
			c.Frequency = p.SpringFrequency
		}
		if p.SpringDamping > 0 {
			c.Damping = p.SpringDamping
		}
		return c, nil
	case wheel.Tween:
		c.FPS = constants.TicksPerSecond
		if p.TweenMillis > 0 {
			c.Duration = time.Duration(p.TweenMillis) * time.Millisecond
		}
		if p.TweenEasing != "" {
			easing := wheel.EasingByName(p.TweenEasing)
			if easing == nil {
				return nil, fmt.Errorf("unknown easing %q", p.TweenEasing)
			}
			c.Easing = easing
		}
		return c, nil
	default:
		return c, nil
	}
}

func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, constants.AppName), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config file over the defaults. A missing file is not an
// error.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	path, err := ConfigPath()
	if err != nil {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return writeTOML(path, c)
}

func writeTOML(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(v); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
