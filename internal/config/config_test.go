package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/depeter/wheelpicker/wheel"
)

func useTempConfigHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return filepath.Join(dir, "wheelpicker")
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	useTempConfigHome(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load = %v", err)
	}
	want := DefaultConfig()
	if cfg.UI != want.UI || cfg.Picker != want.Picker || cfg.Keybinds != want.Keybinds {
		t.Errorf("Load = %+v, want defaults %+v", cfg, want)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := useTempConfigHome(t)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	data := `
[picker]
buffer_size = 2
curve = "tween"
tween_ms = 400

[keybinds]
next = "J"
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load = %v", err)
	}
	if cfg.Picker.BufferSize != 2 || cfg.Picker.Curve != "tween" || cfg.Picker.TweenMillis != 400 {
		t.Errorf("Picker = %+v", cfg.Picker)
	}
	if cfg.Picker.Friction != wheel.DefaultFriction {
		t.Errorf("Friction = %v, want default %v", cfg.Picker.Friction, wheel.DefaultFriction)
	}
	if cfg.Keybinds.Next != "J" || cfg.Keybinds.Prev != "Up" {
		t.Errorf("Keybinds = %+v", cfg.Keybinds)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	dir := useTempConfigHome(t)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[picker\nfriction ="), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(); err == nil {
		t.Error("Load of a broken file succeeded")
	}
}

func TestSaveThenLoad(t *testing.T) {
	useTempConfigHome(t)

	cfg := DefaultConfig()
	cfg.UI.Fullscreen = true
	cfg.Picker.SpringDamping = 0.5
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save = %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load = %v", err)
	}
	if !got.UI.Fullscreen || got.Picker.SpringDamping != 0.5 {
		t.Errorf("Load = %+v", got)
	}
}

func TestPickerCurve(t *testing.T) {
	tests := []struct {
		name    string
		picker  PickerConfig
		check   func(t *testing.T, c wheel.Curve)
		wantErr bool
	}{
		{
			name:   "spring with overrides",
			picker: PickerConfig{Curve: "spring", SpringFrequency: 12, SpringDamping: 1},
			check: func(t *testing.T, c wheel.Curve) {
				s, ok := c.(wheel.Spring)
				if !ok || s.Frequency != 12 || s.Damping != 1 || s.FPS != 60 {
					t.Errorf("curve = %#v", c)
				}
			},
		},
		{
			name:   "empty name is the default spring",
			picker: PickerConfig{},
			check: func(t *testing.T, c wheel.Curve) {
				if s, ok := c.(wheel.Spring); !ok || s.Frequency != wheel.DefaultSpring().Frequency {
					t.Errorf("curve = %#v", c)
				}
			},
		},
		{
			name:   "tween",
			picker: PickerConfig{Curve: "tween", TweenMillis: 400, TweenEasing: "linear"},
			check: func(t *testing.T, c wheel.Curve) {
				tw, ok := c.(wheel.Tween)
				if !ok || tw.Duration != 400*time.Millisecond || tw.Easing == nil || tw.Easing(0.5) != 0.5 {
					t.Errorf("curve = %#v", c)
				}
			},
		},
		{
			name:   "snap",
			picker: PickerConfig{Curve: "snap"},
			check: func(t *testing.T, c wheel.Curve) {
				if _, ok := c.(wheel.Snap); !ok {
					t.Errorf("curve = %#v", c)
				}
			},
		},
		{name: "unknown curve", picker: PickerConfig{Curve: "wobble"}, wantErr: true},
		{name: "unknown easing", picker: PickerConfig{Curve: "tween", TweenEasing: "wobble"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := tt.picker.BuildCurve()
			if tt.wantErr {
				if err == nil {
					t.Errorf("BuildCurve() = %#v, want error", c)
				}
				return
			}
			if err != nil {
				t.Fatalf("BuildCurve() = %v", err)
			}
			tt.check(t, c)
		})
	}
}
