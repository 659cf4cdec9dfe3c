package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Selection is the persisted index of every wheel, keyed by wheel name.
type Selection struct {
	Indexes map[string]int `toml:"indexes"`
}

func SelectionPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "selection.toml"), nil
}

// LoadSelection reads the saved selection. A missing file yields an empty
// selection.
func LoadSelection() (*Selection, error) {
	sel := &Selection{Indexes: make(map[string]int)}

	path, err := SelectionPath()
	if err != nil {
		return sel, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return sel, nil
		}
		return nil, fmt.Errorf("read selection: %w", err)
	}
	if err := toml.Unmarshal(data, sel); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if sel.Indexes == nil {
		sel.Indexes = make(map[string]int)
	}
	return sel, nil
}

// Index returns the saved index for name, or 0.
func (s *Selection) Index(name string) int {
	return s.Indexes[name]
}

// Update records every index in saved.
func (s *Selection) Update(saved map[string]int) {
	if s.Indexes == nil {
		s.Indexes = make(map[string]int, len(saved))
	}
	for name, index := range saved {
		s.Indexes[name] = index
	}
}

func (s *Selection) Save() error {
	path, err := SelectionPath()
	if err != nil {
		return err
	}
	return writeTOML(path, s)
}
