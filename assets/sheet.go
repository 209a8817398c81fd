package assets

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Sheet is a sprite sheet manifest: named cells over one backing image,
// tied to a default palette.
type Sheet struct {
	Palette string          `toml:"palette"`
	Image   string          `toml:"image"`
	Sprites map[string]Cell `toml:"sprites"`
}

// Cell is one sprite's rectangle in sheet coordinates.
type Cell struct {
	X int `toml:"x"`
	Y int `toml:"y"`
	W int `toml:"w"`
	H int `toml:"h"`
}

// LoadSheet decodes and validates a TOML sheet manifest.
func LoadSheet(path string) (*Sheet, error) {
	var s Sheet
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return nil, fmt.Errorf("decode sheet %s: %w", path, err)
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("sheet %s: %w", path, err)
	}
	return &s, nil
}

// ParseSheet decodes a manifest from a string, mainly for tests.
func ParseSheet(data string) (*Sheet, error) {
	var s Sheet
	if _, err := toml.Decode(data, &s); err != nil {
		return nil, fmt.Errorf("decode sheet: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Sheet) validate() error {
	if len(s.Sprites) == 0 {
		return fmt.Errorf("no sprites defined")
	}
	for name, c := range s.Sprites {
		if c.W <= 0 || c.H <= 0 {
			return fmt.Errorf("sprite %q has empty cell %dx%d", name, c.W, c.H)
		}
		if c.X < 0 || c.Y < 0 {
			return fmt.Errorf("sprite %q has negative origin", name)
		}
	}
	return nil
}

// Sprite looks up a named cell.
func (s *Sheet) Sprite(name string) (Cell, error) {
	c, ok := s.Sprites[name]
	if !ok {
		return Cell{}, fmt.Errorf("unknown sprite %q", name)
	}
	return c, nil
}
