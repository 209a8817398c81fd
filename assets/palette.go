package assets

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Color is one palette entry, 8 bits per channel.
type Color struct {
	R, G, B, A uint8
}

// Palette is an ordered color table. Draw orders reference entries by index.
type Palette struct {
	colors []Color
}

// LoadPalette reads a palette file: one #RRGGBB or #RRGGBBAA per line,
// blank lines and lines starting with ';' ignored.
func LoadPalette(path string) (*Palette, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open palette: %w", err)
	}
	defer f.Close()
	p, err := ParsePalette(f)
	if err != nil {
		return nil, fmt.Errorf("parse palette %s: %w", path, err)
	}
	return p, nil
}

func ParsePalette(r io.Reader) (*Palette, error) {
	var p Palette
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, ";") {
			continue
		}
		c, err := parseColor(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		p.colors = append(p.colors, c)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(p.colors) == 0 {
		return nil, fmt.Errorf("palette has no entries")
	}
	return &p, nil
}

func parseColor(s string) (Color, error) {
	if !strings.HasPrefix(s, "#") {
		return Color{}, fmt.Errorf("color %q must start with #", s)
	}
	hex := s[1:]
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("color %q must be #RRGGBB or #RRGGBBAA", s)
	}
	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return Color{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

func (p *Palette) Len() int { return len(p.colors) }

// Color returns the entry at i, clamped into range so a stale index
// renders as the nearest edge color instead of faulting.
func (p *Palette) Color(i int) Color {
	if i < 0 {
		i = 0
	}
	if i >= len(p.colors) {
		i = len(p.colors) - 1
	}
	return p.colors[i]
}
