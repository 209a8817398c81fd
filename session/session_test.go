package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestAssets(t *testing.T) (palette, sheet string) {
	t.Helper()
	dir := t.TempDir()

	palette = filepath.Join(dir, "space.pal")
	require.NoError(t, os.WriteFile(palette, []byte("#000000\n#ffffff\n#888888\n"), 0o644))

	sheet = filepath.Join(dir, "sheet.toml")
	manifest := `
palette = "space"
image = "sheet.png"

[sprites.ship]
x = 0
y = 0
w = 16
h = 16

[sprites.star]
x = 16
y = 0
w = 2
h = 2
`
	require.NoError(t, os.WriteFile(sheet, []byte(manifest), 0o644))
	return palette, sheet
}

func TestEnsureReusesSessionForSameKey(t *testing.T) {
	pal, sheet := writeTestAssets(t)
	m := NewManager(zerolog.Nop())
	opts := Options{TickHz: 40, PalettePath: pal, SheetPath: sheet}

	s1, err := m.Ensure(opts)
	require.NoError(t, err)
	s2, err := m.Ensure(opts)
	require.NoError(t, err)

	assert.Same(t, s1, s2, "same options must not re-run setup")
	assert.Equal(t, s1.ID, s2.ID)
}

func TestEnsureRebootsWhenOptionsChange(t *testing.T) {
	pal, sheet := writeTestAssets(t)
	m := NewManager(zerolog.Nop())

	s1, err := m.Ensure(Options{TickHz: 40, PalettePath: pal, SheetPath: sheet})
	require.NoError(t, err)

	s2, err := m.Ensure(Options{TickHz: 20, PalettePath: pal, SheetPath: sheet})
	require.NoError(t, err)

	assert.NotSame(t, s1, s2)
	assert.NotEqual(t, s1.ID, s2.ID)
	assert.Same(t, s2, m.Current())
}

func TestEnsureRebootsWhenSeedChanges(t *testing.T) {
	pal, sheet := writeTestAssets(t)
	m := NewManager(zerolog.Nop())

	s1, err := m.Ensure(Options{TickHz: 40, PalettePath: pal, SheetPath: sheet, Seed: 1})
	require.NoError(t, err)
	s2, err := m.Ensure(Options{TickHz: 40, PalettePath: pal, SheetPath: sheet, Seed: 2})
	require.NoError(t, err)

	assert.NotSame(t, s1, s2)
}

func TestEnsureFailsOnMissingAssets(t *testing.T) {
	m := NewManager(zerolog.Nop())
	_, err := m.Ensure(Options{TickHz: 40, PalettePath: "nope.pal", SheetPath: "nope.toml"})
	require.Error(t, err)
	assert.Nil(t, m.Current())
}

func TestEnsureRejectsBadTickRate(t *testing.T) {
	pal, sheet := writeTestAssets(t)
	m := NewManager(zerolog.Nop())
	_, err := m.Ensure(Options{TickHz: 0, PalettePath: pal, SheetPath: sheet})
	require.Error(t, err)
}

func TestCloseIsIdempotent(t *testing.T) {
	pal, sheet := writeTestAssets(t)
	m := NewManager(zerolog.Nop())

	_, err := m.Ensure(Options{TickHz: 40, PalettePath: pal, SheetPath: sheet})
	require.NoError(t, err)

	m.Close()
	m.Close()
	assert.Nil(t, m.Current())
}
