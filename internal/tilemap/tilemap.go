// Package tilemap turns ASCII level rows into obstacle rectangles.
package tilemap

import (
	"fmt"

	"github.com/vovakirdan/tilephys/internal/core"
)

// Level glyphs.
const (
	GlyphSolid = '#'
	GlyphSpawn = '@'
	GlyphExit  = 'E'
	GlyphEmpty = '.'
)

// Map is a parsed level in world units.
type Map struct {
	Tiles   []core.Rect // Solid tiles, row-major order
	Spawn   core.Rect   // Cell containing the spawn glyph
	Exit    core.Rect   // Cell containing the exit glyph
	HasExit bool
	Width   int // Level width in world units
	Height  int // Level height in world units
	TileW   int
	TileH   int
}

// Parse builds a Map from rows of glyphs. Tiles are emitted left to right,
// top to bottom; that order is the order the resolver visits them in.
func Parse(rows []string, tileW, tileH int) (Map, error) {
	if tileW <= 0 || tileH <= 0 {
		return Map{}, fmt.Errorf("tilemap: tile size must be positive, got %dx%d", tileW, tileH)
	}
	if len(rows) == 0 {
		return Map{}, fmt.Errorf("tilemap: no rows")
	}

	m := Map{TileW: tileW, TileH: tileH}
	spawns := 0
	cols := 0

	for y, row := range rows {
		x := 0
		for _, g := range row {
			cell := core.NewRect(x*tileW, y*tileH, tileW, tileH)
			switch g {
			case GlyphSolid:
				m.Tiles = append(m.Tiles, cell)
			case GlyphSpawn:
				m.Spawn = cell
				spawns++
			case GlyphExit:
				if m.HasExit {
					return Map{}, fmt.Errorf("tilemap: second exit at row %d col %d", y, x)
				}
				m.Exit = cell
				m.HasExit = true
			case GlyphEmpty, ' ':
			default:
				return Map{}, fmt.Errorf("tilemap: unknown glyph %q at row %d col %d", g, y, x)
			}
			x++
		}
		if x > cols {
			cols = x
		}
	}

	switch spawns {
	case 0:
		return Map{}, fmt.Errorf("tilemap: level has no spawn %q", GlyphSpawn)
	case 1:
	default:
		return Map{}, fmt.Errorf("tilemap: level has %d spawns, expected 1", spawns)
	}

	m.Width = cols * tileW
	m.Height = len(rows) * tileH
	return m, nil
}

// SpawnRect places a w x h box standing on the bottom of the spawn cell,
// horizontally centered.
func (m Map) SpawnRect(w, h int) core.Rect {
	return core.NewRect(
		m.Spawn.X+(m.Spawn.W-w)/2,
		m.Spawn.Bottom()-h,
		w, h,
	)
}
