// Package physics resolves the movement of a single axis-aligned box through
// a static set of tiles and answers floor, ceiling and wall contact queries.
//
// All functions are synchronous and keep no state of their own. The mover and
// the tiles belong to the caller; concurrent calls that share a mover, or
// that mutate tiles while a query reads them, must be synchronized by the
// caller.
package physics

import "github.com/vovakirdan/tilephys/internal/core"

// Contact reports which sides of a box touch a tile.
type Contact struct {
	Floor   bool
	Ceiling bool
	Wall    bool
}

// Overlaps reports whether a and b share interior area. Touching edges do not
// overlap.
func Overlaps(a, b core.Rect) bool {
	return a.Overlaps(b)
}

// MoveAndCollide moves r by (velX, velY) without letting it pass into any
// tile. X is resolved completely before Y.
//
// On each axis every tile is checked in order, and each overlap snaps the
// box flush against that tile on the side it came from. A later overlapping
// tile overwrites an earlier correction, so when several tiles are hit the
// last one in slice order decides the final position. A zero velocity on an
// axis leaves that axis untouched even if the box already overlaps a tile.
//
// A nil r is a no-op.
func MoveAndCollide(r *core.Rect, tiles []core.Rect, velX, velY int) {
	if r == nil {
		return
	}
	*r = Moved(*r, tiles, velX, velY)
}

// Moved is the value form of MoveAndCollide.
func Moved(r core.Rect, tiles []core.Rect, velX, velY int) core.Rect {
	r.X += velX
	for _, t := range tiles {
		if !r.Overlaps(t) {
			continue
		}
		if velX > 0 {
			r.X = t.X - r.W
		} else if velX < 0 {
			r.X = t.X + t.W
		}
	}

	r.Y += velY
	for _, t := range tiles {
		if !r.Overlaps(t) {
			continue
		}
		if velY > 0 {
			r.Y = t.Y - r.H
		} else if velY < 0 {
			r.Y = t.Y + t.H
		}
	}

	return r
}

// FloorProbe is the one-unit strip directly below r.
func FloorProbe(r core.Rect) core.Rect {
	return core.NewRect(r.X, r.Y+r.H, r.W, 1)
}

// CeilingProbe is the one-unit strip directly above r.
func CeilingProbe(r core.Rect) core.Rect {
	return core.NewRect(r.X, r.Y-1, r.W, 1)
}

// WallProbe is r widened by one unit on both sides.
func WallProbe(r core.Rect) core.Rect {
	return core.NewRect(r.X-1, r.Y, r.W+2, r.H)
}

// IsOnFloor reports whether r stands on top of any tile.
func IsOnFloor(r core.Rect, tiles []core.Rect) bool {
	return anyOverlap(FloorProbe(r), tiles)
}

// IsOnCeiling reports whether r is pressed against the underside of any tile.
func IsOnCeiling(r core.Rect, tiles []core.Rect) bool {
	return anyOverlap(CeilingProbe(r), tiles)
}

// IsOnWall reports whether r touches a tile on its left or right side.
func IsOnWall(r core.Rect, tiles []core.Rect) bool {
	return anyOverlap(WallProbe(r), tiles)
}

// Contacts runs all three adjacency queries.
func Contacts(r core.Rect, tiles []core.Rect) Contact {
	return Contact{
		Floor:   IsOnFloor(r, tiles),
		Ceiling: IsOnCeiling(r, tiles),
		Wall:    IsOnWall(r, tiles),
	}
}

func anyOverlap(probe core.Rect, tiles []core.Rect) bool {
	for _, t := range tiles {
		if probe.Overlaps(t) {
			return true
		}
	}
	return false
}
