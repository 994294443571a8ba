// Package core provides the value types shared by the resolver, the levels and
// the terminal front end. It has no external dependencies so physics code
// stays pure and testable.
package core

import "fmt"

// Rect is an axis-aligned bounding box in integer world units.
// W and H are never negative; a zero-size rect is legal.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Overlaps reports whether the two rectangles share interior area.
// Edges that merely touch do not count, which is what lets a body rest
// on top of a tile without colliding with it.
func (r Rect) Overlaps(other Rect) bool {
	return r.X+r.W > other.X && r.X < other.X+other.W &&
		r.Y+r.H > other.Y && r.Y < other.Y+other.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Offset returns a copy moved by (dx, dy).
func (r Rect) Offset(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Scale divides position and size by unit, mapping world units to screen cells.
func (r Rect) Scale(unit int) Rect {
	if unit <= 1 {
		return r
	}
	return Rect{X: floorDiv(r.X, unit), Y: floorDiv(r.Y, unit), W: r.W / unit, H: r.H / unit}
}

func (r Rect) String() string {
	return fmt.Sprintf("{%d,%d,%d,%d}", r.X, r.Y, r.W, r.H)
}

// floorDiv rounds toward negative infinity so off-screen negatives stay off-screen.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0 or 1.
func Sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
