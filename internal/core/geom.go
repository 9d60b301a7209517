// Package core provides fundamental types and utilities for the game platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect is an integer axis-aligned rectangle used for collision detection.
// Edges are half-open: a rect covers [X, X+W) × [Y, Y+H).
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects returns true if the two rectangles share at least one point.
// Touching edges do not count, and empty rectangles never intersect.
func (r Rect) Intersects(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}

// Viewport projects arena coordinates (pixels) onto a grid of screen cells.
// The arena is stretched to fill Cols × Rows; Top rows are reserved above it.
type Viewport struct {
	ArenaW, ArenaH float64
	Cols, Rows     int
	Top            int
}

// NewViewport creates a viewport mapping an arenaW × arenaH arena onto
// cols × rows cells.
func NewViewport(arenaW, arenaH float64, cols, rows int) Viewport {
	return Viewport{ArenaW: arenaW, ArenaH: arenaH, Cols: cols, Rows: rows}
}

// X converts an arena x coordinate to a column.
func (v Viewport) X(x float64) int {
	if v.ArenaW <= 0 {
		return 0
	}
	return int(math.Floor(x * float64(v.Cols) / v.ArenaW))
}

// Y converts an arena y coordinate to a row.
func (v Viewport) Y(y float64) int {
	if v.ArenaH <= 0 {
		return v.Top
	}
	return v.Top + int(math.Floor(y*float64(v.Rows)/v.ArenaH))
}

// Project converts an arena rectangle to the cells it covers.
// Any non-empty rectangle covers at least one cell.
func (v Viewport) Project(x, y, w, h float64) Rect {
	x0, y0 := v.X(x), v.Y(y)
	x1, y1 := v.X(x+w), v.Y(y+h)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}
