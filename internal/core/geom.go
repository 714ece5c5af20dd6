// Package core provides the drawing primitives shared by the terminal
// front end. It imports nothing from the TUI layer (no Bubble Tea), so face
// layout stays testable without a terminal.
package core

// Rect is an axis-aligned screen region, such as the answer window at the
// wheel hub.
type Rect struct {
	X, Y int // top-left corner
	W, H int // extent in cells
}

// NewRect builds a Rect from a corner position and extent.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Center returns the midpoint of the region.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Min returns the smaller of a and b.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
