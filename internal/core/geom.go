// Package core holds the types shared by games and the terminal platform:
// geometry, the cell screen, input frames, clocks and runtime config.
// It does not import any UI library.
package core

import "cmp"

// Rect is a rectangle of screen cells. Rows grow downward.
type Rect struct {
	X, Y int // top-left cell
	W, H int
}

func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.H }

// Box is an axis-aligned box in world units. The world is y-up, so
// (X, Y) is the lower-left corner.
type Box struct {
	X, Y float64
	W, H float64
}

func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

func (b Box) Right() float64 { return b.X + b.W }
func (b Box) Top() float64   { return b.Y + b.H }

// Overlaps reports whether b and o share interior area. Touching edges
// do not count.
func (b Box) Overlaps(o Box) bool {
	return b.X < o.Right() && o.X < b.Right() &&
		b.Y < o.Top() && o.Y < b.Top()
}

// Translate returns b shifted by (dx, dy).
func (b Box) Translate(dx, dy float64) Box {
	b.X += dx
	b.Y += dy
	return b
}

// Clamp limits v to [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return max(lo, min(v, hi))
}
