package entity

import "math"

// Edge is a bit set of screen edges a body was pushed back from
type Edge uint8

const (
	EdgeLeft Edge = 1 << iota
	EdgeRight
	EdgeTop
	EdgeBottom

	EdgeNone Edge = 0
)

// Has reports whether any edge of mask is set
func (e Edge) Has(mask Edge) bool {
	return e&mask != 0
}

// Body is the axis-aligned rectangle shared by every sprite.
// X, Y is the center; Width and Height come from the visual variant.
type Body struct {
	X, Y          float64
	Width, Height float64
}

// Left returns the x coordinate of the left edge
func (b *Body) Left() float64 { return b.X - b.Width/2 }

// Right returns the x coordinate of the right edge
func (b *Body) Right() float64 { return b.X + b.Width/2 }

// Top returns the y coordinate of the top edge
func (b *Body) Top() float64 { return b.Y + b.Height/2 }

// Bottom returns the y coordinate of the bottom edge
func (b *Body) Bottom() float64 { return b.Y - b.Height/2 }

// SetLeft moves the body so its left edge is at x
func (b *Body) SetLeft(x float64) { b.X = x + b.Width/2 }

// SetRight moves the body so its right edge is at x
func (b *Body) SetRight(x float64) { b.X = x - b.Width/2 }

// SetTop moves the body so its top edge is at y
func (b *Body) SetTop(y float64) { b.Y = y - b.Height/2 }

// SetBottom moves the body so its bottom edge is at y
func (b *Body) SetBottom(y float64) { b.Y = y + b.Height/2 }

// Intersects reports whether the two rectangles overlap.
// Rectangles that only share an edge do not intersect.
func (b *Body) Intersects(o *Body) bool {
	return b.Left() < o.Right() &&
		b.Right() > o.Left() &&
		b.Bottom() < o.Top() &&
		b.Top() > o.Bottom()
}

// OnScreen reports whether any part of the body is on the canvas
func (b *Body) OnScreen() bool {
	return !(b.Right() < 0 ||
		b.Left() > ScreenWidth ||
		b.Top() < 0 ||
		b.Bottom() > ScreenHeight)
}

// KeepOnScreen moves the body fully onto the canvas and returns the edges
// it had crossed.
func (b *Body) KeepOnScreen() Edge {
	edges := EdgeNone
	if b.Left() < 0 {
		b.SetLeft(0)
		edges |= EdgeLeft
	}
	if b.Right() > ScreenWidth {
		b.SetRight(ScreenWidth)
		edges |= EdgeRight
	}
	if b.Bottom() < 0 {
		b.SetBottom(0)
		edges |= EdgeBottom
	}
	if b.Top() > ScreenHeight {
		b.SetTop(ScreenHeight)
		edges |= EdgeTop
	}
	return edges
}

// Bounce clamps the body on screen and mirrors the velocity component of
// every axis that was clamped. Returns true if the velocity changed.
func (b *Body) Bounce(vx, vy *float64) bool {
	edges := b.KeepOnScreen()
	bounced := false
	if edges.Has(EdgeLeft | EdgeRight) {
		*vx = -*vx
		bounced = true
	}
	if edges.Has(EdgeTop | EdgeBottom) {
		*vy = -*vy
		bounced = true
	}
	return bounced
}

// DirectionTo returns the unit vector from the body center to (x, y).
// The result is NaN when (x, y) is the center; callers must not ask for it.
func (b *Body) DirectionTo(x, y float64) (dx, dy float64) {
	dx = x - b.X
	dy = y - b.Y
	mag := math.Hypot(dx, dy)
	return dx / mag, dy / mag
}

// Aim returns a velocity of the given speed pointing at (x, y).
// Falls back to straight down when the target is the body center.
func (b *Body) Aim(x, y, speed float64) (vx, vy float64) {
	if x == b.X && y == b.Y {
		return 0, -speed
	}
	dx, dy := b.DirectionTo(x, y)
	return dx * speed, dy * speed
}
