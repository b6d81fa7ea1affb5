// Package core provides fundamental types and utilities for the starcatch game.
// It contains no external dependencies (especially no Bubble Tea) to keep the
// simulation pure and testable.
package core

import "math"

// Vec2 is a 2D vector in arena units, used for positions and directions.
// The arena origin is the bottom-left corner and Y grows upward.
type Vec2 struct {
	X, Y float32
}

// V2 creates a vector from its components.
func V2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Length returns the Euclidean length of v.
func (v Vec2) Length() float32 {
	return float32(math.Hypot(float64(v.X), float64(v.Y)))
}

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns v scaled to unit length.
// The zero vector has no direction and is returned unchanged.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Distance returns the Euclidean distance between the two points.
// Distance(a, b) == Distance(b, a) for all a and b.
func Distance(a, b Vec2) float32 {
	dx := float64(a.X) - float64(b.X)
	dy := float64(a.Y) - float64(b.Y)
	return float32(math.Hypot(dx, dy))
}

// Bounds is an axis-aligned box of allowed centre positions.
type Bounds struct {
	Min, Max Vec2
}

// InsetBounds returns the box [half, w-half] x [half, h-half] in which an
// entity with the given half extent stays fully inside a w by h arena.
func InsetBounds(w, h, half float32) Bounds {
	return Bounds{
		Min: Vec2{X: half, Y: half},
		Max: Vec2{X: w - half, Y: h - half},
	}
}

// Contains reports whether p lies inside the box, edges included.
func (b Bounds) Contains(p Vec2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}

// Clamp moves p into the box on both axes.
func (b Bounds) Clamp(p Vec2) Vec2 {
	return Vec2{
		X: ClampF32(p.X, b.Min.X, b.Max.X),
		Y: ClampF32(p.Y, b.Min.Y, b.Max.Y),
	}
}

// Lerp maps t in [0,1) onto the box on both axes.
func (b Bounds) Lerp(tx, ty float32) Vec2 {
	return Vec2{
		X: b.Min.X + tx*(b.Max.X-b.Min.X),
		Y: b.Min.Y + ty*(b.Max.Y-b.Min.Y),
	}
}

// Rect represents an axis-aligned cell rectangle on a Screen.
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

// ClampF32 restricts a float32 value to be within [min, max].
// An inverted range (min > max) always yields min.
func ClampF32(val, min, max float32) float32 {
	if min > max || val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
