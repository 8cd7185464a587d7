// Package core provides fundamental types and utilities shared by the
// simulation, the game wrapper and the terminal platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec2 is a 2D vector in world units.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Length returns the length of the vector (x, y).
func Length(x, y float64) float64 {
	return math.Sqrt(x*x + y*y)
}

// Normalize returns (x, y) scaled to unit length.
// A zero vector is divided by 1 instead of 0, so the result is the zero
// vector itself. Callers must tolerate a zero "unit" vector.
func Normalize(x, y float64) Vec2 {
	l := Length(x, y)
	if l == 0 {
		l = 1
	}
	return Vec2{X: x / l, Y: y / l}
}

// Distance returns the euclidean distance between two points.
func Distance(ax, ay, bx, by float64) float64 {
	return Length(ax-bx, ay-by)
}

// Rect represents an axis-aligned bounding box used for collision detection.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// RectsOverlap is the open-interval AABB overlap test.
func RectsOverlap(a, b Rect) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
