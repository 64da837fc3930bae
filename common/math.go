package common

import "math"

// TileSize is the edge length of one level tile in world units.
const TileSize = 16

// Epsilon is the tolerance below which a displacement counts as no movement.
const Epsilon = 1e-6

// Vec2 is a world-space vector. Y grows upward.
type Vec2 struct {
	X float64
	Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Finite reports whether neither component is NaN or infinite.
func (v Vec2) Finite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// NearZero reports whether f is within Epsilon of zero.
func NearZero(f float64) bool {
	return math.Abs(f) < Epsilon
}
