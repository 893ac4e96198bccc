package geom

import "math"

// Vec2 is a 2D float vector. Value type, all operations return a new vector.
type Vec2 struct {
	X float64
	Y float64
}

func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

// Splat returns a vector with both components set to s.
func Splat(s float64) Vec2 { return Vec2{X: s, Y: s} }

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }
func (v Vec2) Scale(s float64) Vec2 { return Vec2{X: v.X * s, Y: v.Y * s} }
func (v Vec2) IsZero() bool         { return v.X == 0 && v.Y == 0 }
func (v Vec2) Len() float64         { return math.Hypot(v.X, v.Y) }

// Normalize returns the unit vector in v's direction. The zero vector stays zero.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}
