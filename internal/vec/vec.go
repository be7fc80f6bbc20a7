package vec

import "math"

// Vec2 is an immutable 2D vector. Every operation returns a new value;
// nothing mutates its receiver or argument.
type Vec2 struct {
	X, Y float64
}

var Zero = Vec2{}

func New(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vec2) NormSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalized returns the unit vector in v's direction. The zero vector
// normalizes to the zero vector.
func (v Vec2) Normalized() Vec2 {
	n := v.Norm()
	if n == 0 {
		return Vec2{}
	}
	return Vec2{v.X / n, v.Y / n}
}

// Cross returns the scalar z-component of the 2D cross product.
func (v Vec2) Cross(o Vec2) float64 {
	return v.X*o.Y - v.Y*o.X
}

// DistSq returns the squared distance between a and b without building an
// intermediate difference vector.
func DistSq(a, b Vec2) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return dx*dx + dy*dy
}

func Dist(a, b Vec2) float64 {
	return math.Sqrt(DistSq(a, b))
}
