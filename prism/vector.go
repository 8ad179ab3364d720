package prism

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a position in scene space
type Point struct {
	X, Y float64
}

// Vector is a displacement or direction in scene space. It is only unit length where stated.
type Vector struct {
	X, Y float64
}

// P is a shorthand constructor for Point
func P(x, y float64) Point {
	return Point{X: x, Y: y}
}

// V is a shorthand constructor for Vector
func V(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Direction returns the unit vector at angle radians from the +X axis
func Direction(angle float64) Vector {
	return Vector{X: math.Cos(angle), Y: math.Sin(angle)}
}

func (p Point) Add(v Vector) Point {
	return Point(r2.Add(r2.Vec(p), r2.Vec(v)))
}

// Sub returns the vector pointing from q to p
func (p Point) Sub(q Point) Vector {
	return Vector(r2.Sub(r2.Vec(p), r2.Vec(q)))
}

// Distance returns the euclidean distance between two points
func Distance(p, q Point) float64 {
	return p.Sub(q).Magnitude()
}

func (v Vector) Add(w Vector) Vector {
	return Vector(r2.Add(r2.Vec(v), r2.Vec(w)))
}

func (v Vector) Sub(w Vector) Vector {
	return Vector(r2.Sub(r2.Vec(v), r2.Vec(w)))
}

func (v Vector) Scale(s float64) Vector {
	return Vector(r2.Scale(s, r2.Vec(v)))
}

func (v Vector) Neg() Vector {
	return v.Scale(-1)
}

func (v Vector) Dot(w Vector) float64 {
	return r2.Dot(r2.Vec(v), r2.Vec(w))
}

// Cross returns the z component of the 3D cross product of v and w
func (v Vector) Cross(w Vector) float64 {
	return r2.Cross(r2.Vec(v), r2.Vec(w))
}

func (v Vector) Magnitude() float64 {
	return r2.Norm(r2.Vec(v))
}

// Normalize returns v scaled to unit length.
//
// The zero vector has no direction, so it normalizes to the zero vector. Callers must treat that
// result as a degenerate direction.
func (v Vector) Normalize() Vector {
	if v.Magnitude() == 0 {
		return Vector{}
	}
	return Vector(r2.Unit(r2.Vec(v)))
}

// Perp returns v rotated by 90 degrees counterclockwise
func (v Vector) Perp() Vector {
	return Vector{X: -v.Y, Y: v.X}
}

func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Angle returns the angle of v from the +X axis in radians
func (v Vector) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// AngleTo returns the signed angle that rotates v onto w, in (-pi, pi]
func (v Vector) AngleTo(w Vector) float64 {
	return math.Atan2(v.Cross(w), v.Dot(w))
}
