package prism

import (
	"math"
)

// Air is the refractive index outside the prism
const Air = 1.0

// Prism is an equilateral triangle of glass
type Prism struct {
	Center Point
	// Rotation in radians. At zero, vertex 0 is the top vertex.
	Rotation   float64
	SideLength float64
	// Base refractive index; each wavelength adds its own offset to this
	RefractiveIndex float64
}

// Edge is one face of the prism, joining vertex Index to vertex (Index+1) mod 3
type Edge struct {
	Index  int
	P1, P2 Point
}

// Circumradius returns the distance from the center to each vertex
func (p Prism) Circumradius() float64 {
	return p.SideLength / math.Sqrt(3)
}

func (p Prism) Vertices() [3]Point {
	r := p.Circumradius()
	var vs [3]Point
	for k := range vs {
		a := p.Rotation - math.Pi/2 + float64(k)*2*math.Pi/3
		vs[k] = p.Center.Add(Direction(a).Scale(r))
	}
	return vs
}

func (p Prism) Edges() [3]Edge {
	vs := p.Vertices()
	var es [3]Edge
	for i := range es {
		es[i] = Edge{Index: i, P1: vs[i], P2: vs[(i+1)%3]}
	}
	return es
}

// OutwardNormal returns the unit normal of the edge that points away from center
func (e Edge) OutwardNormal(center Point) Vector {
	return against(edgeNormal(e.P1, e.P2), center.Sub(e.P1))
}

// Contains reports whether pt lies inside the prism or on its boundary
func (p Prism) Contains(pt Point) bool {
	for _, e := range p.Edges() {
		if pt.Sub(e.P1).Dot(e.OutwardNormal(p.Center)) > 0 {
			return false
		}
	}
	return true
}

// GlassIndex returns the refractive index of the prism for a wavelength with the given offset.
// It never drops below the index of air.
func (p Prism) GlassIndex(offset float64) float64 {
	return math.Max(Air, p.RefractiveIndex+offset)
}
