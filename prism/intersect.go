package prism

const (
	// Below this determinant magnitude the ray and segment are treated as parallel
	parallelEpsilon = 1e-6
	// Hits at or before this ray parameter are the ray's own origin re-hitting its surface
	selfHitEpsilon = 1e-3
)

// Hit describes where a ray crosses a segment
type Hit struct {
	Point Point
	// Ray parameter of the hit; the hit is at origin + T*direction
	T float64
	// Segment parameter of the hit in [0, 1]
	U float64
	// Unit normal of the segment, oriented against the incident direction
	Normal Vector
}

// edgeNormal returns the unit normal of the segment p1->p2, rotated counterclockwise from its direction
func edgeNormal(p1, p2 Point) Vector {
	return p2.Sub(p1).Perp().Normalize()
}

// against returns n or its negation, whichever does not point along ref.
//
// Both the intersection test and the refraction step orient their normals through this.
func against(n, ref Vector) Vector {
	if n.Dot(ref) > 0 {
		return n.Neg()
	}
	return n
}

// IntersectSegment intersects the ray origin + t*dir (dir unit length) with the segment p1-p2.
//
// Parallel rays, hits at t <= 1e-3 and hits off the ends of the segment report ok == false.
func IntersectSegment(origin Point, dir Vector, p1, p2 Point) (hit Hit, ok bool) {
	s := p2.Sub(p1)
	det := dir.Cross(s)
	if det > -parallelEpsilon && det < parallelEpsilon {
		return Hit{}, false
	}
	q := p1.Sub(origin)
	t := q.Cross(s) / det
	u := q.Cross(dir) / det
	if t <= selfHitEpsilon || u < 0 || u > 1 {
		return Hit{}, false
	}
	return Hit{
		Point:  origin.Add(dir.Scale(t)),
		T:      t,
		U:      u,
		Normal: against(edgeNormal(p1, p2), dir),
	}, true
}
