package prism

import (
	"math"

	"github.com/fogleman/pt/pt"
)

// SegmentKind says what happens to the light at the end of a segment
type SegmentKind int

const (
	// The segment leaves the scene
	Escaped SegmentKind = iota
	// The segment ends on a face and the light passes through it
	Refracted
	// The segment ends on a face and the light is totally internally reflected
	Reflected
)

func (k SegmentKind) String() string {
	switch k {
	case Escaped:
		return "escaped"
	case Refracted:
		return "refracted"
	case Reflected:
		return "reflected"
	}
	return "unknown"
}

// Segment is one drawable piece of a light path
type Segment struct {
	P1, P2      Point
	Color       pt.Color
	Wavelength  float64
	StrokeWidth float64
	BlurRadius  float64
	Intensity   float64
	Depth       int
	Kind        SegmentKind
}

// Direction returns the unit direction from P1 to P2
func (s Segment) Direction() Vector {
	return s.P2.Sub(s.P1).Normalize()
}

// TraceParams contains parameters to guide tracing
type TraceParams struct {
	// Deepest recursion that still emits a segment. The primary ray is depth 0.
	MaxDepth int
	// Length of the segment drawn for a ray that leaves the prism for good
	EscapeLength float64
	// Distance a child ray is moved along its new direction before it is traced
	SpawnOffset float64
	Styles      StyleTable
}

// DefaultTraceParams returns the parameters used when a config does not override them
func DefaultTraceParams() TraceParams {
	return TraceParams{
		MaxDepth:     4,
		EscapeLength: 2000,
		SpawnOffset:  0.01,
		Styles:       DefaultStyles,
	}
}

type tracer struct {
	prism  Prism
	edges  [3]Edge
	params TraceParams
	out    []Segment
}

// TraceRay follows ray through prism and returns every segment of its path in emission order.
//
// A ray with a zero direction is degenerate and produces no segments.
func TraceRay(ray Ray, prism Prism, params TraceParams) []Segment {
	ray.Direction = ray.Direction.Normalize()
	if ray.Direction.IsZero() {
		return nil
	}
	t := tracer{prism: prism, edges: prism.Edges(), params: params}
	t.trace(ray, 0)
	return t.out
}

func (t *tracer) emit(ray Ray, end Point, depth int, kind SegmentKind) {
	style := t.params.Styles.At(depth)
	t.out = append(t.out, Segment{
		P1:          ray.Origin,
		P2:          end,
		Color:       ray.Color,
		Wavelength:  ray.Wavelength,
		StrokeWidth: style.StrokeWidth,
		BlurRadius:  style.BlurRadius,
		Intensity:   ray.Intensity,
		Depth:       depth,
		Kind:        kind,
	})
}

// closest returns the nearest face the ray hits
func (t *tracer) closest(ray Ray) (Hit, Edge, bool) {
	var (
		best     Hit
		bestEdge Edge
		found    bool
	)
	for _, e := range t.edges {
		hit, ok := IntersectSegment(ray.Origin, ray.Direction, e.P1, e.P2)
		if !ok {
			continue
		}
		if !found || hit.T < best.T {
			best, bestEdge, found = hit, e, true
		}
	}
	return best, bestEdge, found
}

func (t *tracer) trace(ray Ray, depth int) {
	if depth > t.params.MaxDepth {
		return
	}

	hit, edge, ok := t.closest(ray)
	if !ok {
		t.emit(ray, ray.Origin.Add(ray.Direction.Scale(t.params.EscapeLength)), depth, Escaped)
		return
	}

	outward := edge.OutwardNormal(t.prism.Center)
	entering := ray.Direction.Dot(outward) < 0
	n1, n2 := Air, t.prism.GlassIndex(ray.WavelengthOffset)
	if !entering {
		n1, n2 = n2, n1
	}
	normal := against(outward, ray.Direction)

	dir, reflected := bend(ray.Direction, normal, n1, n2)
	kind := Refracted
	if reflected {
		kind = Reflected
	}
	t.emit(ray, hit.Point, depth, kind)

	if dir.IsZero() {
		return
	}
	t.trace(ray.child(hit.Point.Add(dir.Scale(t.params.SpawnOffset)), dir), depth+1)
}

// bend returns the direction of unit vector d after it meets a surface with unit normal n,
// which faces the medium of index n1 that d travels in. reflected is true when no refracted
// direction exists and d is mirrored instead.
func bend(d, n Vector, n1, n2 float64) (dir Vector, reflected bool) {
	eta := n1 / n2
	c1 := -d.Dot(n)
	cs2 := 1 - eta*eta*(1-c1*c1)
	if cs2 < 0 {
		dir = d.Sub(n.Scale(2 * d.Dot(n))).Normalize()
		verifyMirrorLaw(d, n, dir)
		return dir, true
	}
	dir = d.Scale(eta).Add(n.Scale(eta*c1 - math.Sqrt(cs2))).Normalize()
	verifySnellLaw(d, n, dir, n1, n2)
	return dir, false
}
