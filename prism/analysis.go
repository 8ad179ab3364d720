package prism

import (
	"math"
)

// Dispersion summarizes how far one sample was turned by the prism
type Dispersion struct {
	Sample Sample
	// Signed angle in radians from the light's direction to the direction the light escapes in.
	// Zero when the path did not escape.
	Deviation float64
	// Number of faces the light met
	Bounces int
	Escaped bool
}

// Analyze traces the scene and measures the deviation of every sample
func (s Scene) Analyze(params TraceParams) []Dispersion {
	initial := Direction(s.Light.Angle)
	paths := s.TracePaths(params)
	ds := make([]Dispersion, len(paths))
	for i, p := range paths {
		d := Dispersion{Sample: p.Sample, Escaped: p.Escaped()}
		if len(p.Segments) > 0 {
			d.Bounces = len(p.Segments) - 1
		}
		if d.Escaped {
			d.Deviation = initial.AngleTo(p.Segments[len(p.Segments)-1].Direction())
		} else {
			d.Bounces = len(p.Segments)
		}
		ds[i] = d
	}
	return ds
}

// Spread returns the angle in radians between the least and most deviated escaped samples
func Spread(ds []Dispersion) float64 {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, d := range ds {
		if !d.Escaped {
			continue
		}
		lo = math.Min(lo, d.Deviation)
		hi = math.Max(hi, d.Deviation)
	}
	if hi < lo {
		return 0
	}
	return hi - lo
}
