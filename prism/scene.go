package prism

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Scene is everything one trace pass reads. It is never modified by tracing.
type Scene struct {
	Prism    Prism
	Light    LightSource
	Spectrum Spectrum
}

// Path is the traced path of one spectrum sample
type Path struct {
	Sample   Sample
	Segments []Segment
}

// Escaped reports whether the path ends with light leaving the scene
func (p Path) Escaped() bool {
	return len(p.Segments) > 0 && p.Segments[len(p.Segments)-1].Kind == Escaped
}

// TracePaths traces every sample of the spectrum in order
func (s Scene) TracePaths(params TraceParams) []Path {
	paths := make([]Path, len(s.Spectrum))
	for i, sample := range s.Spectrum {
		paths[i] = s.tracePath(sample, params)
	}
	return paths
}

func (s Scene) tracePath(sample Sample, params TraceParams) Path {
	return Path{
		Sample:   sample,
		Segments: TraceRay(s.Light.Ray(sample), s.Prism, params),
	}
}

// Trace returns the segments of every sample, one sample after another
func (s Scene) Trace(params TraceParams) []Segment {
	return flatten(s.TracePaths(params))
}

// TraceParallel traces each sample on its own goroutine. The result is identical to Trace.
func (s Scene) TraceParallel(ctx context.Context, params TraceParams) ([]Segment, error) {
	paths := make([]Path, len(s.Spectrum))
	g, ctx := errgroup.WithContext(ctx)
	for i, sample := range s.Spectrum {
		i, sample := i, sample
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			paths[i] = s.tracePath(sample, params)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return flatten(paths), nil
}

func flatten(paths []Path) []Segment {
	n := 0
	for _, p := range paths {
		n += len(p.Segments)
	}
	segments := make([]Segment, 0, n)
	for _, p := range paths {
		segments = append(segments, p.Segments...)
	}
	return segments
}
