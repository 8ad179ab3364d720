package config

import (
	"math"

	"github.com/fogleman/pt/pt"

	goprism "github.com/jdginn/go-prism/prism"
)

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func point(p [2]float64) goprism.Point {
	return goprism.P(p[0], p[1])
}

func color(c [3]float64) pt.Color {
	return pt.Color{R: c[0], G: c[1], B: c[2]}
}

func (p Prism) Create() goprism.Prism {
	return goprism.Prism{
		Center:          point(p.Center),
		Rotation:        radians(p.RotationDeg),
		SideLength:      p.SideLength,
		RefractiveIndex: p.RefractiveIndex,
	}
}

func (l Light) Create() goprism.LightSource {
	return goprism.LightSource{
		Position: point(l.Position),
		Angle:    radians(l.AngleDeg),
	}
}

// Create returns the configured samples, or the default spectrum when none are configured
func (s Spectrum) Create() goprism.Spectrum {
	if len(s.Inline) == 0 {
		return goprism.DefaultSpectrum()
	}
	spectrum := make(goprism.Spectrum, len(s.Inline))
	for i, sample := range s.Inline {
		offset := goprism.VisibleDispersion.Offset(sample.Wavelength)
		if sample.Offset != nil {
			offset = *sample.Offset
		}
		spectrum[i] = goprism.Sample{
			Name:       sample.Name,
			Wavelength: sample.Wavelength,
			Color:      color(sample.Color),
			Offset:     offset,
			Intensity:  sample.Intensity,
		}
	}
	return spectrum
}

// Create fills unset fields from goprism.DefaultTraceParams
func (t Trace) Create() goprism.TraceParams {
	params := goprism.DefaultTraceParams()
	if t.MaxDepth != nil {
		params.MaxDepth = *t.MaxDepth
	}
	if t.EscapeLength != 0 {
		params.EscapeLength = t.EscapeLength
	}
	if t.SpawnOffset != 0 {
		params.SpawnOffset = t.SpawnOffset
	}
	if len(t.Styles) > 0 {
		params.Styles = make(goprism.StyleTable, len(t.Styles))
		for i, s := range t.Styles {
			params.Styles[i] = goprism.Style{StrokeWidth: s.StrokeWidth, BlurRadius: s.BlurRadius}
		}
	}
	return params
}

func (o Output) Create() goprism.View {
	return goprism.View{
		Width:      o.Width,
		Height:     o.Height,
		Scale:      o.Scale,
		Background: color(o.Background),
	}
}

// Scene assembles the prism, light and spectrum sections
func (c *Config) Scene() goprism.Scene {
	return goprism.Scene{
		Prism:    c.Prism.Create(),
		Light:    c.Light.Create(),
		Spectrum: c.Spectrum.Create(),
	}
}
