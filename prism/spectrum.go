package prism

import (
	"fmt"
	"math"
	"sort"

	"github.com/fogleman/pt/pt"
	lin "github.com/sgreben/piecewiselinear"
)

// Sample is one wavelength of the light source
type Sample struct {
	Name string
	// Wavelength in nanometers
	Wavelength float64
	Color      pt.Color
	// Added to the prism's base refractive index for this wavelength
	Offset float64
	// Relative intensity in (0, 1]
	Intensity float64
}

// Spectrum is an ordered list of samples, red first
type Spectrum []Sample

// DispersionCurve maps wavelength in nanometers to a refractive index offset
type DispersionCurve struct {
	f lin.Function
}

// NewDispersionCurve builds a curve from a map of wavelength (nm) to index offset.
// Lookups outside the mapped range are clamped to the nearest end.
func NewDispersionCurve(points map[float64]float64) DispersionCurve {
	xs := make([]float64, 0, len(points))
	for k := range points {
		xs = append(xs, k)
	}
	sort.Float64s(xs)
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = points[x]
	}
	return DispersionCurve{f: lin.Function{X: xs, Y: ys}}
}

func (c DispersionCurve) Offset(wavelength float64) float64 {
	xs := c.f.X
	if len(xs) == 0 {
		return 0
	}
	w := math.Min(math.Max(wavelength, xs[0]), xs[len(xs)-1])
	return c.f.At(w)
}

// VisibleDispersion spans roughly +-0.03 across the visible band, shorter wavelengths higher
var VisibleDispersion = NewDispersionCurve(map[float64]float64{
	380: 0.030,
	450: 0.015,
	500: 0.006,
	550: 0.000,
	600: -0.010,
	650: -0.020,
	750: -0.030,
})

var defaultSamples = []Sample{
	{Name: "red", Wavelength: 700, Color: pt.Color{R: 1, G: 0, B: 0}, Intensity: 1},
	{Name: "orange", Wavelength: 620, Color: pt.Color{R: 1, G: 0.5, B: 0}, Intensity: 1},
	{Name: "yellow", Wavelength: 580, Color: pt.Color{R: 1, G: 1, B: 0}, Intensity: 1},
	{Name: "green", Wavelength: 530, Color: pt.Color{R: 0, G: 1, B: 0}, Intensity: 1},
	{Name: "cyan", Wavelength: 490, Color: pt.Color{R: 0, G: 1, B: 1}, Intensity: 1},
	{Name: "blue", Wavelength: 450, Color: pt.Color{R: 0, G: 0, B: 1}, Intensity: 1},
	{Name: "violet", Wavelength: 400, Color: pt.Color{R: 0.56, G: 0, B: 1}, Intensity: 1},
}

// NewSpectrum returns a copy of samples with each offset taken from curve
func NewSpectrum(curve DispersionCurve, samples []Sample) Spectrum {
	s := make(Spectrum, len(samples))
	for i, sample := range samples {
		sample.Offset = curve.Offset(sample.Wavelength)
		s[i] = sample
	}
	return s
}

// DefaultSpectrum returns seven samples from red to violet on VisibleDispersion
func DefaultSpectrum() Spectrum {
	return NewSpectrum(VisibleDispersion, defaultSamples)
}

// Mix returns the additive combination of all samples, scaled so the brightest channel is 1
func (s Spectrum) Mix() pt.Color {
	sum := pt.Color{}
	for _, sample := range s {
		sum = sum.Add(sample.Color.MulScalar(sample.Intensity))
	}
	peak := math.Max(sum.R, math.Max(sum.G, sum.B))
	if peak == 0 {
		return sum
	}
	return sum.MulScalar(1 / peak)
}

// Validate checks that the table is usable for dispersion: intensities in (0, 1] and offsets
// strictly increasing in order, so each sample bends more than the one before it.
func (s Spectrum) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("spectrum has no samples")
	}
	for i, sample := range s {
		if sample.Intensity <= 0 || sample.Intensity > 1 {
			return fmt.Errorf("sample %d (%s): intensity %v not in (0, 1]", i, sample.Name, sample.Intensity)
		}
		if i > 0 && sample.Offset <= s[i-1].Offset {
			return fmt.Errorf("sample %d (%s): offset %v does not exceed previous offset %v", i, sample.Name, sample.Offset, s[i-1].Offset)
		}
	}
	return nil
}
