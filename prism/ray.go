package prism

import (
	"github.com/fogleman/pt/pt"
)

// Ray is a half-line of one wavelength. Rays are replaced, never mutated, at each bounce.
type Ray struct {
	Origin Point
	// Expected to be unit length
	Direction        Vector
	Color            pt.Color
	Wavelength       float64
	WavelengthOffset float64
	Intensity        float64
}

// LightSource is where the beam starts and which way it points
type LightSource struct {
	Position Point
	// Angle of the beam in radians from the +X axis
	Angle float64
}

// Ray returns the beam of the light source for one spectrum sample
func (l LightSource) Ray(s Sample) Ray {
	return Ray{
		Origin:           l.Position,
		Direction:        Direction(l.Angle),
		Color:            s.Color,
		Wavelength:       s.Wavelength,
		WavelengthOffset: s.Offset,
		Intensity:        s.Intensity,
	}
}

// child returns a ray continuing from origin in dir with the same wavelength
func (r Ray) child(origin Point, dir Vector) Ray {
	r.Origin = origin
	r.Direction = dir
	return r
}
