//go:build verify_optics
// +build verify_optics

package prism

import (
	"fmt"
	"math"
)

// Constants for verification
const (
	lengthEpsilon = 1e-7
	sineEpsilon   = 1e-6
)

func init() {
	fmt.Println("Optics verification enabled.")
}

func verifyUnit(v Vector) {
	if math.Abs(v.Magnitude()-1) > lengthEpsilon {
		panic(fmt.Sprintf("direction %v is not unit length", v))
	}
}

func verifyMirrorLaw(incident, normal, reflected Vector) {
	verifyUnit(reflected)
	// Angle of incidence should equal angle of reflection
	if math.Abs(incident.Dot(normal)+reflected.Dot(normal)) > sineEpsilon {
		panic("angle of incidence should equal angle of reflection")
	}
}

func verifySnellLaw(incident, normal, refracted Vector, n1, n2 float64) {
	verifyUnit(refracted)
	sin1 := math.Abs(incident.Cross(normal))
	sin2 := math.Abs(refracted.Cross(normal))
	if math.Abs(n1*sin1-n2*sin2) > sineEpsilon*math.Max(n1, n2) {
		panic(fmt.Sprintf("n1 sin1 = %v but n2 sin2 = %v", n1*sin1, n2*sin2))
	}
}
