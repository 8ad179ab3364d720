//go:build !verify_optics
// +build !verify_optics

package prism

// Empty stubs that will be optimized out
func verifyMirrorLaw(incident, normal, reflected Vector) {}

func verifySnellLaw(incident, normal, refracted Vector, n1, n2 float64) {}
