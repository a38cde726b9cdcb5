package basics

import (
	"math"
	"math/cmplx"
)

// Fresnel reflectances at a plane interface, for the (possibly complex)
// relative refractive index m of the far medium.  All three return the
// reflected fraction of intensity, not field.

// RPar returns the reflectance for light polarized parallel to the plane of
// incidence.  theta is the angle from the surface normal in radians.
func RPar(m complex128, theta float64) float64 {
	m2 := m * m
	c := complex(math.Cos(theta), 0)
	s := math.Sin(theta)
	d := cmplx.Sqrt(m2 - complex(s*s, 0))
	r := cmplx.Abs((m2*c - d) / (m2*c + d))
	return r * r
}

// RPer returns the reflectance for light polarized perpendicular to the
// plane of incidence.
func RPer(m complex128, theta float64) float64 {
	m2 := m * m
	c := complex(math.Cos(theta), 0)
	s := math.Sin(theta)
	d := cmplx.Sqrt(m2 - complex(s*s, 0))
	r := cmplx.Abs((c - d) / (c + d))
	return r * r
}

// RUnpolarized returns the reflectance for unpolarized incident light,
// the average of the two polarized reflectances.
func RUnpolarized(m complex128, theta float64) float64 {
	return (RPar(m, theta) + RPer(m, theta)) / 2
}
