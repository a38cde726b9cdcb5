package graded

import (
	"errors"
	"math"

	"github.com/lumenoptics/owg/basics"
)

// Sentinel errors for graded operations.
var (
	// ErrBadProfile indicates profile parameters outside the physical domain.
	ErrBadProfile = errors.New("graded: core index must exceed cladding index, radius and exponent must be positive")
	// ErrBadV indicates a non-positive normalized frequency.
	ErrBadV = errors.New("graded: V must be positive")
	// ErrBadMode indicates a radial mode number below 1.
	ErrBadMode = errors.New("graded: radial mode number em must be 1 or greater")
)

// Profile is a power-law graded-index profile with core index n1 at the
// axis, cladding index n2 beyond the core radius a, and grading exponent q:
//
//	n²(r) = n1²·(1 − 2Δ·(r/a)^q),  r < a
type Profile struct {
	CoreIndex float64 // n1 at the fiber axis
	CladIndex float64 // n2
	Radius    float64 // a [m]
	Exponent  float64 // q
}

// Validate reports whether the profile lies in the physical domain
// n1 > n2 > 0, a > 0, q > 0.
func (p Profile) Validate() error {
	if p.CladIndex <= 0 || p.CoreIndex <= p.CladIndex || p.Radius <= 0 || p.Exponent <= 0 {
		return ErrBadProfile
	}
	return nil
}

// Delta returns the relative refractive index (n1²−n2²)/(2n1²).
func (p Profile) Delta() float64 {
	return basics.RelativeRefractiveIndex(p.CoreIndex, p.CladIndex)
}

// Index returns the refractive index at radius r.  Negative radii mirror
// positive ones; outside the core the index clamps to the cladding value.
func (p Profile) Index(r float64) float64 {
	rho := math.Abs(r) / p.Radius
	if rho >= 1 {
		return p.CladIndex
	}
	n1 := p.CoreIndex
	nsqr := n1 * n1 * (1 - 2*p.Delta()*math.Pow(rho, p.Exponent))
	return math.Sqrt(nsqr)
}

// ModeCount returns the WKB estimate of the number of bound modes of a
// power-law fiber at frequency V:
//
//	N ≈ q/(q+2) · V²/2
//
// A parabolic fiber carries half the modes of the equivalent step fiber.
func ModeCount(v, q float64) float64 {
	return q / (q + 2) * v * v / 2
}

// TransverseLocation returns the radial excursion of a meridional ray
// launched at angle theta1 from the axis, after axial distance z
// (Ghatak eq. 4.13).  Graded fibers refocus such rays periodically.
func TransverseLocation(n1, theta1, delta, a, z float64) float64 {
	beta := n1 * math.Cos(theta1)
	gamma := n1 * math.Sqrt(2*delta) / (beta * a)
	amp := a * math.Sin(theta1) / math.Sqrt(2*delta)
	return amp * math.Sin(gamma*z)
}
