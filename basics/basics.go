package basics

import (
	"errors"
	"math"

	"github.com/lumenoptics/owg/bessel"
)

// Sentinel errors for basics operations.
var (
	// ErrBadIndices indicates the core index does not exceed the cladding index.
	ErrBadIndices = errors.New("basics: core index must exceed cladding index, both positive")
	// ErrBadGeometry indicates a non-positive radius or wavelength.
	ErrBadGeometry = errors.New("basics: radius and wavelength must be positive")
)

// NumericalAperture returns NA = sqrt(n_core² − n_clad²).
func NumericalAperture(nCore, nClad float64) float64 {
	return math.Sqrt(nCore*nCore - nClad*nClad)
}

// NumericalApertureFromDelta returns NA = n_core·sqrt(2Δ).
func NumericalApertureFromDelta(nCore, delta float64) float64 {
	return nCore * math.Sqrt(2*delta)
}

// NumericalApertureGradedIndex returns the local numerical aperture of a
// power-law graded-index fiber at fractional radius rOverA:
// NA(r) = sqrt(n_core² − n_clad²)·sqrt(1 − (r/a)^q).
func NumericalApertureGradedIndex(nCore, nClad, q, rOverA float64) float64 {
	return NumericalAperture(nCore, nClad) * math.Sqrt(1-math.Pow(rOverA, q))
}

// RelativeRefractiveIndex returns Δ = (n_core² − n_clad²) / (2 n_core²).
func RelativeRefractiveIndex(nCore, nClad float64) float64 {
	return (nCore*nCore - nClad*nClad) / (2 * nCore * nCore)
}

// AcceptanceAngle returns the half-angle of the cone of light accepted by a
// fiber face sitting in a medium of index nOutside (1 for air):
// arcsin(NA / n_outside).
func AcceptanceAngle(na, nOutside float64) float64 {
	return math.Asin(na / nOutside)
}

// CriticalAngle returns the angle from the normal for total internal
// reflection at the core-cladding interface: arcsin(n_clad / n_core).
func CriticalAngle(nCore, nClad float64) float64 {
	return math.Asin(nClad / nCore)
}

// VParameter returns the normalized frequency V = 2πa·NA/λ.
func VParameter(a, na, lambda0 float64) float64 {
	return 2 * math.Pi / lambda0 * a * na
}

// CutoffWavelength returns the longest wavelength at which mode family ell
// is cut off: λ_c = 2πa·NA / V_c where V_c is the first zero of J_ell.
//
// For a graded-index fiber pass its profile exponent q; the step-index case
// is q = +Inf, which scales V_c by sqrt(1 + 2/q) → 1.
//
// A negative ell names the same degenerate LP family as +ell and is
// folded accordingly.  Fails with ErrBadGeometry when a or NA is
// non-positive.
func CutoffWavelength(a, na float64, ell int, q float64) (float64, error) {
	if a <= 0 || na <= 0 {
		return 0, ErrBadGeometry
	}
	if ell < 0 {
		ell = -ell
	}
	z := bessel.JZeros(ell, 1)
	vc := z[0]
	if !math.IsInf(q, 1) {
		vc *= math.Sqrt(1 + 2/q)
	}
	return 2 * math.Pi * a * na / vc, nil
}

// ESIDelta returns the equivalent-step-index Δ of a graded fiber with
// profile exponent q: Δ_esi = q(2+q)/(1+q)²·Δ.
func ESIDelta(delta, q float64) float64 {
	return q * (2 + q) / ((1 + q) * (1 + q)) * delta
}

// ESIRadius returns the equivalent-step-index radius a·(1+q)/(2+q).
func ESIRadius(a, q float64) float64 {
	return a * (1 + q) / (2 + q)
}

// ESIVParameter returns the equivalent-step-index V·sqrt(q/(q+2)).
func ESIVParameter(v, q float64) float64 {
	return v * math.Sqrt(q/(q+2))
}
