package cylinder

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/lumenoptics/owg/bessel"
	"github.com/lumenoptics/owg/rootfind"
)

// FarFieldPolar returns the polar factor F_ℓ of the x-polarized far field
// of a guided LP mode (Chen eq. 10.13), evaluated at kasin = k·a·sinΘ:
//
//	F_ℓ = [kasin·J_{ℓ+1}(kasin) − (J_ℓ(kasin)/J_ℓ(U))·U·J_{ℓ+1}(U)]
//	      / [(U² − kasin²)(V²b + kasin²)]
//
// The kasin = U point is a removable singularity of the quotient; sample
// a hair off it.
func FarFieldPolar(kasin, v float64, ell int, b float64) float64 {
	u := v * math.Sqrt(1 - b)
	numer := kasin*bessel.J(ell+1, kasin) -
		bessel.J(ell, kasin)/bessel.J(ell, u)*u*bessel.J(ell+1, u)
	denom := (u*u - kasin*kasin) * (v*v*b + kasin*kasin)
	return numer / denom
}

// FarFieldIrradianceX returns the normalized x-polarized far-field
// irradiance at spherical point (r, Θ, φ) for a guided mode with
// azimuthal order ℓ and propagation constant b (Chen eq. 10.12);
// lambda0 is the wavelength in the exit medium and a the core radius.
func FarFieldIrradianceX(r, theta, phi float64, ell int, lambda0, a, v, b float64) float64 {
	k := 2 * math.Pi / lambda0
	kasin := k * a * math.Sin(theta)
	ff := FarFieldPolar(kasin, v, ell, b) * math.Pow(k*a*v, 2) * math.Cos(float64(ell)*phi) / (k * r)
	return ff * ff
}

// FarFieldPolarIrradianceX returns the far-field irradiance at (r, Θ)
// integrated over the azimuthal angle; ∫cos²(ℓφ)dφ over a full turn is π.
func FarFieldPolarIrradianceX(r, theta float64, ell int, lambda0, a, v, b float64) float64 {
	k := 2 * math.Pi / lambda0
	kasin := k * a * math.Sin(theta)
	ff := FarFieldPolar(kasin, v, ell, b) * math.Pow(k*a*v, 2) / (k * r)
	return math.Pi * ff * ff
}

// Far-field node search parameters: the pattern's first zero is hunted by
// expanding the upper bound in steps of ffNodeStep from just above the
// axis, where modes with ℓ≠0 have a trivial zero.
const (
	ffNodeLo    = 1e-5
	ffNodeStep  = 1e-2
	ffNodeSteps = 3000
)

// FarFieldNodeAngle — first node of the far-field pattern.
//
// Description:
//
//	Returns kasin = k·a·sinΘ_N at the first nonzero node of the far field
//	of LP mode (ℓ,m), a standard measure of the angular spread of the
//	fiber's output.  guided=false when the mode is below cutoff at V.
//
// Errors:
//   - ErrBadV, ErrBadMode — as for LPModeValue.
//   - rootfind.ErrNoBracket — no node within the search range.
func FarFieldNodeAngle(v float64, ell, em int) (kasin float64, guided bool, err error) {
	if ell < 0 {
		ell = -ell
	}
	s, err := LPModeValue(v, ell, em)
	if err != nil || !s.Guided {
		return 0, s.Guided, err
	}

	f := func(x float64) float64 { return FarFieldPolar(x, v, ell, s.B) }
	hi, err := rootfind.FirstBracket(f, ffNodeLo, ffNodeStep, ffNodeSteps)
	if err != nil {
		return 0, true, err
	}
	kasin, err = rootfind.Brent(f, ffNodeLo, hi, rootfind.DefaultOptions())
	if err != nil {
		return 0, true, err
	}
	return kasin, true, nil
}

// FarFieldProfile samples the azimuthally integrated far-field irradiance
// on a uniform polar grid of n angles over [0, thetaMax], returning the
// grid and the matching irradiance values.
func FarFieldProfile(r float64, thetaMax float64, n int, ell int, lambda0, a, v, b float64) (thetas, irr []float64, err error) {
	if n < 2 || thetaMax <= 0 || r <= 0 {
		return nil, nil, ErrBadArgument
	}
	thetas = make([]float64, n)
	floats.Span(thetas, 0, thetaMax)
	irr = make([]float64, n)
	for i, th := range thetas {
		irr[i] = FarFieldPolarIrradianceX(r, th, ell, lambda0, a, v, b)
	}
	return thetas, irr, nil
}
