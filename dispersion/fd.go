package dispersion

import (
	"math"

	"gonum.org/v1/gonum/diff/fd"

	"github.com/lumenoptics/owg/basics"
	"github.com/lumenoptics/owg/cylinder"
	"github.com/lumenoptics/owg/rootfind"
)

// Finite-difference parameters for the n_eff(λ) derivatives.  The solver
// tolerance must sit far below h² or the second derivative drowns in
// root-finding noise.
const (
	fdStep   = 1e-9  // [m]
	fdAbsTol = 1e-12 // b tolerance for the perturbed solves
)

// effectiveIndex solves the fundamental mode at one wavelength and maps
// b to n_eff = √(n2² + b·NA²).  NaN outside the solver's domain, which
// fd treats as a poisoned sample.
func effectiveIndex(n1, n2, a, lambda0 float64) float64 {
	na := basics.NumericalAperture(n1, n2)
	v := basics.VParameter(a, na, lambda0)

	opts := rootfind.DefaultOptions()
	opts.AbsTol = fdAbsTol
	s, err := cylinder.LPModeValueTol(v, 0, 1, opts)
	if err != nil || !s.Guided {
		return math.NaN()
	}
	return math.Sqrt(n2*n2 + s.B*na*na)
}

// WaveguideFD returns the waveguide dispersion of the fundamental mode
// in s/m² by numerically differentiating n_eff(λ):
//
//	D_w = −(λ₀/c)·d²n_eff/dλ²
//
// The material indices are held fixed, so only the modal redistribution
// contributes — the same quantity Waveguide computes analytically.
func WaveguideFD(n1, n2, a, lambda0 float64) (float64, error) {
	if err := checkFiber(n1, n2, a, lambda0); err != nil {
		return 0, err
	}
	f := func(l float64) float64 { return effectiveIndex(n1, n2, a, l) }
	d2 := fd.Derivative(f, lambda0, &fd.Settings{
		Formula: fd.Central2nd,
		Step:    fdStep,
	})
	if math.IsNaN(d2) {
		return 0, ErrBadArgument
	}
	return -lambda0 * d2 / speedOfLight, nil
}

// GroupDelay returns the group delay per unit length of the fundamental
// mode, in s/m:
//
//	τ = (n_eff − λ₀·dn_eff/dλ)/c
func GroupDelay(n1, n2, a, lambda0 float64) (float64, error) {
	if err := checkFiber(n1, n2, a, lambda0); err != nil {
		return 0, err
	}
	neff := effectiveIndex(n1, n2, a, lambda0)
	d1 := fd.Derivative(func(l float64) float64 {
		return effectiveIndex(n1, n2, a, l)
	}, lambda0, &fd.Settings{
		Formula: fd.Central,
		Step:    fdStep,
	})
	if math.IsNaN(neff) || math.IsNaN(d1) {
		return 0, ErrBadArgument
	}
	return (neff - lambda0*d1) / speedOfLight, nil
}
