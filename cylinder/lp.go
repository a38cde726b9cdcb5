package cylinder

import (
	"errors"
	"math"

	"github.com/lumenoptics/owg/bessel"
	"github.com/lumenoptics/owg/rootfind"
)

// lpResidual is the LP characteristic equation (Ghatak eq. 8.40) written
// as a function of b:
//
//	U·J_{ℓ−1}(U)/J_ℓ(U) + W·K_{ℓ−1}(W)/K_ℓ(W),  U = V√(1−b), W = V√b
//
// Zero exactly at a guided mode.  Poles sit at the zeros of J_ℓ(U), which
// partition (0,1) in b; ℓ = 0 works through J_{−1} = −J_1 and K_{−1} = K_1.
func lpResidual(b, v float64, ell int) float64 {
	u := v * math.Sqrt(1-b)
	w := v * math.Sqrt(b)
	core := u * bessel.J(ell-1, u) / bessel.J(ell, u)
	clad := w * bessel.K(ell-1, w) / bessel.K(ell, w)
	return core + clad
}

// lpBracket returns the b-interval owned by mode (ℓ,m): between the
// consecutive zeros of J_ℓ mapped into b and offset inward by abit.
// ok=false when the interval is empty, i.e. the mode is below cutoff.
func lpBracket(v float64, ell, em int) (lo, hi float64, ok bool) {
	jz := bessel.JZeros(ell, em)
	lo = math.Max(0, 1-(jz[em-1]/v)*(jz[em-1]/v)) + abit
	if em == 1 {
		hi = 1 - abit
	} else {
		hi = 1 - (jz[em-2]/v)*(jz[em-2]/v) - abit
	}
	if hi < lo {
		return 0, 0, false
	}
	return lo, hi, true
}

// LPModeValue — normalized propagation constant of one LP mode.
//
// Description:
//
//	Solves the characteristic equation for LP mode (ℓ,m) at normalized
//	frequency V and returns the full (b, U, W) solution.  A mode at or
//	below its cutoff comes back as Solution{Guided: false} with a nil
//	error: cutoff is a physical state of the fiber, not a failure.
//	Negative ℓ maps to its positive counterpart (LP modes are degenerate
//	in the sign of ℓ).  LP01 is guided at every V > 0.
//
// Errors:
//   - ErrBadV    — V <= 0 or NaN.
//   - ErrBadMode — em < 1.
//   - rootfind.ErrNoConvergence — refinement cap exceeded (never silent).
func LPModeValue(v float64, ell, em int) (Solution, error) {
	return lpModeValueTol(v, ell, em, rootfind.DefaultOptions())
}

// LPModeValueTol is LPModeValue with explicit solver options.
func LPModeValueTol(v float64, ell, em int, opts rootfind.Options) (Solution, error) {
	return lpModeValueTol(v, ell, em, opts)
}

func lpModeValueTol(v float64, ell, em int, opts rootfind.Options) (Solution, error) {
	if v <= 0 || math.IsNaN(v) {
		return Solution{}, ErrBadV
	}
	if em < 1 {
		return Solution{}, ErrBadMode
	}
	if ell < 0 {
		ell = -ell
	}

	lo, hi, ok := lpBracket(v, ell, em)
	if !ok {
		return Solution{}, nil
	}
	f := func(b float64) float64 { return lpResidual(b, v, ell) }
	b, err := rootfind.Brent(f, lo, hi, opts)
	if errors.Is(err, rootfind.ErrNoBracket) {
		return Solution{}, nil // same sign at both ends: below cutoff
	}
	if err != nil {
		return Solution{}, err
	}
	return solutionAt(v, b), nil
}

// LPModeValues returns the solutions of every guided radial order of the
// ℓ family at V, index 0 holding LP_{ℓ,1}.  An empty slice means the whole
// family is below cutoff.
func LPModeValues(v float64, ell int) ([]Solution, error) {
	if v <= 0 || math.IsNaN(v) {
		return nil, ErrBadV
	}
	var out []Solution
	for em := 1; ; em++ {
		s, err := LPModeValue(v, ell, em)
		if err != nil {
			return nil, err
		}
		if !s.Guided {
			return out, nil // radial orders cut off in sequence
		}
		out = append(out, s)
	}
}

// LPModeValueSweep solves one mode across many frequencies; the output
// mirrors the input shape, with below-cutoff entries left as zero-valued
// unguided solutions.
func LPModeValueSweep(vs []float64, ell, em int) ([]Solution, error) {
	out := make([]Solution, len(vs))
	for i, v := range vs {
		s, err := LPModeValue(v, ell, em)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

// Modes returns every guided LP mode at frequency V, ordered by ℓ then m.
// The ℓ families terminate in order (the LP_{ℓ,1} cutoff grows with ℓ), so
// enumeration stops at the first empty family.
func Modes(v float64) ([]Mode, error) {
	if v <= 0 || math.IsNaN(v) {
		return nil, ErrBadV
	}
	var out []Mode
	for ell := 0; ; ell++ {
		ss, err := LPModeValues(v, ell)
		if err != nil {
			return nil, err
		}
		if len(ss) == 0 {
			return out, nil
		}
		for em := 1; em <= len(ss); em++ {
			out = append(out, Mode{Ell: ell, Em: em})
		}
	}
}
