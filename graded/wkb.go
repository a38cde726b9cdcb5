package graded

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/integrate/quad"

	"github.com/lumenoptics/owg/cylinder"
	"github.com/lumenoptics/owg/rootfind"
)

// Quadrature and bracketing parameters for the WKB phase integral.  The
// integrand has square-root zeros at the turning points, so the fixed
// Gauss–Legendre rule needs a generous node count to hold the phase error
// well below the root tolerance.
const (
	wkbQuadNodes   = 301
	wkbScanSamples = 256
	wkbEdge        = 1e-5
)

// wkbShape is the squared transverse wavenumber in normalized radius:
//
//	g(ρ) = V²(1 − b − ρ^q) − ℓ²/ρ²
//
// Positive between the turning points (the classically allowed region).
func wkbShape(rho, v, b float64, ell int, q float64) float64 {
	l := float64(ell)
	return v*v*(1-b-math.Pow(rho, q)) - l*l/(rho*rho)
}

// phaseIntegral accumulates the WKB transverse phase between the turning
// points at frequency V and trial propagation constant b.  Zero when no
// classically allowed region exists.
func phaseIntegral(v, b float64, ell int, q float64) float64 {
	if b >= 1 {
		return 0
	}
	outer := math.Pow(1-b, 1/q) // g < 0 beyond here even for ℓ = 0

	g := func(rho float64) float64 { return wkbShape(rho, v, b, ell, q) }

	lo, hi := 0.0, outer
	if ell != 0 {
		// The centrifugal term pushes the inner turning point off the
		// axis and pulls the outer one inward.
		brs, err := rootfind.Brackets(g, outer*1e-9, outer, wkbScanSamples)
		if err != nil || len(brs) < 2 {
			return 0
		}
		opts := rootfind.DefaultOptions()
		opts.AbsTol = 1e-10
		r1, err := rootfind.Brent(g, brs[0][0], brs[0][1], opts)
		if err != nil {
			return 0
		}
		r2, err := rootfind.Brent(g, brs[1][0], brs[1][1], opts)
		if err != nil {
			return 0
		}
		lo, hi = r1, r2
	}

	f := func(rho float64) float64 {
		gv := g(rho)
		if gv <= 0 {
			return 0
		}
		return math.Sqrt(gv)
	}
	return quad.Fixed(f, lo, hi, wkbQuadNodes, quad.Legendre{}, 0)
}

// ModeValue — WKB propagation constant of one graded-fiber mode.
//
// Description:
//
//	Solves the WKB phase condition for LP mode (ℓ,m) of a power-law
//	fiber with grading exponent q at normalized frequency V, returning
//	the same Solution triple the step-index solver produces.  The phase
//	shrinks monotonically as b grows, so the condition has at most one
//	root; a phase deficit everywhere means the mode is below cutoff,
//	reported as Solution{Guided: false} with a nil error.
//
// Errors:
//   - ErrBadV       — V <= 0 or NaN.
//   - ErrBadMode    — em < 1.
//   - ErrBadProfile — q <= 0.
//   - rootfind.ErrNoConvergence — refinement cap exceeded.
func ModeValue(v float64, ell, em int, q float64) (cylinder.Solution, error) {
	if v <= 0 || math.IsNaN(v) {
		return cylinder.Solution{}, ErrBadV
	}
	if em < 1 {
		return cylinder.Solution{}, ErrBadMode
	}
	if q <= 0 || math.IsNaN(q) {
		return cylinder.Solution{}, ErrBadProfile
	}
	if ell < 0 {
		ell = -ell
	}

	target := (float64(em) - 0.5) * math.Pi
	residual := func(b float64) float64 { return phaseIntegral(v, b, ell, q) - target }

	b, err := rootfind.Brent(residual, wkbEdge, 1-wkbEdge, rootfind.DefaultOptions())
	if errors.Is(err, rootfind.ErrNoBracket) {
		return cylinder.Solution{}, nil // not enough phase: below cutoff
	}
	if err != nil {
		return cylinder.Solution{}, err
	}
	return cylinder.Solution{
		B:      b,
		U:      v * math.Sqrt(1 - b),
		W:      v * math.Sqrt(b),
		Guided: true,
	}, nil
}

// ModeValues returns the solutions of every guided radial order of the
// ℓ family at V, index 0 holding LP_{ℓ,1}.
func ModeValues(v float64, ell int, q float64) ([]cylinder.Solution, error) {
	if v <= 0 || math.IsNaN(v) {
		return nil, ErrBadV
	}
	var out []cylinder.Solution
	for em := 1; ; em++ {
		s, err := ModeValue(v, ell, em, q)
		if err != nil {
			return nil, err
		}
		if !s.Guided {
			return out, nil
		}
		out = append(out, s)
	}
}
