package planar

import (
	"errors"
	"math"

	"github.com/lumenoptics/owg/rootfind"
)

// teResidual is the TE eigenvalue equation for mode parity; zero exactly at
// a guided mode.  Even modes: ξ·tanξ − √(V²/4−ξ²); odd: ξ·cotξ + √(V²/4−ξ²).
func teResidual(xi, v float64, mode int) float64 {
	g := math.Sqrt(v*v/4 - xi*xi)
	if mode%2 == 0 {
		return xi*math.Tan(xi) - g
	}
	return xi/math.Tan(xi) + g
}

// tmResidual is the TM eigenvalue equation; the cladding sees the field
// through the (n1/n2)² impedance factor.
func tmResidual(xi, v, n1, n2 float64, mode int) float64 {
	r := n1 / n2
	g := r * r * math.Sqrt(v*v/4-xi*xi)
	if mode%2 == 0 {
		return xi*math.Tan(xi) - g
	}
	return xi/math.Tan(xi) + g
}

// modeBracket returns the search interval owned by the given mode: the
// mode-th subinterval of (0, V/2] between consecutive poles of tan/cot,
// offset inward by abit.  ok=false when the interval lies beyond V/2
// entirely — the mode is below cutoff before any residual is evaluated.
func modeBracket(v float64, mode int) (lo, hi float64, ok bool) {
	lo = abit + float64(mode)*math.Pi/2
	hi = math.Min(math.Pi/2-abit+float64(mode)*math.Pi/2, v/2)
	if lo > v/2 {
		return 0, 0, false
	}
	return lo, hi, true
}

// TECrossing — single TE slab eigenvalue.
//
// Description:
//
//	Returns the eigenvalue ξ of TE mode `mode` at normalized frequency V.
//	guided=false means the mode is below cutoff at this V — an expected
//	physical state, not an error.  TE0 is guided for every V > 0.
//
// Errors:
//   - ErrBadV    — V <= 0.
//   - ErrBadMode — mode < 0.
//   - rootfind.ErrNoConvergence — refinement cap exceeded (never silent).
func TECrossing(v float64, mode int) (xi float64, guided bool, err error) {
	return teCrossingTol(v, mode, rootfind.DefaultOptions())
}

// TECrossingTol is TECrossing with explicit solver options.
func TECrossingTol(v float64, mode int, opts rootfind.Options) (float64, bool, error) {
	return teCrossingTol(v, mode, opts)
}

func teCrossingTol(v float64, mode int, opts rootfind.Options) (float64, bool, error) {
	if v <= 0 || math.IsNaN(v) {
		return 0, false, ErrBadV
	}
	if mode < 0 {
		return 0, false, ErrBadMode
	}

	lo, hi, ok := modeBracket(v, mode)
	if !ok {
		return 0, false, nil
	}
	f := func(xi float64) float64 { return teResidual(xi, v, mode) }
	xi, err := rootfind.Brent(f, lo, hi, opts)
	if errors.Is(err, rootfind.ErrNoBracket) {
		return 0, false, nil // same sign at both ends: below cutoff
	}
	if err != nil {
		return 0, false, err
	}
	return xi, true, nil
}

// TMCrossing — single TM slab eigenvalue; see TECrossing for semantics.
//
// Errors additionally include ErrBadIndices when n1 <= n2 or n2 <= 0.
func TMCrossing(v, n1, n2 float64, mode int) (xi float64, guided bool, err error) {
	return tmCrossingTol(v, n1, n2, mode, rootfind.DefaultOptions())
}

// TMCrossingTol is TMCrossing with explicit solver options.
func TMCrossingTol(v, n1, n2 float64, mode int, opts rootfind.Options) (float64, bool, error) {
	return tmCrossingTol(v, n1, n2, mode, opts)
}

func tmCrossingTol(v, n1, n2 float64, mode int, opts rootfind.Options) (float64, bool, error) {
	if v <= 0 || math.IsNaN(v) {
		return 0, false, ErrBadV
	}
	if mode < 0 {
		return 0, false, ErrBadMode
	}
	if n2 <= 0 || n1 <= n2 {
		return 0, false, ErrBadIndices
	}

	lo, hi, ok := modeBracket(v, mode)
	if !ok {
		return 0, false, nil
	}
	f := func(xi float64) float64 { return tmResidual(xi, v, n1, n2, mode) }
	xi, err := rootfind.Brent(f, lo, hi, opts)
	if errors.Is(err, rootfind.ErrNoBracket) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return xi, true, nil
}

// TECrossings returns the eigenvalues of every guided TE mode at V, in
// increasing mode order.
func TECrossings(v float64) ([]float64, error) {
	if v <= 0 || math.IsNaN(v) {
		return nil, ErrBadV
	}
	var out []float64
	for mode := 0; mode <= int(v/math.Pi); mode++ {
		xi, guided, err := TECrossing(v, mode)
		if err != nil {
			return nil, err
		}
		if !guided {
			break // modes cut off in order; nothing above survives
		}
		out = append(out, xi)
	}
	return out, nil
}

// TMCrossings returns the eigenvalues of every guided TM mode at V, in
// increasing mode order.
func TMCrossings(v, n1, n2 float64) ([]float64, error) {
	if v <= 0 || math.IsNaN(v) {
		return nil, ErrBadV
	}
	if n2 <= 0 || n1 <= n2 {
		return nil, ErrBadIndices
	}
	var out []float64
	for mode := 0; mode <= int(v/math.Pi); mode++ {
		xi, guided, err := TMCrossing(v, n1, n2, mode)
		if err != nil {
			return nil, err
		}
		if !guided {
			break
		}
		out = append(out, xi)
	}
	return out, nil
}

// basicField evaluates the transverse mode shape shared by TE and TM:
// sinusoidal inside the film, evanescent outside, continuous at x = ±d/2.
func basicField(v, d, xi float64, mode int, xs []float64) []float64 {
	gdby2 := math.Sqrt(v*v/4 - xi*xi) // γ·d/2
	kappa := 2 / d * xi

	out := make([]float64, len(xs))
	for i, x := range xs {
		xgamma := 2 / d * gdby2 * math.Abs(x)
		var a, b float64
		if mode%2 == 0 {
			a = math.Cos(kappa * x)
			b = math.Cos(xi) * math.Exp(gdby2-xgamma)
		} else {
			a = math.Sin(kappa * x)
			b = math.Sin(xi) * sign(x) * math.Exp(gdby2-xgamma)
		}
		if math.Abs(x) < d/2 {
			out[i] = a
		} else {
			out[i] = b
		}
	}
	return out
}

// TEField returns E_y at each position in xs for TE mode `mode` of a film
// of thickness d.  Output length mirrors xs.  guided=false (with nil
// fields) when the mode is below cutoff.
func TEField(v, d float64, xs []float64, mode int) (fields []float64, guided bool, err error) {
	if d <= 0 {
		return nil, false, ErrBadThickness
	}
	xi, guided, err := TECrossing(v, mode)
	if err != nil || !guided {
		return nil, guided, err
	}
	return basicField(v, d, xi, mode, xs), true, nil
}

// TMField returns H_y at each position in xs for TM mode `mode`.
func TMField(v, n1, n2, d float64, xs []float64, mode int) (fields []float64, guided bool, err error) {
	if d <= 0 {
		return nil, false, ErrBadThickness
	}
	xi, guided, err := TMCrossing(v, n1, n2, mode)
	if err != nil || !guided {
		return nil, guided, err
	}
	return basicField(v, d, xi, mode, xs), true, nil
}

// TEPropagationConstant returns the normalized propagation constant
// b = 1 − (2ξ/V)² of TE mode `mode` at each frequency in vs.  Below-cutoff
// entries are 0; the output shape mirrors the input.
func TEPropagationConstant(vs []float64, mode int) ([]float64, error) {
	out := make([]float64, len(vs))
	for i, v := range vs {
		xi, guided, err := TECrossing(v, mode)
		if err != nil {
			return nil, err
		}
		if guided {
			out[i] = 1 - (2*xi/v)*(2*xi/v)
		}
	}
	return out, nil
}

// TMPropagationConstant is the TM analogue of TEPropagationConstant.
func TMPropagationConstant(vs []float64, n1, n2 float64, mode int) ([]float64, error) {
	out := make([]float64, len(vs))
	for i, v := range vs {
		xi, guided, err := TMCrossing(v, n1, n2, mode)
		if err != nil {
			return nil, err
		}
		if guided {
			out[i] = 1 - (2*xi/v)*(2*xi/v)
		}
	}
	return out, nil
}

func sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
