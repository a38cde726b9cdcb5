package planar

import (
	"math"

	"github.com/lumenoptics/owg/basics"
)

// hermite evaluates the physicists' Hermite polynomial H_m(x) with the
// three-term recurrence H_{n+1}(x) = 2x·H_n(x) − 2n·H_{n−1}(x).
func hermite(m int, x float64) float64 {
	if m == 0 {
		return 1
	}
	prev, cur := 1.0, 2*x
	for n := 1; n < m; n++ {
		prev, cur = cur, 2*x*cur-2*float64(n)*prev
	}
	return cur
}

// ParabolicPropagationConstant returns the propagation constant β of mode m
// in a parabolic graded planar guide n²(x) = n1²(1 − 2Δ(x/a)²):
//
//	β_m = √(k² − γ²(2m+1)),  k = 2πn1/λ₀,  γ = √V/a
//
// guided=false when β would be imaginary, i.e. the mode is not bound at
// this V.  a is the half-width of the index profile.
func ParabolicPropagationConstant(m int, lambda0, n1, a, v float64) (beta float64, guided bool, err error) {
	switch {
	case m < 0:
		return 0, false, ErrBadMode
	case lambda0 <= 0:
		return 0, false, ErrBadWavelength
	case n1 <= 0:
		return 0, false, ErrBadIndices
	case a <= 0:
		return 0, false, ErrBadThickness
	case v <= 0 || math.IsNaN(v):
		return 0, false, ErrBadV
	}
	gamma := math.Sqrt(v) / a
	k := 2 * math.Pi * n1 / lambda0
	b2 := k*k - gamma*gamma*float64(2*m+1)
	if b2 <= 0 {
		return 0, false, nil
	}
	return math.Sqrt(b2), true, nil
}

// ParabolicPropagationConstants returns β for every bound mode of the
// parabolic planar guide, in increasing mode order.  A guide too weak to
// bind any mode yields an empty slice.
func ParabolicPropagationConstants(lambda0, n1, a, v float64) ([]float64, error) {
	var out []float64
	for m := 0; ; m++ {
		beta, guided, err := ParabolicPropagationConstant(m, lambda0, n1, a, v)
		if err != nil {
			return nil, err
		}
		if !guided {
			return out, nil
		}
		out = append(out, beta)
	}
}

// TEParabolicField returns E_y at each position in xs for Hermite–Gauss
// mode m of a parabolic planar guide with centerline index n1, relative
// index Δ and half-width a:
//
//	E_y(x) = N_m · H_m(γx) · exp(−(γx)²/2),  N_m = √(γ / (2^m m! √π))
//
// The normalization makes ∫E_y² dx = 1, so E_y carries units of m^(−1/2).
func TEParabolicField(m int, lambda0, n1, delta float64, a float64, xs []float64) ([]float64, error) {
	switch {
	case m < 0:
		return nil, ErrBadMode
	case lambda0 <= 0:
		return nil, ErrBadWavelength
	case n1 <= 0 || delta <= 0 || delta >= 1:
		return nil, ErrBadIndices
	case a <= 0:
		return nil, ErrBadThickness
	}
	na := basics.NumericalApertureFromDelta(n1, delta)
	v := basics.VParameter(a, na, lambda0)
	gamma := math.Sqrt(v) / a

	// 2^m · m! accumulated in one pass; fine for any mode a guide binds.
	scale := 1.0
	for n := 1; n <= m; n++ {
		scale *= 2 * float64(n)
	}
	norm := math.Sqrt(gamma / (scale * math.Sqrt(math.Pi)))

	out := make([]float64, len(xs))
	for i, x := range xs {
		xi := gamma * x
		out[i] = norm * hermite(m, xi) * math.Exp(-0.5*xi*xi)
	}
	return out, nil
}
