package rootfind

import "math"

// Brackets — ordered sign-change scan.
//
// Description:
//
//	Samples f at n+1 evenly spaced points over [lo, hi] and returns every
//	adjacent pair with opposite signs, in increasing order.  Non-finite
//	samples (NaN, ±Inf — pole neighborhoods) are dropped before the sign
//	comparison, so a pole flanked by values of opposite sign is not
//	reported as a root bracket unless a genuine crossing lies between the
//	surviving samples.
//
//	The k-th returned bracket is the k-th root of f along [lo, hi] when f
//	has simple, separated roots — which is how mode families map radial
//	order to brackets.
//
// Errors:
//   - ErrBadInterval — lo >= hi or non-finite endpoint.
//   - ErrBadOptions  — n < 2.
func Brackets(f Func, lo, hi float64, n int) ([][2]float64, error) {
	if !(lo < hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || math.IsNaN(lo) || math.IsNaN(hi) {
		return nil, ErrBadInterval
	}
	if n < 2 {
		return nil, ErrBadOptions
	}

	var out [][2]float64
	step := (hi - lo) / float64(n)

	prevX := math.NaN()
	prevF := math.NaN()
	for i := 0; i <= n; i++ {
		x := lo + float64(i)*step
		if i == n {
			x = hi // avoid accumulated rounding past the endpoint
		}
		fx := f(x)
		if !isUsable(fx) {
			continue
		}
		if fx == 0 {
			out = append(out, [2]float64{x, x})
		} else if isUsable(prevF) && prevF*fx < 0 {
			out = append(out, [2]float64{prevX, x})
		}
		prevX, prevF = x, fx
	}

	return out, nil
}

// FirstBracket — expanding scan for the first sign change right of lo.
//
// Description:
//
//	Evaluates f at lo, then walks outward in increments of step until the
//	sign differs from the sign at lo, returning the far endpoint of the
//	bracketing interval.  Used where the search domain is half-open (the
//	far-field node hunt) and only the first root matters.
//
// Errors:
//   - ErrBadInterval — non-positive step or non-finite lo.
//   - ErrNoBracket   — no sign change within maxSteps (or f(lo) unusable).
func FirstBracket(f Func, lo, step float64, maxSteps int) (float64, error) {
	if step <= 0 || !isUsable(lo) {
		return 0, ErrBadInterval
	}

	f1 := f(lo)
	if !isUsable(f1) {
		return 0, ErrNoBracket
	}

	hi := lo
	for j := 1; j <= maxSteps; j++ {
		hi = lo + float64(j)*step
		f2 := f(hi)
		if !isUsable(f2) {
			continue
		}
		if f1*f2 < 0 {
			return hi, nil
		}
	}

	return 0, ErrNoBracket
}
