package rootfind

import "math"

// Brent — bracketed scalar root refinement.
//
// Description:
//
//	Shrinks the bracket [lo, hi] around a sign change of f to within
//	opts.AbsTol using Brent's method: inverse quadratic interpolation when
//	the iterates behave, secant steps when they half-behave, and bisection
//	whenever an interpolated step would leave the bracket or shrink it too
//	slowly.  The iterate never escapes the original bracket.
//
// Algorithm Outline:
//  1. Require f(lo) and f(hi) to have opposite signs (else ErrNoBracket).
//  2. Keep (a,b,c) with b the best iterate and [b,c] a valid bracket.
//  3. Propose an interpolated step; fall back to bisection when the step
//     is out of range or smaller than the floating-point resolution.
//  4. Stop when the half-bracket is below AbsTol (plus machine slack) or
//     f(b) is exactly zero.
//  5. Give up with ErrNoConvergence after opts.MaxIter iterations.
//
// Errors:
//   - ErrBadInterval   — lo >= hi or non-finite endpoint.
//   - ErrBadOptions    — unusable tolerances.
//   - ErrNoBracket     — same (or non-finite) sign at both endpoints.
//   - ErrNoConvergence — iteration cap reached.
func Brent(f Func, lo, hi float64, opts Options) (float64, error) {
	if err := opts.validate(); err != nil {
		return 0, err
	}
	if !(lo < hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || math.IsNaN(lo) || math.IsNaN(hi) {
		return 0, ErrBadInterval
	}

	a, b := lo, hi
	fa, fb := f(a), f(b)
	if !isUsable(fa) || !isUsable(fb) || fa*fb > 0 {
		return 0, ErrNoBracket
	}
	if fa == 0 {
		return a, nil
	}
	if fb == 0 {
		return b, nil
	}

	c, fc := a, fa
	d := b - a
	e := d

	for iter := 0; iter < opts.MaxIter; iter++ {
		if math.Abs(fc) < math.Abs(fb) {
			// Keep b the best approximation.
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}

		tol := 2*machEps*math.Abs(b) + 0.5*opts.AbsTol
		m := 0.5 * (c - b)
		if math.Abs(m) <= tol || fb == 0 {
			return b, nil
		}

		if math.Abs(e) < tol || math.Abs(fa) <= math.Abs(fb) {
			// Forced bisection.
			d, e = m, m
		} else {
			s := fb / fa
			var p, q float64
			if a == c {
				// Secant step.
				p = 2 * m * s
				q = 1 - s
			} else {
				// Inverse quadratic interpolation.
				q = fa / fc
				r := fb / fc
				p = s * (2*m*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			} else {
				p = -p
			}
			if 2*p < math.Min(3*m*q-math.Abs(tol*q), math.Abs(e*q)) {
				e = d
				d = p / q
			} else {
				d, e = m, m
			}
		}

		a, fa = b, fb
		if math.Abs(d) > tol {
			b += d
		} else if m > 0 {
			b += tol
		} else {
			b -= tol
		}
		fb = f(b)
		if !isUsable(fb) {
			// Landed on a pole sample inside the bracket; fall back to the
			// midpoint, which stays strictly inside.
			b = a + m
			fb = f(b)
			if !isUsable(fb) {
				return 0, ErrNoConvergence
			}
		}
		if (fb > 0) == (fc > 0) {
			c, fc = a, fa
			d = b - a
			e = d
		}
	}

	return 0, ErrNoConvergence
}

// machEps is the double-precision unit roundoff.
const machEps = 2.220446049250313e-16

// isUsable reports whether a sample can participate in sign logic.
func isUsable(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
