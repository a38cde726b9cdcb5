// Package rootfind locates roots of one-dimensional real functions whose
// domains are littered with poles — the situation every waveguide
// characteristic equation presents.
//
// 🚀 What is rootfind?
//
//	A small, deliberate engine with two halves:
//	  • Bracketing: scan an interval (or expand from a point) and collect
//	    the subintervals across which the function changes sign.  Samples
//	    that evaluate to NaN or ±Inf — pole neighborhoods — are skipped,
//	    never counted as sign changes.
//	  • Refinement: shrink a bracket to tolerance with Brent's method,
//	    which is guaranteed to converge and never leaves the bracket.
//
// ✨ Why bracket-then-refine?
//
//   - Characteristic equations have many roots separated by poles; an open
//     method (pure Newton) started blindly can land on a pole or skip roots.
//   - A bracket found by scanning is ordered, so the n-th sign change maps
//     directly to the n-th mode of a family.
//   - Every loop here is iteration-capped: a search either meets tolerance
//     or returns ErrNoConvergence, it never spins forever.
//
// ⚙️ Usage:
//
//	f := func(x float64) float64 { return x*x - 2 }
//	root, err := rootfind.Brent(f, 0, 2, rootfind.DefaultOptions())
//	// root ≈ 1.414214
//
// Complexity: Brent converges superlinearly; the scan is O(Samples)
// evaluations per interval.
package rootfind
