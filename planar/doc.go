// Package planar solves the guided modes of symmetric planar waveguides: a
// film of index n1 and thickness d between semi-infinite claddings of index
// n2, plus the parabolic graded planar guide.
//
// 🚀 What is planar?
//
//	TE and TM mode families of the symmetric slab, from the boundary-value
//	eigenvalue equations (Ghatak & Thyagarajan ch. 7):
//	  ξ·tan ξ = √(V²/4 − ξ²)          even TE modes
//	  ξ·cot ξ = −√(V²/4 − ξ²)         odd TE modes
//	with ξ = (d/2)·√(k₀²n1² − β²); TM modes carry an extra (n1/n2)² on the
//	right-hand side.  The parabolic guide n²(x) = n1²(1 − 2Δ(x/a)²) has
//	analytic Hermite–Gauss modes and needs no root search.
//
// ✨ How roots are found:
//
//   - The eigenvalue domain (0, V/2] is partitioned at the poles of
//     tan/cot — multiples of π/2 — so each mode owns one subinterval.
//   - Each subinterval is refined with rootfind.Brent; a missing sign
//     change means the mode is below cutoff, reported as a result value
//     (guided=false), never as an error.
//   - TE0 and TM0 have no cutoff: they are guided for every V > 0.
//
// ⚙️ Usage:
//
//	xi, guided, err := planar.TECrossing(8, 0)   // fundamental even mode
//	bs, err := planar.TEPropagationConstant([]float64{2, 4, 8}, 0)
//
// Mode numbering: mode m = 0, 1, 2, … alternates even/odd parity; the
// number of guided TE modes at frequency V is ⌊V/π⌋+1.
package planar
