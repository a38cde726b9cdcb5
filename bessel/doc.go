// Package bessel supplies the integer-order Bessel functions the waveguide
// characteristic equations are built from: J and Y of the first and second
// kind, the modified functions I and K, their derivatives, and the zeros of
// J_n used to partition eigenvalue search domains.
//
// 🚀 What is bessel?
//
//	The library's special-function layer:
//	  • J, Y      — thin wrappers over math.Jn / math.Yn
//	  • I, K      — Abramowitz & Stegun polynomial fits for orders 0 and 1,
//	    extended by a stable recurrence (upward for K, Miller's downward
//	    algorithm for I)
//	  • Jd, Yd, Id, Kd — derivatives by the two-term recurrence identities
//	  • JZeros    — the first k positive zeros of J_n, located by the same
//	    bracket-and-refine engine the mode solvers use
//
// Negative orders follow the reflection identities J_{-n}=(−1)^n J_n,
// Y_{-n}=(−1)^n Y_n, I_{-n}=I_n, K_{-n}=K_n.
//
// Accuracy: the A&S fits are good to roughly 1e-7 relative error, which is
// below the default eigenvalue tolerance everywhere they are used.  JZeros
// refines to 1e-12.
//
// ⚙️ Usage:
//
//	w := 1.3
//	ratio := bessel.K(0, w) / bessel.K(1, w)
//	z := bessel.JZeros(0, 3) // [2.404826, 5.520078, 8.653728]
package bessel
