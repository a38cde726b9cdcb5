// Package basics computes the scalar parameters of optical fibers that feed
// the mode solvers: numerical aperture, relative refractive index Δ, the
// normalized frequency V, cutoff wavelengths, acceptance and critical
// angles, equivalent-step-index (ESI) reductions of graded-index fibers,
// and the Fresnel reflectances at a fiber face.
//
// Every function is a pure closed-form evaluation; the only numerics
// involved is the Bessel-zero lookup behind CutoffWavelength.
//
// ⚙️ Usage:
//
//	na := basics.NumericalAperture(1.46, 1.45)       // 0.1706...
//	v := basics.VParameter(4.5e-6, na, 1.55e-6)      // ≈ 2.31
//	lc, _ := basics.CutoffWavelength(4.5e-6, na, 0, math.Inf(1))
//
// References: Ghatak & Thyagarajan, An Introduction to Fiber Optics,
// Cambridge University Press, 1998 (chapters 3–5).
package basics
