// Package graded models graded-index fibers: power-law refractive index
// profiles, their guided modes through WKB quantization, and ray paths in
// the graded core.
//
// 🚀 What is graded?
//
//	A graded-index fiber replaces the step profile with
//	  n²(r) = n1²·(1 − 2Δ·(r/a)^q)
//	inside the core.  q = 2 is the parabolic profile that minimizes
//	intermodal dispersion; q → ∞ recovers the step fiber.  No closed-form
//	characteristic equation exists for general q, so modes come from the
//	WKB phase condition: the transverse phase accumulated between the
//	classical turning points must equal (m − ½)π,
//	  ∫ √(V²(1 − b − ρ^q) − ℓ²/ρ²) dρ = (m − ½)π,  ρ = r/a.
//
// ✨ How modes are found:
//
//   - The classically allowed region is bounded by the turning points of
//     the integrand, located with rootfind.
//   - The phase integral is evaluated by Gauss–Legendre quadrature
//     (gonum integrate/quad); the quadrature error bounds the achievable
//     root accuracy at the integrand's square-root endpoints.
//   - The phase decreases monotonically in b, so each (ℓ,m) has at most
//     one root; a phase deficit means the mode is below cutoff, reported
//     as Solution{Guided: false}.
//
// ⚙️ Usage:
//
//	s, err := graded.ModeValue(10, 0, 1, 2)   // parabolic LP01 at V=10
//	n := graded.ModeCount(20, 2)              // ≈ q/(q+2)·V²/2 bound modes
//
// The parabolic profile has the analytic limit b = 1 − (4m + 2ℓ − 2)/V,
// which the WKB solver reproduces and the tests pin down.
package graded
