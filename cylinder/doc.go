// Package cylinder solves the guided LP modes of circular step-index
// fibers and derives the quantities an optical link designer reads off a
// mode: power split, field shape, spot size, dispersion curvature, splice
// and bend losses, and the far-field radiation pattern.
//
// 🚀 What is cylinder?
//
//	In the weakly guiding limit the bound modes of a step-index fiber are
//	the LP_{ℓm} family, each fixed by one number: the normalized
//	propagation constant b ∈ (0,1) solving the characteristic equation
//	(Ghatak eq. 8.40)
//	  U·J_{ℓ−1}(U)/J_ℓ(U) + W·K_{ℓ−1}(W)/K_ℓ(W) = 0
//	with U = V√(1−b), W = V√b, so U² + W² = V² always holds.
//
// ✨ How modes are found:
//
//   - The zeros of J_ℓ partition b-space into windows holding at most one
//     root each; the m-th window belongs to radial order m.
//   - Each window is refined with rootfind.Brent between the pole-offset
//     bounds.  An empty or sign-constant window means the mode is below
//     cutoff — reported as Solution{Guided: false}, never as an error.
//   - LP01 has no cutoff; LP11 appears at V = 2.405 (the first zero of
//     J₀), marking the single-mode boundary.
//
// ⚙️ Usage:
//
//	f := cylinder.Fiber{CoreIndex: 1.46, CladIndex: 1.45, Radius: 3.3e-6, Wavelength: 1.55e-6}
//	s, err := cylinder.LPModeValue(f.V(), 0, 1)   // fundamental mode
//	modes, err := cylinder.Modes(f.V())           // every guided LP mode
//
// Everything downstream of the solver takes the (V, b, ℓ) triple, so one
// solve feeds irradiances, spot sizes, VD2bVByV and the far field.
package cylinder
