// Package dispersion computes the chromatic dispersion of single-mode
// fibers: the material part from Sellmeier derivatives, the waveguide
// part from the fundamental mode's b(V) curvature, and their total.
//
// 🚀 What is dispersion?
//
//	A pulse spreads because group velocity depends on wavelength.  Two
//	mechanisms dominate in a single-mode fiber:
//	  - material: D_m = −(λ/c)·d²n/dλ², from the glass itself;
//	  - waveguide: D_w = −(n2·Δ)/(c·λ)·V·d²(bV)/dV², from how the mode
//	    redistributes between core and cladding as λ changes.
//	Both carry s/m² (multiply by 1e6 for the usual ps/(km·nm)).
//
// ✨ Two routes to the waveguide term:
//
//   - Waveguide evaluates the analytic curvature V·d²(bV)/dV² through
//     modified Bessel ratios (cylinder.VD2bVByV); WaveguideApprox uses
//     the Marcuse fit.
//   - WaveguideFD re-solves the fundamental mode at perturbed
//     wavelengths and differentiates n_eff(λ) numerically (gonum
//     diff/fd), a cross-check independent of the analytic identity.
//
// ⚙️ Usage:
//
//	g, err := glass.Find("SiO2")
//	dm, err := dispersion.Material(g, 1.31e-6)
//	dw := dispersion.WaveguideApprox(1.46, 1.45, 4e-6, 1.31e-6)
//
// Near 1.31 µm the two terms cancel in standard silica fiber; the zero
// of Total marks the fiber's zero-dispersion wavelength.
package dispersion
