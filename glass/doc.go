// Package glass is the refractive-index provider: given a named optical
// glass and a vacuum wavelength it returns the real refractive index and
// its first two wavelength derivatives, all from three-term Sellmeier fits.
//
// 🚀 What is glass?
//
//	A catalog of Sellmeier coefficients for glasses used in optical fibers
//	(SiO₂, GeO₂, doped silicas, fluoride glasses, Schott catalog entries,
//	crystalline windows) plus the evaluation routines:
//	  • Index      — n(λ) from the Sellmeier equation
//	  • IndexD1    — dn/dλ           [1/m]
//	  • IndexD2    — d²n/dλ²         [1/m²]
//	  • GroupIndex — n − λ·dn/dλ
//	  • Doped      — interpolated SiO₂:GeO₂ mixture coefficients
//	  • AirIndex   — index of air at atmospheric pressure
//
// The fits are validated over [210 nm, 6.7 µm]; evaluation outside that
// band fails with ErrWavelengthRange rather than extrapolating silently.
//
// ⚙️ Usage:
//
//	g, err := glass.Find("SiO2")
//	n, err := g.Index(1.55e-6) // ≈ 1.4440
//
// Coefficients follow Fleming (1978) and the Schott catalog; see Ghatak &
// Thyagarajan ch. 6 for the dispersion background.
package glass
