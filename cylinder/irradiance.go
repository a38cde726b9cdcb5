package cylinder

import (
	"math"

	"github.com/lumenoptics/owg/bessel"
)

// LPCoreIrradiance returns the power carried in the core divided by the
// core area for a guided mode (Ghatak eq. 8.56); b is the mode's
// normalized propagation constant.
func LPCoreIrradiance(v, b float64, ell int) float64 {
	u := v * math.Sqrt(1 - b)
	jl := bessel.J(ell, u)
	return 1 - bessel.J(ell+1, u)*bessel.J(ell-1, u)/(jl*jl)
}

// LPCladIrradiance returns the power carried in the cladding divided by
// the core area (Ghatak eq. 8.57).
func LPCladIrradiance(v, b float64, ell int) float64 {
	w := v * math.Sqrt(b)
	kl := bessel.K(ell, w)
	return bessel.K(ell+1, w)*bessel.K(ell-1, w)/(kl*kl) - 1
}

// LPTotalIrradiance returns the total guided power (core plus cladding)
// divided by the core area (Ghatak eq. 8.58).
func LPTotalIrradiance(v, b float64, ell int) float64 {
	u := v * math.Sqrt(1 - b)
	w := v * math.Sqrt(b)
	kl := bessel.K(ell, w)
	return v * v / (u * u) * bessel.K(ell+1, w) * bessel.K(ell-1, w) / (kl * kl)
}

// LPRadialField returns the normalized transverse field of a guided mode
// at radius r/a: Bessel J inside the core, decaying Bessel K outside,
// continuous at the core boundary.  Negative radii mirror positive ones.
func LPRadialField(v, b float64, ell int, rOverA float64) float64 {
	u := v * math.Sqrt(1 - b)
	w := v * math.Sqrt(b)
	r := math.Abs(rOverA)

	var f float64
	if r < 1 {
		f = bessel.J(ell, u*r) / bessel.J(ell, u)
	} else {
		f = bessel.K(ell, w*r) / bessel.K(ell, w)
	}
	return f / math.Sqrt(LPTotalIrradiance(v, b, ell))
}

// LPRadialIrradiance returns the squared field at r/a, normalized so the
// integral over the cross-section equals the core area:
//
//	2·∫ I(ρ)·ρ dρ = 1,  ρ = r/a over [0, ∞)
func LPRadialIrradiance(v, b float64, ell int, rOverA float64) float64 {
	f := LPRadialField(v, b, ell, rOverA)
	return f * f
}

// GaussianEnvelopeOmega returns the 1/e field radius Ω/a of the Gaussian
// envelope that best matches LP01 at frequency V (Ghatak §8.5).
func GaussianEnvelopeOmega(v float64) (float64, error) {
	s, err := LPModeValue(v, 0, 1)
	if err != nil {
		return 0, err
	}
	return bessel.J(0, s.U) * v / s.U * bessel.K(1, s.W) / bessel.K(0, s.W), nil
}

// GaussianRadialIrradiance returns the Gaussian-envelope approximation to
// the LP01 irradiance at r/a, normalized like LPRadialIrradiance.
func GaussianRadialIrradiance(v, rOverA float64) (float64, error) {
	omega, err := GaussianEnvelopeOmega(v)
	if err != nil {
		return 0, err
	}
	return 1 / (omega * omega) * math.Exp(-rOverA*rOverA/(omega*omega)), nil
}
