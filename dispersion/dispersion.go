package dispersion

import (
	"errors"
	"math"

	"github.com/lumenoptics/owg/basics"
	"github.com/lumenoptics/owg/cylinder"
	"github.com/lumenoptics/owg/glass"
)

// speedOfLight in vacuum [m/s].
const speedOfLight = 2.997e8

// ErrBadArgument indicates an out-of-domain fiber or wavelength argument.
var ErrBadArgument = errors.New("dispersion: argument outside physical domain")

// Material returns the material dispersion of a glass at vacuum
// wavelength λ₀ in s/m²:
//
//	D_m = −(λ₀/c)·d²n/dλ²
//
// Multiply by 1e6 for ps/(km·nm).
func Material(g glass.Glass, lambda0 float64) (float64, error) {
	d2, err := g.IndexD2(lambda0)
	if err != nil {
		return 0, err
	}
	return -lambda0 * d2 / speedOfLight, nil
}

// Waveguide returns the waveguide dispersion of the fundamental mode of
// a step-index fiber in s/m², using the analytic b(V) curvature:
//
//	D_w = −(n2·Δ)/(c·λ₀)·V·d²(bV)/dV²
func Waveguide(n1, n2, a, lambda0 float64) (float64, error) {
	if err := checkFiber(n1, n2, a, lambda0); err != nil {
		return 0, err
	}
	delta := basics.RelativeRefractiveIndex(n1, n2)
	v := basics.VParameter(a, basics.NumericalAperture(n1, n2), lambda0)
	curv, err := cylinder.VD2bVByV(v, 0)
	if err != nil {
		return 0, err
	}
	return -n2 * delta / (speedOfLight * lambda0) * curv, nil
}

// WaveguideApprox is Waveguide with the Marcuse fit for the curvature,
// valid for 1.4 < V < 2.4.
func WaveguideApprox(n1, n2, a, lambda0 float64) float64 {
	delta := basics.RelativeRefractiveIndex(n1, n2)
	v := basics.VParameter(a, basics.NumericalAperture(n1, n2), lambda0)
	return -n2 * delta / (speedOfLight * lambda0) * cylinder.VD2bVByVApprox(v)
}

// WaveguideDelta returns the waveguide dispersion of a fiber whose core
// is the given glass and whose cladding is depressed by the relative
// index Δ: n1 = n(λ₀), n2 = n1·(1−Δ).
func WaveguideDelta(g glass.Glass, delta, a, lambda0 float64) (float64, error) {
	n1, err := g.Index(lambda0)
	if err != nil {
		return 0, err
	}
	return Waveguide(n1, n1*(1-delta), a, lambda0)
}

// Total returns the chromatic dispersion of a fiber made from the given
// glass: material plus waveguide, in s/m².
func Total(g glass.Glass, delta, a, lambda0 float64) (float64, error) {
	dm, err := Material(g, lambda0)
	if err != nil {
		return 0, err
	}
	dw, err := WaveguideDelta(g, delta, a, lambda0)
	if err != nil {
		return 0, err
	}
	return dm + dw, nil
}

func checkFiber(n1, n2, a, lambda0 float64) error {
	if n2 <= 0 || n1 <= n2 || a <= 0 || lambda0 <= 0 || math.IsNaN(lambda0) {
		return ErrBadArgument
	}
	return nil
}
