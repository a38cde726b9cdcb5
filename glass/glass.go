package glass

import (
	"errors"
	"math"
	"strings"
)

// Sentinel errors for glass lookups and evaluations.
var (
	// ErrUnknownGlass indicates no catalog entry matches the requested name.
	ErrUnknownGlass = errors.New("glass: no catalog entry matches name")
	// ErrWavelengthRange indicates a wavelength outside the validated band
	// of the Sellmeier fits.
	ErrWavelengthRange = errors.New("glass: wavelength outside validated band [210nm, 6.7µm]")
)

// Validated wavelength band of the catalog fits, in meters.
const (
	MinWavelength = 210e-9
	MaxWavelength = 6.7e-6
)

// Glass holds a three-term Sellmeier fit:
//
//	n²(λ) = 1 + Σ_i B_i·λ² / (λ² − C_i)
//
// with λ in microns and C_i in microns².  A Glass is an immutable value;
// evaluation methods never mutate it.
type Glass struct {
	Name string
	C    [3]float64 // resonance wavelengths squared [µm²]
	B    [3]float64 // oscillator strengths [—]
}

// Index returns the refractive index at vacuum wavelength lambda0 [m].
// Fails with ErrWavelengthRange outside the validated band.
func (g Glass) Index(lambda0 float64) (float64, error) {
	if err := checkBand(lambda0); err != nil {
		return 0, err
	}
	return g.index(lambda0), nil
}

// IndexD1 returns dn/dλ at lambda0 [1/m].
func (g Glass) IndexD1(lambda0 float64) (float64, error) {
	if err := checkBand(lambda0); err != nil {
		return 0, err
	}
	return g.indexD1(lambda0), nil
}

// IndexD2 returns d²n/dλ² at lambda0 [1/m²].
func (g Glass) IndexD2(lambda0 float64) (float64, error) {
	if err := checkBand(lambda0); err != nil {
		return 0, err
	}
	return g.indexD2(lambda0), nil
}

// GroupIndex returns n_g = n − λ·dn/dλ at lambda0.
func (g Glass) GroupIndex(lambda0 float64) (float64, error) {
	if err := checkBand(lambda0); err != nil {
		return 0, err
	}
	return g.index(lambda0) - lambda0*g.indexD1(lambda0), nil
}

func checkBand(lambda0 float64) error {
	if lambda0 < MinWavelength || lambda0 > MaxWavelength || math.IsNaN(lambda0) {
		return ErrWavelengthRange
	}
	return nil
}

func (g Glass) index(lambda0 float64) float64 {
	lam2 := lambda0 * lambda0 * 1e12 // µm²
	nsq := 1.0
	for i := 0; i < 3; i++ {
		nsq += g.B[i] * lam2 / (lam2 - g.C[i])
	}
	return math.Sqrt(nsq)
}

func (g Glass) indexD1(lambda0 float64) float64 {
	n := g.index(lambda0)
	lam := lambda0 * 1e6 // µm
	lam2 := lam * lam

	dy := 0.0
	for i := 0; i < 3; i++ {
		d := lam2 - g.C[i]
		dy -= g.B[i] * g.C[i] / (d * d) // 1/µm²
	}
	return dy * lam / n * 1e6 // 1/m
}

func (g Glass) indexD2(lambda0 float64) float64 {
	n := g.index(lambda0)
	lam := lambda0 * 1e6 // µm
	lam2 := lam * lam

	var s1, s2 float64
	for i := 0; i < 3; i++ {
		d := lam2 - g.C[i]
		s1 += g.B[i] * g.C[i] / (d * d)                      // 1/µm²
		s2 += g.B[i] * g.C[i] * (3*lam2 + g.C[i]) / (d*d*d) // 1/µm²
	}
	return (s2/n - lam2*s1*s1/(n*n*n)) * 1e12 // 1/m²
}

// Find returns the first catalog entry whose name contains the query,
// case-insensitively.  Fails with ErrUnknownGlass when nothing matches.
func Find(name string) (Glass, error) {
	target := strings.ToUpper(name)
	for _, g := range catalog {
		if strings.Contains(strings.ToUpper(g.Name), target) {
			return g, nil
		}
	}
	return Glass{}, ErrUnknownGlass
}

// Names lists every glass in the catalog, in catalog order.
func Names() []string {
	out := make([]string, len(catalog))
	for i, g := range catalog {
		out[i] = g.Name
	}
	return out
}

// Doped returns Sellmeier coefficients for SiO₂ doped with molar fraction x
// of GeO₂ (0 ≤ x ≤ 1), linearly interpolating strengths and resonance
// wavelengths between the two pure glasses (Fleming 1978).
func Doped(x float64) Glass {
	sa := [3]float64{0.6961663, 0.4079426, 0.8974794}
	sl := [3]float64{0.0684043, 0.1162414, 9.896161}
	ga := [3]float64{0.80686642, 0.71815848, 0.85416831}
	gl := [3]float64{0.068972606, 0.15396605, 11.841931}

	var g Glass
	g.Name = "SiO2:GeO2 mixture"
	for i := 0; i < 3; i++ {
		l := sl[i] + x*(gl[i]-sl[i])
		g.C[i] = l * l
		g.B[i] = math.Abs(sa[i] + x*(ga[i]-sa[i]))
	}
	return g
}

// AirIndex returns the refractive index of air at atmospheric pressure for
// vacuum wavelength lambda0 [m] and temperature [°C] (Smith, Modern Optical
// Engineering).
func AirIndex(lambda0, temperature float64) float64 {
	nu := 1 / (lambda0 * 1e6)
	n15 := 1e-8 * (8342.1 + 2406030/(130-nu*nu) + 15996/(38.9-nu*nu))
	if temperature == 15 {
		return 1 + n15
	}
	return 1 + 1.0549*n15/(1+0.00366*temperature)
}
