package cylinder

import (
	"math"

	"github.com/lumenoptics/owg/bessel"
)

// MFR approximates the mode field radius, normalized by the core radius,
// of the fundamental mode (Marcuse 1977).  Accurate for V > 1; in the
// multimode range it describes LP01 alone.
func MFR(v float64) float64 {
	return 0.65 + 1.619*math.Pow(v, -1.5) + 2.879*math.Pow(v, -6)
}

// MFD approximates the mode field diameter normalized by the core radius.
func MFD(v float64) float64 {
	return 2 * MFR(v)
}

// PetermannW returns the Petermann-2 radius normalized by the core radius,
// computed from the exact LP01 solution:
//
//	w_P/a = √2·J₁(U) / (W·J₀(U))
func PetermannW(v float64) (float64, error) {
	s, err := LPModeValue(v, 0, 1)
	if err != nil {
		return 0, err
	}
	return math.Sqrt2 * bessel.J(1, s.U) / (s.W * bessel.J(0, s.U)), nil
}

// PetermannWApprox approximates the Petermann-2 radius for single-mode
// fibers, 1.5 < V < 2.5 (Hussey & Martinez 1985).
func PetermannWApprox(v float64) float64 {
	return MFR(v) - 0.016 - 1.567*math.Pow(v, -7)
}
