package cylinder

import (
	"math"

	"github.com/lumenoptics/owg/bessel"
)

// TransverseMisalignmentLossDB returns the splice loss in dB when two
// fibers with mode field radii w1 and w2 are offset laterally by u
// (Ghatak eq. 8.69).
func TransverseMisalignmentLossDB(w1, w2, u float64) float64 {
	sq := w1*w1 + w2*w2
	loss := math.Pow(2*w1*w2/sq, 2) * math.Exp(-2*u*u/sq)
	return -10 * math.Log10(loss)
}

// AngularMisalignmentLossDB returns the splice loss in dB for an angular
// tilt theta (radians) between fiber ends joined through a medium of
// index n (Ghatak eq. 8.75); w is the mode field radius.
func AngularMisalignmentLossDB(n, w, theta, lambda0 float64) float64 {
	x := math.Pi * w * theta * n / lambda0
	return 4.34 * x * x
}

// LongitudinalMisalignmentLossDB returns the splice loss in dB for an
// axial gap d between fiber ends (Ghatak eq. 8.81).
func LongitudinalMisalignmentLossDB(n1, w, d, lambda0 float64) float64 {
	dhat := d * lambda0 / (2 * math.Pi * n1 * w * w)
	return 10 * math.Log10(1+dhat*dhat)
}

// BendingLossDB returns the pure bend loss in dB/m of the fundamental
// mode for a fiber of core index n1, relative index Δ and core radius a
// bent to radius of curvature rc (Ghatak eq. 10.29).
func BendingLossDB(n1, delta, a, rc, lambda0 float64) (float64, error) {
	if n1 <= 0 || delta <= 0 || a <= 0 || rc <= 0 || lambda0 <= 0 {
		return 0, ErrBadArgument
	}
	k0 := 2 * math.Pi / lambda0
	v := k0 * a * n1 * math.Sqrt(2*delta)
	s, err := LPModeValue(v, 0, 1)
	if err != nil {
		return 0, err
	}
	u, w := s.U, s.W

	val := 4.343 * math.Sqrt(math.Pi/4/a/rc)
	val *= math.Pow(u/(v*bessel.K(1, w)), 2)
	val *= math.Pow(w, -1.5)
	val *= math.Exp(-2 * w * w * w * rc / (3 * k0 * k0 * a * a * a * n1 * n1))
	return val, nil
}

// BendingLossDBSweep evaluates BendingLossDB over many core radii; the
// output mirrors the input shape.
func BendingLossDBSweep(n1, delta float64, radii []float64, rc, lambda0 float64) ([]float64, error) {
	out := make([]float64, len(radii))
	for i, a := range radii {
		alpha, err := BendingLossDB(n1, delta, a, rc, lambda0)
		if err != nil {
			return nil, err
		}
		out[i] = alpha
	}
	return out, nil
}
