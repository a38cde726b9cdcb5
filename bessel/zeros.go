package bessel

import (
	"math"

	"github.com/lumenoptics/owg/rootfind"
)

// JZeros returns the first k positive zeros of J_n in increasing order.
//
// The zeros partition the domain of the LP characteristic equation: between
// two consecutive zeros of J_ℓ the residual has at most one root, so the
// mode solvers lean on this table instead of hunting for poles blindly.
//
// J_n oscillates with asymptotic period π, and its first positive zero lies
// above n, so the zeros are located by scanning windows of width π starting
// just above n and refining every sign change with Brent to 1e-12.  All
// scans are bounded; k <= 0 or n < 0 yields nil.
func JZeros(n, k int) []float64 {
	if k <= 0 || n < 0 {
		return nil
	}

	opts := rootfind.DefaultOptions()
	opts.AbsTol = 1e-12

	f := func(x float64) float64 { return math.Jn(n, x) }

	zeros := make([]float64, 0, k)
	lo := float64(n) + 1e-9
	// The first zero sits within ~1.86·n^(1/3) of n and early spacings for
	// large orders stretch to ~1.4·n^(1/3), so budget windows accordingly.
	maxWindows := 2*k + int((1.4*float64(k)+2)*math.Cbrt(float64(n)+1)) + 4
	for w := 0; w < maxWindows && len(zeros) < k; w++ {
		hi := lo + math.Pi
		brs, err := rootfind.Brackets(f, lo, hi, 64)
		if err == nil {
			for _, br := range brs {
				if len(zeros) == k {
					break
				}
				if br[0] == br[1] {
					zeros = append(zeros, br[0])
					continue
				}
				z, err := rootfind.Brent(f, br[0], br[1], opts)
				if err == nil {
					zeros = append(zeros, z)
				}
			}
		}
		lo = hi
	}

	return zeros
}
