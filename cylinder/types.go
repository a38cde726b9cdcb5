package cylinder

import (
	"errors"
	"fmt"
	"math"

	"github.com/lumenoptics/owg/basics"
)

// Sentinel errors for cylinder operations.
var (
	// ErrBadFiber indicates fiber parameters outside the physical domain.
	ErrBadFiber = errors.New("cylinder: core index must exceed cladding index, radius and wavelength must be positive")
	// ErrBadV indicates a non-positive normalized frequency.
	ErrBadV = errors.New("cylinder: V must be positive")
	// ErrBadMode indicates a radial mode number below 1.
	ErrBadMode = errors.New("cylinder: radial mode number em must be 1 or greater")
	// ErrBadArgument indicates an out-of-domain scalar argument.
	ErrBadArgument = errors.New("cylinder: argument outside physical domain")
)

// abit offsets search brackets inward from the residual's poles and from
// the b = 0, 1 endpoints.
const abit = 1e-5

// Fiber is an immutable description of a circular step-index fiber:
// core index n1, cladding index n2, core radius a and vacuum wavelength λ₀.
type Fiber struct {
	CoreIndex  float64 // n1
	CladIndex  float64 // n2
	Radius     float64 // a [m]
	Wavelength float64 // λ₀ [m]
}

// Validate reports whether the fiber lies in the physical domain
// n1 > n2 > 0, a > 0, λ₀ > 0.
func (f Fiber) Validate() error {
	if f.CladIndex <= 0 || f.CoreIndex <= f.CladIndex || f.Radius <= 0 || f.Wavelength <= 0 {
		return ErrBadFiber
	}
	return nil
}

// NA returns the numerical aperture √(n1²−n2²).
func (f Fiber) NA() float64 {
	return basics.NumericalAperture(f.CoreIndex, f.CladIndex)
}

// Delta returns the relative refractive index (n1²−n2²)/(2n1²).
func (f Fiber) Delta() float64 {
	return basics.RelativeRefractiveIndex(f.CoreIndex, f.CladIndex)
}

// V returns the normalized frequency 2πa·NA/λ₀.
func (f Fiber) V() float64 {
	return basics.VParameter(f.Radius, f.NA(), f.Wavelength)
}

// Mode identifies the LP mode with azimuthal order Ell and radial order Em.
// Em starts at 1: LP01 is Mode{0, 1}.  Modes order by Ell, then Em.
type Mode struct {
	Ell int
	Em  int
}

// String formats the mode the conventional way, e.g. "LP01".
func (m Mode) String() string {
	return fmt.Sprintf("LP%d%d", m.Ell, m.Em)
}

// Less reports whether m precedes o in the fixed enumeration order.
func (m Mode) Less(o Mode) bool {
	if m.Ell != o.Ell {
		return m.Ell < o.Ell
	}
	return m.Em < o.Em
}

// Solution is the propagation state of one LP mode at one frequency.
// A below-cutoff mode is a valid Solution with Guided=false and zero
// numeric fields; it is never reported as an error.
type Solution struct {
	B      float64 // normalized propagation constant, 0 < b < 1 when guided
	U      float64 // transverse core parameter, V√(1−b)
	W      float64 // transverse cladding decay parameter, V√b
	Guided bool
}

// solutionAt assembles the (b, U, W) triple for a guided root b at
// frequency v; U² + W² = V² by construction.
func solutionAt(v, b float64) Solution {
	return Solution{
		B:      b,
		U:      v * math.Sqrt(1-b),
		W:      v * math.Sqrt(b),
		Guided: true,
	}
}

// EffectiveIndex returns the mode's effective index n_eff = √(n2² + b·NA²),
// which lies strictly between the cladding and core indices for a guided
// mode.  Returns 0 when the solution is not guided.
func (s Solution) EffectiveIndex(f Fiber) float64 {
	if !s.Guided {
		return 0
	}
	n2 := f.CladIndex
	na := f.NA()
	return math.Sqrt(n2*n2 + s.B*na*na)
}
