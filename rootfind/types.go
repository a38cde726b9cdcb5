// Package rootfind defines the options and sentinel errors shared by the
// bracketing and refinement routines.
package rootfind

import "errors"

// Sentinel errors for rootfind operations.
var (
	// ErrBadInterval indicates lo >= hi or a non-finite endpoint.
	ErrBadInterval = errors.New("rootfind: interval must satisfy lo < hi with finite endpoints")
	// ErrBadOptions indicates a non-positive tolerance, iteration cap or sample count.
	ErrBadOptions = errors.New("rootfind: options must have positive AbsTol, MaxIter and Samples")
	// ErrNoBracket indicates the function does not change sign over the interval.
	ErrNoBracket = errors.New("rootfind: no sign change across interval")
	// ErrNoConvergence indicates the refinement loop hit its iteration cap
	// before meeting tolerance.
	ErrNoConvergence = errors.New("rootfind: iteration cap exceeded before reaching tolerance")
)

// Func is a one-dimensional real function.  It may return NaN or ±Inf near
// poles; the scanning routines treat such samples as unusable, not as data.
type Func func(x float64) float64

// Options configures bracketing and refinement.
//
// Fields:
//   - AbsTol  — absolute tolerance on the trial variable at which a bracket
//     is considered resolved.
//   - MaxIter — hard cap on refinement iterations; exceeding it yields
//     ErrNoConvergence rather than an inaccurate root.
//   - Samples — number of evaluation points per scanned interval.
type Options struct {
	AbsTol  float64
	MaxIter int
	Samples int
}

// DefaultOptions returns the tolerances used throughout the library:
// AbsTol=1e-6 (normalized trial variables live in [0,1] or [0,V]),
// MaxIter=100, Samples=64.
func DefaultOptions() Options {
	return Options{
		AbsTol:  1e-6,
		MaxIter: 100,
		Samples: 64,
	}
}

// validate reports ErrBadOptions for unusable settings.
func (o Options) validate() error {
	if o.AbsTol <= 0 || o.MaxIter <= 0 || o.Samples < 2 {
		return ErrBadOptions
	}
	return nil
}
