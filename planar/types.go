// Package planar defines the sentinel errors shared by the slab and
// parabolic mode calculators.
package planar

import "errors"

// Sentinel errors for planar operations.
var (
	// ErrBadV indicates a non-positive normalized frequency.
	ErrBadV = errors.New("planar: V must be positive")
	// ErrBadMode indicates a negative mode number.
	ErrBadMode = errors.New("planar: mode number must be non-negative")
	// ErrBadIndices indicates the film index does not exceed the cladding index.
	ErrBadIndices = errors.New("planar: film index must exceed cladding index, both positive")
	// ErrBadThickness indicates a non-positive film thickness or half-width.
	ErrBadThickness = errors.New("planar: thickness must be positive")
	// ErrBadWavelength indicates a non-positive vacuum wavelength.
	ErrBadWavelength = errors.New("planar: wavelength must be positive")
)

// abit offsets brackets away from the tan/cot poles and interval ends so
// the residual is evaluated only where it is finite.
const abit = 1e-5
