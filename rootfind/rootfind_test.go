package rootfind_test

import (
	"math"
	"testing"

	"github.com/lumenoptics/owg/rootfind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBrent_SquareRootOfTwo verifies basic convergence on a smooth function.
func TestBrent_SquareRootOfTwo(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }

	root, err := rootfind.Brent(f, 0, 2, rootfind.DefaultOptions())
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, root, 1e-6, "root of x^2-2 on [0,2] must be sqrt(2)")
}

// TestBrent_TightTolerance verifies the root honors a tighter AbsTol.
func TestBrent_TightTolerance(t *testing.T) {
	f := math.Cos

	opts := rootfind.DefaultOptions()
	opts.AbsTol = 1e-12
	root, err := rootfind.Brent(f, 1, 2, opts)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/2, root, 1e-10, "cos has its first positive root at pi/2")
}

// TestBrent_NoBracket ensures a same-sign interval errors with ErrNoBracket.
func TestBrent_NoBracket(t *testing.T) {
	f := func(x float64) float64 { return x*x + 1 }

	_, err := rootfind.Brent(f, -1, 1, rootfind.DefaultOptions())
	assert.ErrorIs(t, err, rootfind.ErrNoBracket, "positive-definite function must not bracket")
}

// TestBrent_BadInterval ensures lo >= hi is rejected.
func TestBrent_BadInterval(t *testing.T) {
	f := func(x float64) float64 { return x }

	_, err := rootfind.Brent(f, 2, 1, rootfind.DefaultOptions())
	assert.ErrorIs(t, err, rootfind.ErrBadInterval)
}

// TestBrent_BadOptions ensures unusable tolerances are rejected.
func TestBrent_BadOptions(t *testing.T) {
	f := func(x float64) float64 { return x }

	_, err := rootfind.Brent(f, -1, 1, rootfind.Options{AbsTol: 0, MaxIter: 10, Samples: 8})
	assert.ErrorIs(t, err, rootfind.ErrBadOptions)
}

// TestBrent_IterationCap ensures the refinement loop is bounded and reports
// ErrNoConvergence instead of silently returning an inaccurate root.
func TestBrent_IterationCap(t *testing.T) {
	// Nearly a step function: interpolated steps degenerate to bisection,
	// so two iterations cannot resolve the crossing at 0.3.
	f := func(x float64) float64 { return math.Tanh(1e6 * (x - 0.3)) }

	opts := rootfind.Options{AbsTol: 1e-300, MaxIter: 2, Samples: 8}
	_, err := rootfind.Brent(f, -1, 3, opts)
	assert.ErrorIs(t, err, rootfind.ErrNoConvergence, "2 iterations cannot meet 1e-300")
}

// TestBrent_EndpointRoot verifies exact roots at the endpoints short-circuit.
func TestBrent_EndpointRoot(t *testing.T) {
	f := func(x float64) float64 { return x }

	root, err := rootfind.Brent(f, 0, 1, rootfind.DefaultOptions())
	require.NoError(t, err)
	assert.Zero(t, root)
}

// TestBrent_Idempotent verifies bit-identical results on repeated calls.
func TestBrent_Idempotent(t *testing.T) {
	f := func(x float64) float64 { return math.Tan(x) - 1 }

	r1, err1 := rootfind.Brent(f, 0, 1.5, rootfind.DefaultOptions())
	r2, err2 := rootfind.Brent(f, 0, 1.5, rootfind.DefaultOptions())
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, r1, r2, "no hidden state may drift between calls")
}

// TestBrackets_OrderedRoots verifies sin brackets its roots in order.
func TestBrackets_OrderedRoots(t *testing.T) {
	br, err := rootfind.Brackets(math.Sin, 0.5, 10, 200)
	require.NoError(t, err)
	require.Len(t, br, 3, "sin has roots at pi, 2pi, 3pi inside (0.5,10)")

	want := []float64{math.Pi, 2 * math.Pi, 3 * math.Pi}
	for i, b := range br {
		assert.LessOrEqual(t, b[0], want[i])
		assert.GreaterOrEqual(t, b[1], want[i])
	}
}

// TestBrackets_SkipsPoles ensures a pole is not mistaken for a root.
// tan changes sign across its pole at pi/2, but the sample there is huge,
// not NaN; a function returning NaN near the pole must not produce a
// bracket at the pole.
func TestBrackets_SkipsPoles(t *testing.T) {
	f := func(x float64) float64 {
		v := math.Tan(x)
		if math.Abs(v) > 1e6 {
			return math.NaN() // pole neighborhood
		}
		return v - 0.5
	}

	br, err := rootfind.Brackets(f, 0, 3, 300)
	require.NoError(t, err)
	// One genuine root of tan(x)=0.5 in (0,3): x = atan(0.5).
	// The sign change across the skipped pole at pi/2 still pairs the last
	// usable sample before the pole with the first after it; that interval
	// contains no root of tan(x)-0.5 on its branch, so the solver must be
	// the judge — but the scan must at least find the genuine crossing.
	require.NotEmpty(t, br)
	assert.LessOrEqual(t, br[0][0], math.Atan(0.5))
	assert.GreaterOrEqual(t, br[0][1], math.Atan(0.5))
}

// TestBrackets_ZeroAtFirstSample reports an exact zero even when it lands
// on the very first sample, before any sign history exists.
func TestBrackets_ZeroAtFirstSample(t *testing.T) {
	f := func(x float64) float64 { return x }

	br, err := rootfind.Brackets(f, 0, 1, 10)
	require.NoError(t, err)
	require.Len(t, br, 1)
	assert.Equal(t, [2]float64{0, 0}, br[0], "degenerate bracket at the zero")
}

// TestBrackets_AllNaN yields no brackets at all.
func TestBrackets_AllNaN(t *testing.T) {
	f := func(float64) float64 { return math.NaN() }

	br, err := rootfind.Brackets(f, 0, 1, 50)
	require.NoError(t, err)
	assert.Empty(t, br, "unusable samples must never become brackets")
}

// TestFirstBracket_Expands verifies the expanding scan finds the first
// sign change and reports ErrNoBracket when there is none.
func TestFirstBracket_Expands(t *testing.T) {
	f := func(x float64) float64 { return x - 2.5 }

	hi, err := rootfind.FirstBracket(f, 0, 0.5, 100)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, hi, 1e-12, "first step past 2.5 is 3.0")

	_, err = rootfind.FirstBracket(func(x float64) float64 { return 1 + x*x }, 0, 0.5, 100)
	assert.ErrorIs(t, err, rootfind.ErrNoBracket)
}
