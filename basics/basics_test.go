package basics_test

import (
	"math"
	"testing"

	"github.com/lumenoptics/owg/basics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNumericalAperture_Consistency ties NA, Delta and the Delta-based NA
// together on a standard telecom fiber.
func TestNumericalAperture_Consistency(t *testing.T) {
	n1, n2 := 1.46, 1.45

	na := basics.NumericalAperture(n1, n2)
	assert.InDelta(t, 0.17059, na, 1e-4)

	delta := basics.RelativeRefractiveIndex(n1, n2)
	assert.InDelta(t, na, basics.NumericalApertureFromDelta(n1, delta), 1e-12,
		"NA from Delta must agree with NA from indices")
}

// TestVParameter_ConcreteScenario reproduces a single-mode telecom fiber:
// n1=1.46, n2=1.45, a=3.3 µm, λ=1.55 µm gives V just below the LP11 cutoff.
func TestVParameter_ConcreteScenario(t *testing.T) {
	na := basics.NumericalAperture(1.46, 1.45)
	v := basics.VParameter(3.3e-6, na, 1.55e-6)

	assert.InDelta(t, 2.28, v, 0.01)
	assert.Less(t, v, 2.405, "fiber must be single mode")
}

// TestCutoffWavelength_StepAndGraded checks the Bessel-zero route and the
// graded-index correction factor.
func TestCutoffWavelength_StepAndGraded(t *testing.T) {
	na := basics.NumericalAperture(1.46, 1.45)
	a := 4.5e-6

	// Fundamental LP11 cutoff (ell=0 family boundary): Vc = 2.404826.
	lc, err := basics.CutoffWavelength(a, na, 0, math.Inf(1))
	require.NoError(t, err)
	assert.InDelta(t, 2*math.Pi*a*na/2.4048255577, lc, 1e-12)

	// Parabolic profile raises Vc by sqrt(2), shortening the cutoff.
	lcg, err := basics.CutoffWavelength(a, na, 0, 2)
	require.NoError(t, err)
	assert.InDelta(t, lc/math.Sqrt2, lcg, 1e-12)

	// Negative ell names the degenerate mirror family, never a panic.
	lc1, err := basics.CutoffWavelength(a, na, 1, math.Inf(1))
	require.NoError(t, err)
	lcm1, err := basics.CutoffWavelength(a, na, -1, math.Inf(1))
	require.NoError(t, err)
	assert.Equal(t, lc1, lcm1)

	_, err = basics.CutoffWavelength(0, na, 0, math.Inf(1))
	assert.ErrorIs(t, err, basics.ErrBadGeometry)
}

// TestAngles verifies acceptance and critical angles on known geometry.
func TestAngles(t *testing.T) {
	assert.InDelta(t, math.Asin(0.2), basics.AcceptanceAngle(0.2, 1), 1e-12)
	assert.InDelta(t, math.Asin(1.45/1.46), basics.CriticalAngle(1.46, 1.45), 1e-12)
}

// TestESI_Reductions checks the equivalent-step-index identities for a
// parabolic (q=2) profile.
func TestESI_Reductions(t *testing.T) {
	assert.InDelta(t, 8.0/9.0*0.01, basics.ESIDelta(0.01, 2), 1e-12)
	assert.InDelta(t, 25e-6*3.0/4.0, basics.ESIRadius(25e-6, 2), 1e-18)
	assert.InDelta(t, 5.0/math.Sqrt2, basics.ESIVParameter(5, 2), 1e-12)
}

// TestGradedNA_FallsToZeroAtCore edge: the local NA vanishes at r=a.
func TestGradedNA_FallsToZeroAtCore(t *testing.T) {
	na0 := basics.NumericalApertureGradedIndex(1.48, 1.46, 2, 0)
	naEdge := basics.NumericalApertureGradedIndex(1.48, 1.46, 2, 1)

	assert.InDelta(t, basics.NumericalAperture(1.48, 1.46), na0, 1e-12)
	assert.InDelta(t, 0, naEdge, 1e-12)
}

// TestFresnel_NormalIncidenceAndBrewster checks the classic identities:
// R(0) = ((m-1)/(m+1))² for both polarizations, and RPar → 0 at Brewster.
func TestFresnel_NormalIncidenceAndBrewster(t *testing.T) {
	m := complex(1.5, 0)

	want := math.Pow((1.5-1)/(1.5+1), 2)
	assert.InDelta(t, want, basics.RPar(m, 0), 1e-12)
	assert.InDelta(t, want, basics.RPer(m, 0), 1e-12)
	assert.InDelta(t, want, basics.RUnpolarized(m, 0), 1e-12)

	brewster := math.Atan(1.5)
	assert.InDelta(t, 0, basics.RPar(m, brewster), 1e-12)
	assert.Greater(t, basics.RPer(m, brewster), 0.0)
}
