package planar_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"

	"github.com/lumenoptics/owg/planar"
)

const (
	pLambda = 1.0e-6
	pN1     = 1.5
	pHalfW  = 5.0e-6
	pV      = 50.0
)

func TestParabolicPropagationConstant_EquallySpacedSquares(t *testing.T) {
	// The harmonic-oscillator ladder: β_m² drops by exactly 2γ² per mode.
	gamma := math.Sqrt(pV) / pHalfW
	var prev float64
	for m := 0; m <= 4; m++ {
		beta, guided, err := planar.ParabolicPropagationConstant(m, pLambda, pN1, pHalfW, pV)
		require.NoError(t, err)
		require.True(t, guided, "mode %d", m)
		if m > 0 {
			assert.InEpsilon(t, 2*gamma*gamma, prev*prev-beta*beta, 1e-9, "mode %d", m)
		}
		prev = beta
	}
}

func TestParabolicPropagationConstant_BoundedByPlaneWave(t *testing.T) {
	k := 2 * math.Pi * pN1 / pLambda
	beta, guided, err := planar.ParabolicPropagationConstant(0, pLambda, pN1, pHalfW, pV)
	require.NoError(t, err)
	require.True(t, guided)
	assert.Less(t, beta, k)
}

func TestParabolicPropagationConstant_UnboundMode(t *testing.T) {
	beta, guided, err := planar.ParabolicPropagationConstant(100000, pLambda, pN1, pHalfW, pV)
	require.NoError(t, err)
	assert.False(t, guided)
	assert.Zero(t, beta)
}

func TestParabolicPropagationConstant_Errors(t *testing.T) {
	_, _, err := planar.ParabolicPropagationConstant(-1, pLambda, pN1, pHalfW, pV)
	assert.ErrorIs(t, err, planar.ErrBadMode)

	_, _, err = planar.ParabolicPropagationConstant(0, 0, pN1, pHalfW, pV)
	assert.ErrorIs(t, err, planar.ErrBadWavelength)

	_, _, err = planar.ParabolicPropagationConstant(0, pLambda, pN1, 0, pV)
	assert.ErrorIs(t, err, planar.ErrBadThickness)

	_, _, err = planar.ParabolicPropagationConstant(0, pLambda, pN1, pHalfW, -1)
	assert.ErrorIs(t, err, planar.ErrBadV)
}

func TestParabolicPropagationConstants_StopsAtFirstUnbound(t *testing.T) {
	betas, err := planar.ParabolicPropagationConstants(pLambda, pN1, pHalfW, pV)
	require.NoError(t, err)
	require.NotEmpty(t, betas)

	// One past the end must be unbound; the last listed must be bound.
	_, guided, err := planar.ParabolicPropagationConstant(len(betas), pLambda, pN1, pHalfW, pV)
	require.NoError(t, err)
	assert.False(t, guided)

	for m := 1; m < len(betas); m++ {
		assert.Less(t, betas[m], betas[m-1], "mode %d", m)
	}
}

func TestTEParabolicField_Normalized(t *testing.T) {
	const delta = 0.01
	xs := make([]float64, 4001)
	floats.Span(xs, -25e-6, 25e-6)

	for m := 0; m <= 2; m++ {
		ey, err := planar.TEParabolicField(m, pLambda, pN1, delta, pHalfW, xs)
		require.NoError(t, err, "mode %d", m)
		require.Len(t, ey, len(xs))

		e2 := make([]float64, len(ey))
		for i, e := range ey {
			e2[i] = e * e
		}
		assert.InDelta(t, 1, integrate.Trapezoidal(xs, e2), 1e-3, "mode %d", m)
	}
}

func TestTEParabolicField_Parity(t *testing.T) {
	const delta = 0.01
	xs := []float64{-3e-6, 0, 3e-6}

	even, err := planar.TEParabolicField(0, pLambda, pN1, delta, pHalfW, xs)
	require.NoError(t, err)
	assert.InDelta(t, even[0], even[2], 1e-15)

	odd, err := planar.TEParabolicField(1, pLambda, pN1, delta, pHalfW, xs)
	require.NoError(t, err)
	assert.InDelta(t, -odd[2], odd[0], 1e-15)
	assert.Zero(t, odd[1])
}

func TestTEParabolicField_Errors(t *testing.T) {
	_, err := planar.TEParabolicField(0, pLambda, pN1, 0, pHalfW, []float64{0})
	assert.ErrorIs(t, err, planar.ErrBadIndices)

	_, err = planar.TEParabolicField(-1, pLambda, pN1, 0.01, pHalfW, []float64{0})
	assert.ErrorIs(t, err, planar.ErrBadMode)
}
