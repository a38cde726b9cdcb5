package cylinder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenoptics/owg/cylinder"
)

func TestVD2bVByV_CloseToMarcuseApprox(t *testing.T) {
	// Marcuse's fit is good to about 1% for 1.4 < V < 2.4.
	for _, v := range []float64{1.6, 2.0, 2.4} {
		exact, err := cylinder.VD2bVByV(v, 0)
		require.NoError(t, err)
		assert.InEpsilon(t, cylinder.VD2bVByVApprox(v), exact, 0.05, "V=%g", v)
	}
}

func TestVD2bVByV_BelowCutoffIsZero(t *testing.T) {
	// No ℓ=5 mode is guided at V=2; the curvature contribution is zero.
	val, err := cylinder.VD2bVByV(2, 5)
	require.NoError(t, err)
	assert.Zero(t, val)
}

func TestVD2bVByV_PositiveInSingleModeRange(t *testing.T) {
	for _, v := range []float64{1.5, 2.0, 2.4} {
		exact, err := cylinder.VD2bVByV(v, 0)
		require.NoError(t, err)
		assert.Greater(t, exact, 0.0, "V=%g", v)
	}
}

func TestVD2bVByV_Errors(t *testing.T) {
	_, err := cylinder.VD2bVByV(0, 0)
	assert.ErrorIs(t, err, cylinder.ErrBadV)
}
