package cylinder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenoptics/owg/cylinder"
)

func TestMFR_ShrinksTowardCore(t *testing.T) {
	// The spot tightens as guidance strengthens.
	prev := cylinder.MFR(1.2)
	for _, v := range []float64{1.6, 2.0, 2.4} {
		cur := cylinder.MFR(v)
		assert.Less(t, cur, prev, "V=%g", v)
		prev = cur
	}
	// Around the single-mode boundary the spot is a bit wider than the core.
	assert.InDelta(t, 1.1, cylinder.MFR(2.4), 0.02)
}

func TestMFD_TwiceMFR(t *testing.T) {
	assert.Equal(t, 2*cylinder.MFR(2.2), cylinder.MFD(2.2))
}

func TestPetermannW_CloseToApprox(t *testing.T) {
	// Hussey & Martinez quote percent-level accuracy over 1.5 < V < 2.5.
	for _, v := range []float64{1.6, 2.0, 2.4} {
		exact, err := cylinder.PetermannW(v)
		require.NoError(t, err)
		assert.InEpsilon(t, exact, cylinder.PetermannWApprox(v), 0.08, "V=%g", v)
	}
}

func TestPetermannW_SmallerThanMarcuseRadius(t *testing.T) {
	for _, v := range []float64{1.8, 2.2} {
		exact, err := cylinder.PetermannW(v)
		require.NoError(t, err)
		assert.Less(t, exact, cylinder.MFR(v), "V=%g", v)
	}
}
