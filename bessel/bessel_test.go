package bessel_test

import (
	"math"
	"testing"

	"github.com/lumenoptics/owg/bessel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Reference values from Abramowitz & Stegun tables 9.8 and 9.11.
func TestModified_ReferenceValues(t *testing.T) {
	cases := []struct {
		name string
		got  float64
		want float64
		tol  float64
	}{
		{"I0(1)", bessel.I(0, 1), 1.2660658778, 1e-6},
		{"I0(5)", bessel.I(0, 5), 27.2398718236, 1e-4},
		{"I1(1)", bessel.I(1, 1), 0.5651591040, 1e-6},
		{"I2(1)", bessel.I(2, 1), 0.1357476698, 1e-6},
		{"I3(2)", bessel.I(3, 2), 0.2127399592, 1e-6},
		{"K0(1)", bessel.K(0, 1), 0.4210244382, 1e-6},
		{"K0(2.5)", bessel.K(0, 2.5), 0.0623475532, 1e-6},
		{"K1(1)", bessel.K(1, 1), 0.6019072302, 1e-6},
		{"K2(1)", bessel.K(2, 1), 1.6248388986, 1e-5},
		{"K3(2)", bessel.K(3, 2), 0.6473853909, 1e-5},
	}
	for _, c := range cases {
		assert.InDelta(t, c.want, c.got, c.tol, c.name)
	}
}

// TestModified_NegativeOrderAndArgument checks the reflection identities
// and the domain edges of K.
func TestModified_NegativeOrderAndArgument(t *testing.T) {
	assert.Equal(t, bessel.I(2, 1.3), bessel.I(-2, 1.3), "I is even in its order")
	assert.Equal(t, bessel.K(1, 0.7), bessel.K(-1, 0.7), "K is even in its order")

	assert.True(t, math.IsInf(bessel.K(0, 0), 1), "K diverges at the origin")
	assert.True(t, math.IsNaN(bessel.K(0, -1)), "K is undefined for negative arguments")

	assert.Equal(t, 1.0, bessel.I(0, 0))
	assert.Equal(t, 0.0, bessel.I(3, 0))
}

// TestModified_Wronskian verifies I_n(x)K_{n+1}(x) + I_{n+1}(x)K_n(x) = 1/x,
// a cross-check that ties the two fits together at every order.
func TestModified_Wronskian(t *testing.T) {
	for _, x := range []float64{0.3, 1.0, 2.0, 4.0, 9.5} {
		for n := 0; n <= 4; n++ {
			w := bessel.I(n, x)*bessel.K(n+1, x) + bessel.I(n+1, x)*bessel.K(n, x)
			assert.InDelta(t, 1/x, w, 2e-6*(1/x), "Wronskian at n=%d x=%g", n, x)
		}
	}
}

// TestDerivatives_Identities spot-checks the recurrence-based derivatives
// against central finite differences.
func TestDerivatives_Identities(t *testing.T) {
	const h = 1e-6
	x := 1.7

	fd := func(f func(float64) float64) float64 { return (f(x+h) - f(x-h)) / (2 * h) }

	assert.InDelta(t, fd(func(x float64) float64 { return bessel.J(2, x) }), bessel.Jd(2, x), 1e-6)
	assert.InDelta(t, fd(func(x float64) float64 { return bessel.Y(1, x) }), bessel.Yd(1, x), 1e-5)
	assert.InDelta(t, fd(func(x float64) float64 { return bessel.I(1, x) }), bessel.Id(1, x), 1e-4)
	assert.InDelta(t, fd(func(x float64) float64 { return bessel.K(1, x) }), bessel.Kd(1, x), 1e-4)
}

// TestJZeros_Tabulated checks the root table against standard values.
func TestJZeros_Tabulated(t *testing.T) {
	z0 := bessel.JZeros(0, 3)
	require.Len(t, z0, 3)
	assert.InDelta(t, 2.4048255577, z0[0], 1e-9)
	assert.InDelta(t, 5.5200781103, z0[1], 1e-9)
	assert.InDelta(t, 8.6537279129, z0[2], 1e-9)

	z1 := bessel.JZeros(1, 2)
	require.Len(t, z1, 2)
	assert.InDelta(t, 3.8317059702, z1[0], 1e-9)
	assert.InDelta(t, 7.0155866698, z1[1], 1e-9)

	z5 := bessel.JZeros(5, 1)
	require.Len(t, z5, 1)
	assert.InDelta(t, 8.7714838160, z5[0], 1e-9)
}

// TestJZeros_HighOrder ensures the window budget holds for larger orders.
func TestJZeros_HighOrder(t *testing.T) {
	z := bessel.JZeros(20, 4)
	require.Len(t, z, 4)
	for i, zi := range z {
		assert.InDelta(t, 0.0, bessel.J(20, zi), 1e-9, "zero %d must satisfy J=0", i)
		if i > 0 {
			assert.Greater(t, zi, z[i-1], "zeros must be strictly increasing")
		}
	}
}

// TestJZeros_Degenerate covers the nil contracts.
func TestJZeros_Degenerate(t *testing.T) {
	assert.Nil(t, bessel.JZeros(0, 0))
	assert.Nil(t, bessel.JZeros(-1, 3))
}
