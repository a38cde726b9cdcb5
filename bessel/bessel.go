package bessel

import "math"

// J returns the Bessel function of the first kind J_n(x).
// Negative orders follow J_{-n}(x) = (-1)^n J_n(x).
func J(n int, x float64) float64 {
	return math.Jn(n, x)
}

// Y returns the Bessel function of the second kind Y_n(x).
// Y is defined for x > 0; Y(n, 0) = -Inf and Y(n, x<0) = NaN.
func Y(n int, x float64) float64 {
	return math.Yn(n, x)
}

// Jd returns the derivative J'_n(x) = (J_{n-1}(x) - J_{n+1}(x)) / 2.
func Jd(n int, x float64) float64 {
	return 0.5 * (math.Jn(n-1, x) - math.Jn(n+1, x))
}

// Yd returns the derivative Y'_n(x) = (Y_{n-1}(x) - Y_{n+1}(x)) / 2.
func Yd(n int, x float64) float64 {
	return 0.5 * (math.Yn(n-1, x) - math.Yn(n+1, x))
}
