package noise

import "math"

// Physical constants used throughout the receiver formulas.
const (
	electronCharge = 1.602e-19 // [C]
	boltzmann      = 1.38e-23  // [J/K]
	planck         = 6.626e-34 // [J·s]
	lightSpeed     = 2.998e8   // [m/s]
)

// ShotNoise returns the RMS shot-noise current of a photodiode carrying
// photocurrent i0 and dark current iDark over the given bandwidth.  For
// an APD, m is the gain and x the excess-noise exponent (0.3 for Si,
// 0.7 for InGaAs, 1.0 for Ge); unity gain recovers the PIN case.
func ShotNoise(i0, iDark, bandwidth, m, x float64) float64 {
	return math.Sqrt(2 * electronCharge * (i0/m + iDark) * bandwidth * math.Pow(m, 2+x))
}

// ThermalNoise returns the RMS Johnson noise current of the load
// resistor at temperature t over the given bandwidth.
func ThermalNoise(t, rLoad, bandwidth float64) float64 {
	return math.Sqrt(4 * boltzmann * t * bandwidth / rLoad)
}

// NEP returns the noise equivalent power of a receiver in W/√Hz: the
// optical power at which the signal matches the thermal plus dark-current
// shot noise.
func NEP(responsivity, rLoad, iDark, t float64) float64 {
	return 1 / responsivity * math.Sqrt(4*boltzmann*t/rLoad+2*electronCharge*iDark)
}

// BestAPDGain returns the avalanche gain that minimizes total receiver
// noise, balancing multiplied shot noise against thermal noise.
func BestAPDGain(i0, rLoad, iDark, x, t float64) float64 {
	return math.Pow(4*boltzmann*t/(x*electronCharge*rLoad*(i0+iDark)), 1/(x+2))
}

// BERAtSNR returns the bit error rate of a binary receiver at the given
// electrical signal-to-noise ratio.
func BERAtSNR(snr float64) float64 {
	return 0.5 * math.Erfc(math.Sqrt(snr/8))
}

// SNRAtBER returns the signal-to-noise ratio required for the given bit
// error rate; the inverse of BERAtSNR.
func SNRAtBER(ber float64) float64 {
	v := math.Erfcinv(2 * ber)
	return 8 * v * v
}

// ThermalMinPower returns the minimum optical power a thermal-noise
// limited receiver needs for the given SNR at the given bit rate;
// capacitance sets the front-end bandwidth.
func ThermalMinPower(bitrate, responsivity, capacitance, t, snr float64) float64 {
	return bitrate / responsivity * math.Sqrt(2*math.Pi*boltzmann*t*capacitance*snr)
}

// QuantumMinPower returns the quantum-limited minimum optical power for
// the given bit error rate: the power delivering the Poisson photon
// count N_p = −ln(2·ber) per bit at wavelength λ₀.
func QuantumMinPower(bitrate, ber, lambda0 float64) float64 {
	nu := lightSpeed / lambda0
	np := -math.Log(2 * ber)
	return planck * nu * np * bitrate
}
