// Package noise collects receiver-noise formulas for optical links:
// shot and thermal noise currents, noise equivalent power, APD gain
// optimization, and the BER/SNR/minimum-power relations of a binary
// receiver (Ghatak & Thyagarajan ch. 13).
//
// ⚙️ Usage:
//
//	iShot := noise.ShotNoise(1e-6, 1e-9, 1e9, 1, 0)
//	ber := noise.BERAtSNR(144)    // an SNR of ~21.6 dB gives BER ≈ 1e-9
//
// All functions are pure formula evaluation; currents in amperes, powers
// in watts, temperatures in kelvin.
package noise
