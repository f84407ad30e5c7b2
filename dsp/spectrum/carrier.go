package spectrum

import (
	"fmt"
	"math"
	"math/cmplx"
)

// CarrierResponse evaluates sum(samples[i] * exp(-j*2π*frequency*times[i])).
//
// Because the exponent uses the absolute times, the response of a pulse
// with carrier cos(2πft+φ) has phase ≈ φ wherever the pulse was placed.
func CarrierResponse(times, samples []float64, frequency float64) (complex128, error) {
	if len(times) != len(samples) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(times), len(samples))
	}
	if len(samples) == 0 {
		return 0, ErrEmptyInput
	}

	w := 2 * math.Pi * frequency
	var acc complex128
	for i, s := range samples {
		sin, cos := math.Sincos(w * times[i])
		acc += complex(s*cos, -s*sin)
	}
	return acc, nil
}

// CarrierPhase returns the phase of CarrierResponse in radians.
func CarrierPhase(times, samples []float64, frequency float64) (float64, error) {
	x, err := CarrierResponse(times, samples, frequency)
	if err != nil {
		return 0, err
	}
	return cmplx.Phase(x), nil
}
