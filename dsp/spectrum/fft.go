package spectrum

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-awg/dsp/core"
)

// Result is the one-sided power spectrum of a sampled pulse.
type Result struct {
	// Frequencies holds the center frequency of each bin in Hz, from DC to
	// Nyquist.
	Frequencies []float64
	// Power holds |X[k]|^2 for each bin.
	Power []float64
	// BinHz is the bin spacing.
	BinHz float64
	// FFTSize is the zero-padded transform length.
	FFTSize int
}

// PeakFrequency returns the frequency of the strongest non-DC bin, or 0 if
// the spectrum has no bins above DC.
func (r Result) PeakFrequency() float64 {
	if len(r.Power) < 2 {
		return 0
	}
	best := 1
	for k := 2; k < len(r.Power); k++ {
		if r.Power[k] > r.Power[best] {
			best = k
		}
	}
	return r.Frequencies[best]
}

// PeakPowerDB returns the strongest non-DC bin power in dB.
func (r Result) PeakPowerDB() float64 {
	if len(r.Power) < 2 {
		return math.Inf(-1)
	}
	peak := 0.0
	for _, p := range r.Power[1:] {
		peak = math.Max(peak, p)
	}
	return core.LinearPowerToDB(peak)
}

// Analyze computes the power spectrum of samples taken every timestep
// seconds, zero-padded to the next power of two.
func Analyze(samples []float64, timestep float64) (Result, error) {
	return AnalyzeSize(samples, timestep, len(samples))
}

// AnalyzeSize is Analyze with a minimum transform length. Larger sizes
// interpolate the spectrum more finely.
func AnalyzeSize(samples []float64, timestep float64, minSize int) (Result, error) {
	if len(samples) == 0 {
		return Result{}, ErrEmptyInput
	}
	if !(timestep > 0) || !core.IsFinite(timestep) {
		return Result{}, fmt.Errorf("%w: %g", ErrInvalidTimestep, timestep)
	}

	n := core.NextPowerOfTwo(max(len(samples), minSize))
	in := make([]complex128, n)
	for i, v := range samples {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return Result{}, fmt.Errorf("spectrum: fft plan of size %d: %w", n, err)
	}
	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return Result{}, fmt.Errorf("spectrum: forward fft: %w", err)
	}

	bins := n/2 + 1
	binHz := 1 / (float64(n) * timestep)
	freqs := make([]float64, bins)
	for k := range freqs {
		freqs[k] = float64(k) * binHz
	}

	return Result{
		Frequencies: freqs,
		Power:       Power(out[:bins]),
		BinHz:       binHz,
		FFTSize:     n,
	}, nil
}
