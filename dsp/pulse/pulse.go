package pulse

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-awg/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// MaxSamples is the largest grid Build will allocate.
const MaxSamples = 1 << 27

// Shape is the contract every pulse variant implements.
//
// Envelope receives times relative to the pulse onset. Oscillation receives
// times on the absolute clock shared by all pulses of a channel. Both return
// a new slice of the same length as t and must not modify t.
type Shape interface {
	Length() float64
	Envelope(t []float64) []float64
	Oscillation(t []float64) []float64
}

// AreaShape is a Shape with a closed-form envelope integral.
type AreaShape interface {
	Shape
	// EnvelopeArea returns the integral of the envelope over [0, Length()].
	EnvelopeArea() float64
}

// Build samples s on the grid initialTime + i*timestep covering the
// half-open interval [initialTime, initialTime+s.Length()).
//
// It returns the sample times and envelope(t-initialTime)*oscillation(t) at
// each of them. A timestep larger than the pulse yields a single sample; a
// timestep so small that the grid would exceed MaxSamples is rejected with
// ErrInvalidTimestep.
func Build(s Shape, timestep, initialTime float64) (times, samples []float64, err error) {
	if !(timestep > 0) || !isFinite(timestep) {
		return nil, nil, fmt.Errorf("%w: %g", ErrInvalidTimestep, timestep)
	}
	if !isFinite(initialTime) {
		return nil, nil, fmt.Errorf("%w: %g", ErrInvalidInitialTime, initialTime)
	}

	times, err = grid(initialTime, initialTime+s.Length(), timestep)
	if err != nil {
		return nil, nil, err
	}
	rel := make([]float64, len(times))
	for i, t := range times {
		rel[i] = t - initialTime
	}

	env := s.Envelope(rel)
	osc := s.Oscillation(times)
	if len(env) != len(times) || len(osc) != len(times) {
		return nil, nil, fmt.Errorf("pulse: shape returned %d envelope and %d oscillation values for %d times",
			len(env), len(osc), len(times))
	}

	samples = make([]float64, len(times))
	vecmath.MulBlock(samples, env, osc)
	return times, samples, nil
}

// BuildConfig is Build with the grid taken from a sampling configuration.
func BuildConfig(s Shape, cfg core.SamplingConfig) (times, samples []float64, err error) {
	return Build(s, cfg.Timestep, cfg.InitialTime)
}

// Samples is Build without the time axis.
func Samples(s Shape, timestep, initialTime float64) ([]float64, error) {
	_, samples, err := Build(s, timestep, initialTime)
	return samples, err
}

// grid returns start, start+step, ... below stop. The count follows the
// ceil((stop-start)/step) rule; points that rounding pushes onto or past
// stop are dropped so the interval stays half-open.
func grid(start, stop, step float64) ([]float64, error) {
	count := math.Ceil((stop - start) / step)
	if !(count <= MaxSamples) {
		return nil, fmt.Errorf("%w: %g s needs %g samples, limit is %d",
			ErrInvalidTimestep, step, count, MaxSamples)
	}
	n := int(count)
	if n < 0 {
		n = 0
	}
	for n > 0 && start+float64(n-1)*step >= stop {
		n--
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out, nil
}

func cosine(t []float64, frequency, phase float64) []float64 {
	out := make([]float64, len(t))
	w := 2 * math.Pi * frequency
	for i, x := range t {
		out[i] = math.Cos(w*x + phase)
	}
	return out
}

func sine(t []float64, frequency, phase float64) []float64 {
	out := make([]float64, len(t))
	w := 2 * math.Pi * frequency
	for i, x := range t {
		out[i] = math.Sin(w*x + phase)
	}
	return out
}

// scale multiplies env by amplitude in place and returns it.
func scale(env []float64, amplitude float64) []float64 {
	vecmath.ScaleBlock(env, env, amplitude)
	return env
}
