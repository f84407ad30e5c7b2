package pulse

import (
	"math"

	"github.com/cwbudde/algo-awg/dsp/core"
)

const nameSineEnvCos = "SineEnvCos"

// SineEnvCos is a sine carrier under one half-period (0 to π) of a sine
// envelope.
type SineEnvCos struct {
	length    float64
	amplitude float64
	frequency float64
	phase     float64
}

// NewSineEnvCos creates a half-sine enveloped pulse.
func NewSineEnvCos(amplitude, frequency, length float64, opts ...Option) (*SineEnvCos, error) {
	if err := validateLength(nameSineEnvCos, length); err != nil {
		return nil, err
	}
	cfg := applyOptions(opts)
	return &SineEnvCos{
		length:    length,
		amplitude: amplitude,
		frequency: frequency,
		phase:     cfg.phase,
	}, nil
}

// Length returns the pulse duration in seconds.
func (p *SineEnvCos) Length() float64 { return p.length }

// Amplitude returns the envelope peak.
func (p *SineEnvCos) Amplitude() float64 { return p.amplitude }

// Frequency returns the carrier frequency in Hz.
func (p *SineEnvCos) Frequency() float64 { return p.frequency }

// Phase returns the carrier phase in radians.
func (p *SineEnvCos) Phase() float64 { return p.phase }

// Envelope evaluates amplitude*sin(πt/length). Times are clamped to
// [0, length] and the lobe is floored at zero, since the phase can round
// just past π at the pulse end.
func (p *SineEnvCos) Envelope(t []float64) []float64 {
	out := make([]float64, len(t))
	for i, x := range t {
		x = core.Clamp(x, 0, p.length)
		out[i] = math.Max(0, math.Sin(math.Pi*(x/p.length)))
	}
	return scale(out, p.amplitude)
}

// Oscillation evaluates sin(2πft + φ) at absolute times.
func (p *SineEnvCos) Oscillation(t []float64) []float64 {
	return sine(t, p.frequency, p.phase)
}

// EnvelopeArea returns 2*amplitude*length/π.
func (p *SineEnvCos) EnvelopeArea() float64 {
	return 2 * p.amplitude * p.length / math.Pi
}

// Build samples the pulse. See the package-level Build.
func (p *SineEnvCos) Build(timestep, initialTime float64) (times, samples []float64, err error) {
	return Build(p, timestep, initialTime)
}
