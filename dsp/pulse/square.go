package pulse

const nameSquareSideBand = "SquareSideBand"

// SquareSideBand is a cosine carrier under a rectangular envelope.
type SquareSideBand struct {
	length    float64
	amplitude float64
	frequency float64
	phase     float64
}

// NewSquareSideBand creates a rectangular pulse. WithPhase sets the
// carrier phase.
func NewSquareSideBand(length, frequency, amplitude float64, opts ...Option) (*SquareSideBand, error) {
	if err := validateLength(nameSquareSideBand, length); err != nil {
		return nil, err
	}
	cfg := applyOptions(opts)
	return &SquareSideBand{
		length:    length,
		amplitude: amplitude,
		frequency: frequency,
		phase:     cfg.phase,
	}, nil
}

// Length returns the pulse duration in seconds.
func (p *SquareSideBand) Length() float64 { return p.length }

// Amplitude returns the constant envelope value.
func (p *SquareSideBand) Amplitude() float64 { return p.amplitude }

// Frequency returns the carrier frequency in Hz.
func (p *SquareSideBand) Frequency() float64 { return p.frequency }

// Phase returns the carrier phase in radians.
func (p *SquareSideBand) Phase() float64 { return p.phase }

// Envelope returns amplitude for every time.
func (p *SquareSideBand) Envelope(t []float64) []float64 {
	out := make([]float64, len(t))
	for i := range out {
		out[i] = p.amplitude
	}
	return out
}

// Oscillation evaluates cos(2πft + φ) at absolute times.
func (p *SquareSideBand) Oscillation(t []float64) []float64 {
	return cosine(t, p.frequency, p.phase)
}

// EnvelopeArea returns amplitude*length.
func (p *SquareSideBand) EnvelopeArea() float64 {
	return p.amplitude * p.length
}

// Build samples the pulse. See the package-level Build.
func (p *SquareSideBand) Build(timestep, initialTime float64) (times, samples []float64, err error) {
	return Build(p, timestep, initialTime)
}
