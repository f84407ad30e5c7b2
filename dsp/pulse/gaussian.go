package pulse

import "math"

const nameGaussianCos = "GaussianCos"

// GaussianCos is a cosine carrier under a Gaussian envelope centered on the
// pulse midpoint.
type GaussianCos struct {
	length       float64
	lengthFactor float64
	amplitude    float64
	sigma        float64
	frequency    float64
	phase        float64
}

// NewGaussianCos creates a Gaussian pulse with an explicit duration,
// independent of sigma.
func NewGaussianCos(amplitude, sigma, frequency, length float64, opts ...Option) (*GaussianCos, error) {
	if err := validateSigma(sigma); err != nil {
		return nil, err
	}
	if err := validateLength(nameGaussianCos, length); err != nil {
		return nil, err
	}
	return newGaussianCos(amplitude, sigma, frequency, length, 0, opts), nil
}

// NewGaussianCosFactor creates a Gaussian pulse lasting lengthFactor*sigma.
// DefaultLengthFactor keeps the tails well below one percent of the peak.
func NewGaussianCosFactor(amplitude, sigma, frequency, lengthFactor float64, opts ...Option) (*GaussianCos, error) {
	if err := validateSigma(sigma); err != nil {
		return nil, err
	}
	length := lengthFactor * sigma
	if err := validateLength(nameGaussianCos, length); err != nil {
		return nil, err
	}
	return newGaussianCos(amplitude, sigma, frequency, length, lengthFactor, opts), nil
}

func newGaussianCos(amplitude, sigma, frequency, length, lengthFactor float64, opts []Option) *GaussianCos {
	cfg := applyOptions(opts)
	return &GaussianCos{
		length:       length,
		lengthFactor: lengthFactor,
		amplitude:    amplitude,
		sigma:        sigma,
		frequency:    frequency,
		phase:        cfg.phase,
	}
}

func validateSigma(sigma float64) error {
	if !(sigma > 0) || !isFinite(sigma) {
		return invalid(nameGaussianCos, "sigma", sigma, ErrInvalidWidth)
	}
	return nil
}

// Length returns the pulse duration in seconds.
func (p *GaussianCos) Length() float64 { return p.length }

// LengthFactor returns the duration in units of sigma, or 0 when the
// duration was given explicitly.
func (p *GaussianCos) LengthFactor() float64 { return p.lengthFactor }

// Amplitude returns the envelope peak.
func (p *GaussianCos) Amplitude() float64 { return p.amplitude }

// Sigma returns the Gaussian standard deviation in seconds.
func (p *GaussianCos) Sigma() float64 { return p.sigma }

// Frequency returns the carrier frequency in Hz.
func (p *GaussianCos) Frequency() float64 { return p.frequency }

// Phase returns the carrier phase in radians.
func (p *GaussianCos) Phase() float64 { return p.phase }

// Envelope evaluates amplitude*exp(-(t-length/2)²/(2σ²)).
func (p *GaussianCos) Envelope(t []float64) []float64 {
	center := p.length / 2
	den := 2 * p.sigma * p.sigma

	out := make([]float64, len(t))
	for i, x := range t {
		d := x - center
		out[i] = math.Exp(-d * d / den)
	}
	return scale(out, p.amplitude)
}

// Oscillation evaluates cos(2πft + φ) at absolute times.
func (p *GaussianCos) Oscillation(t []float64) []float64 {
	return cosine(t, p.frequency, p.phase)
}

// EnvelopeArea returns the integral of the truncated Gaussian over the
// pulse. It approaches amplitude*σ*sqrt(2π) when length >> σ.
func (p *GaussianCos) EnvelopeArea() float64 {
	return p.amplitude * p.sigma * math.Sqrt(2*math.Pi) *
		math.Erf(p.length/(2*math.Sqrt2*p.sigma))
}

// Build samples the pulse. See the package-level Build.
func (p *GaussianCos) Build(timestep, initialTime float64) (times, samples []float64, err error) {
	return Build(p, timestep, initialTime)
}
