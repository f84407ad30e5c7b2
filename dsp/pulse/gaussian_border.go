package pulse

import "math"

const nameGaussianBorderCos = "GaussianBorderCos"

// GaussianBorderCos is a cosine carrier under a flat-top envelope whose
// edges are rounded by one-sided Gaussian tails.
//
// σ = sigmaFactor*length and each edge spans borderLength*σ. The flat region
// [border, length-border] sits at the full amplitude.
type GaussianBorderCos struct {
	length       float64
	amplitude    float64
	frequency    float64
	phase        float64
	sigmaFactor  float64
	borderLength float64
}

// NewGaussianBorderCos creates a Gaussian-edged flat-top pulse.
//
// Use WithSigmaFactor and WithBorderLength to override the defaults
// DefaultSigmaFactor and DefaultBorderLength, and WithPhase for the carrier
// phase. Both edges together must fit in length.
func NewGaussianBorderCos(length, amplitude, frequency float64, opts ...Option) (*GaussianBorderCos, error) {
	if err := validateLength(nameGaussianBorderCos, length); err != nil {
		return nil, err
	}

	cfg := applyOptions(opts)
	if !(cfg.sigmaFactor > 0) || !isFinite(cfg.sigmaFactor) {
		return nil, invalid(nameGaussianBorderCos, "sigma factor", cfg.sigmaFactor, ErrInvalidBorder)
	}
	if !(cfg.borderLength >= 0) || !isFinite(cfg.borderLength) {
		return nil, invalid(nameGaussianBorderCos, "border length", cfg.borderLength, ErrInvalidBorder)
	}

	total := 2 * cfg.borderLength * cfg.sigmaFactor * length
	if length < total {
		return nil, invalid(nameGaussianBorderCos, "total border length", total, ErrInvalidBorder)
	}

	return &GaussianBorderCos{
		length:       length,
		amplitude:    amplitude,
		frequency:    frequency,
		phase:        cfg.phase,
		sigmaFactor:  cfg.sigmaFactor,
		borderLength: cfg.borderLength,
	}, nil
}

// Length returns the pulse duration in seconds.
func (p *GaussianBorderCos) Length() float64 { return p.length }

// Amplitude returns the flat-top amplitude.
func (p *GaussianBorderCos) Amplitude() float64 { return p.amplitude }

// Frequency returns the carrier frequency in Hz.
func (p *GaussianBorderCos) Frequency() float64 { return p.frequency }

// Phase returns the carrier phase in radians.
func (p *GaussianBorderCos) Phase() float64 { return p.phase }

// SigmaFactor returns σ as a fraction of the pulse length.
func (p *GaussianBorderCos) SigmaFactor() float64 { return p.sigmaFactor }

// BorderLength returns the edge width in units of σ.
func (p *GaussianBorderCos) BorderLength() float64 { return p.borderLength }

// Sigma returns the edge standard deviation in seconds.
func (p *GaussianBorderCos) Sigma() float64 { return p.sigmaFactor * p.length }

// BorderTime returns the width of one edge in seconds.
func (p *GaussianBorderCos) BorderTime() float64 { return p.borderLength * p.Sigma() }

// Envelope evaluates the flat-top envelope at pulse-relative times.
//
// The edge tails are exp(-((t-border)/2)²/σ²/2), so their effective standard
// deviation is 2σ and they do not reach zero at the pulse boundaries.
func (p *GaussianBorderCos) Envelope(t []float64) []float64 {
	sigma := p.Sigma()
	border := p.BorderTime()
	right := p.length - border
	den := 2 * sigma * sigma

	out := make([]float64, len(t))
	for i, x := range t {
		switch {
		case x < border:
			d := (x - border) / 2
			out[i] = math.Exp(-d * d / den)
		case x > right:
			d := (x - right) / 2
			out[i] = math.Exp(-d * d / den)
		default:
			out[i] = 1
		}
	}
	return scale(out, p.amplitude)
}

// Oscillation evaluates cos(2πft + φ) at absolute times.
func (p *GaussianBorderCos) Oscillation(t []float64) []float64 {
	return cosine(t, p.frequency, p.phase)
}

// EnvelopeArea returns the exact integral of the envelope over the pulse.
func (p *GaussianBorderCos) EnvelopeArea() float64 {
	border := p.BorderTime()
	s := 2 * p.Sigma()
	edge := s * math.Sqrt(math.Pi/2) * math.Erf(border/(s*math.Sqrt2))
	return p.amplitude * (p.length - 2*border + 2*edge)
}

// Build samples the pulse. See the package-level Build.
func (p *GaussianBorderCos) Build(timestep, initialTime float64) (times, samples []float64, err error) {
	return Build(p, timestep, initialTime)
}
