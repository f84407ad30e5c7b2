package pulse

import "github.com/cwbudde/algo-awg/dsp/core"

const (
	// DefaultSigmaFactor is the GaussianBorderCos edge σ as a fraction of
	// the pulse length.
	DefaultSigmaFactor = 0.003
	// DefaultBorderLength is the GaussianBorderCos edge width in units of σ.
	DefaultBorderLength = 3.5
	// DefaultLengthFactor is the GaussianCos length in units of σ commonly
	// used with NewGaussianCosFactor.
	DefaultLengthFactor = 7.0
)

// Option configures optional shape parameters. Options that do not apply to
// a shape are ignored by its constructor.
type Option func(*config)

type config struct {
	phase        float64
	sigmaFactor  float64
	borderLength float64
}

func defaultConfig() config {
	return config{
		sigmaFactor:  DefaultSigmaFactor,
		borderLength: DefaultBorderLength,
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithPhase sets the carrier phase in radians.
func WithPhase(phase float64) Option {
	return func(c *config) {
		c.phase = phase
	}
}

// WithSigmaFactor sets the GaussianBorderCos edge σ as a fraction of the
// pulse length.
func WithSigmaFactor(v float64) Option {
	return func(c *config) {
		c.sigmaFactor = v
	}
}

// WithBorderLength sets the GaussianBorderCos edge width in units of σ.
func WithBorderLength(v float64) Option {
	return func(c *config) {
		c.borderLength = v
	}
}

func isFinite(x float64) bool {
	return core.IsFinite(x)
}
