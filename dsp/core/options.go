package core

import "math"

// SamplingConfig defines the sample grid used to discretize a pulse.
type SamplingConfig struct {
	// Timestep is the spacing between samples in seconds.
	Timestep float64
	// InitialTime is the absolute time of the first sample in seconds.
	InitialTime float64
}

// SamplingOption mutates a SamplingConfig.
type SamplingOption func(*SamplingConfig)

// DefaultSamplingConfig returns a 1 GS/s grid starting at t = 0.
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Timestep:    1e-9,
		InitialTime: 0,
	}
}

// SampleRate returns the sample rate implied by the timestep, or 0 if the
// timestep is not positive.
func (c SamplingConfig) SampleRate() float64 {
	if !(c.Timestep > 0) {
		return 0
	}
	return 1 / c.Timestep
}

// WithTimestep sets the sample spacing in seconds.
func WithTimestep(timestep float64) SamplingOption {
	return func(cfg *SamplingConfig) {
		if timestep > 0 && IsFinite(timestep) {
			cfg.Timestep = timestep
		}
	}
}

// WithSampleRate sets the sample spacing from a rate in samples per second.
func WithSampleRate(sampleRate float64) SamplingOption {
	return func(cfg *SamplingConfig) {
		if sampleRate > 0 && !math.IsInf(sampleRate, 0) {
			cfg.Timestep = 1 / sampleRate
		}
	}
}

// WithInitialTime sets the absolute time of the first sample.
func WithInitialTime(t0 float64) SamplingOption {
	return func(cfg *SamplingConfig) {
		if IsFinite(t0) {
			cfg.InitialTime = t0
		}
	}
}

// ApplySamplingOptions applies zero or more options to the default config.
func ApplySamplingOptions(opts ...SamplingOption) SamplingConfig {
	cfg := DefaultSamplingConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
