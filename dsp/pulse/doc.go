// Package pulse synthesizes sampled control pulses for arbitrary-waveform
// generators.
//
// A pulse is the product of two functions:
//
//   - the envelope, which shapes amplitude in pulse-relative time (0 at the
//     pulse onset), and
//   - the oscillation, the carrier, which is evaluated in absolute time.
//
// Keeping the carrier on the absolute clock means pulses played back to back
// or overlapping on the same channel stay phase-coherent with each other and
// with any reference oscillator, no matter where each one starts.
//
// # Usage
//
//	p, err := pulse.NewGaussianCosFactor(1, 10e-9, 50e6, 6)
//	if err != nil {
//		return err
//	}
//	times, samples, err := p.Build(1e-9, 0)
//
// All parameters are validated once by the constructor. A constructed shape
// is immutable and may be sampled concurrently.
//
// # Shapes
//
//   - [GaussianBorderCos]: flat top with Gaussian edges, cosine carrier
//   - [GaussianCos]: Gaussian envelope centered on the pulse, cosine carrier
//   - [SineEnvCos]: half-sine envelope, sine carrier
//   - [SquareSideBand]: rectangular envelope, cosine carrier
//
// # Sampling
//
// [Build] samples the half-open interval [t0, t0+length) at t0 + i*timestep.
// The envelope sees t - t0; the oscillation sees t.
package pulse
