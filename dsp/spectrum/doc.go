// Package spectrum checks sampled pulses in the frequency domain.
//
// [Analyze] runs a forward FFT over a sampled pulse and reports its one-sided
// power spectrum. [CarrierResponse] evaluates a single DFT bin against the
// absolute sample times returned by pulse.Build, so the phase it reports is
// the carrier phase on the shared channel clock, independent of where the
// pulse starts.
package spectrum
