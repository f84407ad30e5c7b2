// Command pulseinfo prints properties of sampled AWG control pulses.
//
// Usage:
//
//	pulseinfo [flags] [shape ...]
//
// Without arguments it prints info for all known shapes.
//
// Examples:
//
//	pulseinfo gaussian-cos
//	pulseinfo -frequency 100e6 -length 500e-9 square-sideband sine-env-cos
//	pulseinfo -sigma 5e-9 -length-factor 8 gaussian-cos
//	pulseinfo -dump -t0 1e-6 gaussian-border-cos
//	pulseinfo -list
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-awg/dsp/core"
	"github.com/cwbudde/algo-awg/dsp/pulse"
	"github.com/cwbudde/algo-awg/dsp/spectrum"
)

type params struct {
	amplitude    float64
	frequency    float64
	phase        float64
	length       float64
	lengthSet    bool
	sigma        float64
	lengthFactor float64
	sigmaFactor  float64
	borderLength float64
}

func main() {
	var p params
	flag.Float64Var(&p.amplitude, "amplitude", 1, "envelope peak amplitude")
	flag.Float64Var(&p.frequency, "frequency", 50e6, "carrier frequency in Hz")
	flag.Float64Var(&p.phase, "phase", 0, "carrier phase in radians")
	flag.Float64Var(&p.length, "length", 200e-9, "pulse length in seconds (gaussian-cos: overrides -length-factor)")
	flag.Float64Var(&p.sigma, "sigma", 10e-9, "gaussian-cos standard deviation in seconds")
	flag.Float64Var(&p.lengthFactor, "length-factor", pulse.DefaultLengthFactor, "gaussian-cos length in units of sigma")
	flag.Float64Var(&p.sigmaFactor, "sigma-factor", pulse.DefaultSigmaFactor, "gaussian-border-cos sigma as a fraction of length")
	flag.Float64Var(&p.borderLength, "border-length", pulse.DefaultBorderLength, "gaussian-border-cos edge width in units of sigma")
	timestep := flag.Float64("timestep", 1e-9, "sample spacing in seconds")
	t0 := flag.Float64("t0", 0, "absolute time of the first sample in seconds")
	all := flag.Bool("all", false, "show all shapes")
	list := flag.Bool("list", false, "list available shape names")
	dump := flag.Bool("dump", false, "print time and sample columns instead of the summary")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: pulseinfo [flags] [shape ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints properties of sampled AWG control pulses.\n")
		fmt.Fprintf(os.Stderr, "Without arguments or with -all, prints info for all shapes.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  pulseinfo gaussian-cos\n")
		fmt.Fprintf(os.Stderr, "  pulseinfo -sigma 5e-9 -length-factor 8 gaussian-cos\n")
		fmt.Fprintf(os.Stderr, "  pulseinfo -dump sine-env-cos\n")
		fmt.Fprintf(os.Stderr, "  pulseinfo -list\n")
	}
	flag.Parse()
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "length" {
			p.lengthSet = true
		}
	})

	logger := log.New(os.Stderr, "[pulseinfo] ", 0)

	if *list {
		for _, k := range pulse.Kinds() {
			fmt.Println(k)
		}
		return
	}

	kinds, err := resolveKinds(flag.Args(), *all, logger)
	if err != nil {
		logger.Fatal(err)
	}

	cfg := core.ApplySamplingOptions(core.WithTimestep(*timestep), core.WithInitialTime(*t0))
	if cfg.Timestep != *timestep || cfg.InitialTime != *t0 {
		logger.Fatalf("invalid sampling: timestep=%g t0=%g", *timestep, *t0)
	}

	shapes := make([]namedShape, 0, len(kinds))
	for _, k := range kinds {
		s, err := newShape(k, p)
		if err != nil {
			logger.Printf("skipping %s: %v", k, err)
			continue
		}
		shapes = append(shapes, namedShape{kind: k, shape: s})
	}
	if len(shapes) == 0 {
		logger.Fatal("no valid shapes")
	}

	if *dump {
		for _, s := range shapes {
			if err := printSamples(os.Stdout, s, cfg); err != nil {
				logger.Fatal(err)
			}
		}
		return
	}

	if err := printSummary(os.Stdout, shapes, cfg, p.frequency); err != nil {
		logger.Fatal(err)
	}
}

type namedShape struct {
	kind  pulse.Kind
	shape pulse.AreaShape
}

func resolveKinds(names []string, all bool, logger *log.Logger) ([]pulse.Kind, error) {
	if len(names) == 0 || all {
		return pulse.Kinds(), nil
	}

	var kinds []pulse.Kind
	for _, name := range names {
		k, err := pulse.ParseKind(name)
		if err != nil {
			logger.Printf("warning: %v (use -list to see available)", err)
			continue
		}
		kinds = append(kinds, k)
	}
	if len(kinds) == 0 {
		return nil, fmt.Errorf("no matching shapes")
	}
	return kinds, nil
}

func newShape(k pulse.Kind, p params) (pulse.AreaShape, error) {
	phase := pulse.WithPhase(p.phase)

	switch k {
	case pulse.KindGaussianBorderCos:
		return pulse.NewGaussianBorderCos(p.length, p.amplitude, p.frequency, phase,
			pulse.WithSigmaFactor(p.sigmaFactor), pulse.WithBorderLength(p.borderLength))
	case pulse.KindGaussianCos:
		if p.lengthSet {
			return pulse.NewGaussianCos(p.amplitude, p.sigma, p.frequency, p.length, phase)
		}
		return pulse.NewGaussianCosFactor(p.amplitude, p.sigma, p.frequency, p.lengthFactor, phase)
	case pulse.KindSineEnvCos:
		return pulse.NewSineEnvCos(p.amplitude, p.frequency, p.length, phase)
	case pulse.KindSquareSideBand:
		return pulse.NewSquareSideBand(p.length, p.frequency, p.amplitude, phase)
	default:
		return nil, fmt.Errorf("unsupported shape %v", k)
	}
}

type summary struct {
	samples      int
	peak         float64
	area         float64
	numericArea  float64
	spectralPeak float64
	carrierPhase float64
}

func summarize(s pulse.AreaShape, cfg core.SamplingConfig, frequency float64) (summary, error) {
	times, samples, err := pulse.BuildConfig(s, cfg)
	if err != nil {
		return summary{}, err
	}

	rel := make([]float64, len(times))
	for i, t := range times {
		rel[i] = t - cfg.InitialTime
	}
	numeric := 0.0
	for _, v := range s.Envelope(rel) {
		numeric += v * cfg.Timestep
	}

	peak := 0.0
	for _, v := range samples {
		if v < 0 {
			v = -v
		}
		if v > peak {
			peak = v
		}
	}

	res, err := spectrum.AnalyzeSize(samples, cfg.Timestep, 4096)
	if err != nil {
		return summary{}, err
	}
	ph, err := spectrum.CarrierPhase(times, samples, frequency)
	if err != nil {
		return summary{}, err
	}

	return summary{
		samples:      len(samples),
		peak:         peak,
		area:         s.EnvelopeArea(),
		numericArea:  numeric,
		spectralPeak: res.PeakFrequency(),
		carrierPhase: ph,
	}, nil
}

func printSummary(w io.Writer, shapes []namedShape, cfg core.SamplingConfig, frequency float64) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Shape\tSamples\tLength [ns]\tPeak\tArea [V*ns]\tSampled Area [V*ns]\tSpectral Peak [MHz]\tCarrier Phase [rad]\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "-----\t-------\t-----------\t----\t-----------\t-------------------\t-------------------\t-------------------\n"); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, s := range shapes {
		sum, err := summarize(s.shape, cfg, frequency)
		if err != nil {
			return fmt.Errorf("%s: %w", s.kind, err)
		}
		if _, err := fmt.Fprintf(tw, "%s\t%d\t%.3f\t%.4f\t%.4f\t%.4f\t%.3f\t%+.4f\n",
			s.kind,
			sum.samples,
			s.shape.Length()*1e9,
			sum.peak,
			sum.area*1e9,
			sum.numericArea*1e9,
			sum.spectralPeak/1e6,
			sum.carrierPhase,
		); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	return tw.Flush()
}

func printSamples(w io.Writer, s namedShape, cfg core.SamplingConfig) error {
	times, samples, err := pulse.BuildConfig(s.shape, cfg)
	if err != nil {
		return fmt.Errorf("%s: %w", s.kind, err)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "# %s\ntime [s]\tsample\n", s.kind); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i := range times {
		if _, err := fmt.Fprintf(tw, "%.12e\t%+.9f\n", times[i], samples[i]); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	return tw.Flush()
}
