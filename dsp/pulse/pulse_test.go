package pulse

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-awg/dsp/core"
	"github.com/cwbudde/algo-awg/internal/testutil"
)

const (
	testLength    = 200e-9
	testTimestep  = 1e-9
	testFrequency = 50e6
)

type namedShape struct {
	name    string
	shape   AreaShape
	carrier testutil.Carrier
	freq    float64
	phase   float64
}

func testShapes(t *testing.T) []namedShape {
	t.Helper()

	border, err := NewGaussianBorderCos(testLength, 0.8, testFrequency,
		WithSigmaFactor(0.05), WithBorderLength(3), WithPhase(0.3))
	require.NoError(t, err)

	gauss, err := NewGaussianCosFactor(1.2, testLength/7, testFrequency, 7, WithPhase(-1.1))
	require.NoError(t, err)

	sineEnv, err := NewSineEnvCos(0.5, testFrequency, testLength, WithPhase(0.7))
	require.NoError(t, err)

	square, err := NewSquareSideBand(testLength, testFrequency, 1, WithPhase(2.2))
	require.NoError(t, err)

	return []namedShape{
		{"GaussianBorderCos", border, testutil.Cosine, testFrequency, 0.3},
		{"GaussianCos", gauss, testutil.Cosine, testFrequency, -1.1},
		{"SineEnvCos", sineEnv, testutil.Sine, testFrequency, 0.7},
		{"SquareSideBand", square, testutil.Cosine, testFrequency, 2.2},
	}
}

func TestBuildGrid(t *testing.T) {
	for _, s := range testShapes(t) {
		for _, t0 := range []float64{0, 3.7e-6, -1.5e-6} {
			times, samples, err := Build(s.shape, testTimestep, t0)
			require.NoError(t, err, s.name)
			require.Len(t, samples, len(times), s.name)

			want := int(math.Ceil(s.shape.Length() / testTimestep))
			assert.InDelta(t, want, len(times), 1, "%s t0=%v", s.name, t0)
			assert.Equal(t, t0, times[0], s.name)
			assert.Less(t, times[len(times)-1], t0+s.shape.Length(), s.name)

			testutil.RequireStrictlyIncreasing(t, times)
			testutil.RequireFinite(t, samples)
		}
	}
}

func TestBuildHalfOpenInterval(t *testing.T) {
	p, err := NewSquareSideBand(1, 0, 1)
	require.NoError(t, err)

	times, samples, err := p.Build(0.25, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75}, times)
	assert.Equal(t, []float64{1, 1, 1, 1}, samples)

	times, _, err = p.Build(0.25, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 2.25, 2.5, 2.75}, times)
}

func TestBuildTimestepNotSmallerThanLength(t *testing.T) {
	p, err := NewSquareSideBand(1, 0, 0.5)
	require.NoError(t, err)

	for _, step := range []float64{1, 2, 1e9} {
		times, samples, err := p.Build(step, 4)
		require.NoError(t, err)
		assert.Equal(t, []float64{4}, times, "timestep %v", step)
		assert.Equal(t, []float64{0.5}, samples, "timestep %v", step)
	}
}

func TestBuildInvalidArguments(t *testing.T) {
	p, err := NewSquareSideBand(1e-6, 10e6, 1)
	require.NoError(t, err)

	for _, step := range []float64{0, -1e-9, math.NaN(), math.Inf(1)} {
		_, _, err := p.Build(step, 0)
		assert.ErrorIs(t, err, ErrInvalidTimestep, "timestep %v", step)
	}
	for _, t0 := range []float64{math.NaN(), math.Inf(-1)} {
		_, _, err := p.Build(1e-9, t0)
		assert.ErrorIs(t, err, ErrInvalidInitialTime, "t0 %v", t0)
	}
}

func TestBuildRejectsOversizedGrid(t *testing.T) {
	p, err := NewSquareSideBand(1, 0, 1)
	require.NoError(t, err)

	for _, step := range []float64{1e-300, 1e-12, 1.0 / (MaxSamples + 1e3)} {
		times, samples, err := p.Build(step, 0)
		require.ErrorIs(t, err, ErrInvalidTimestep, "timestep %v", step)
		assert.Nil(t, times)
		assert.Nil(t, samples)
	}

	times, _, err := p.Build(1.0/1024, 0)
	require.NoError(t, err)
	assert.Len(t, times, 1024)
}

func TestBuildIsEnvelopeTimesOscillation(t *testing.T) {
	const t0 = 1.25e-6
	for _, s := range testShapes(t) {
		times, samples, err := Build(s.shape, testTimestep, t0)
		require.NoError(t, err)

		rel := make([]float64, len(times))
		for i := range times {
			rel[i] = times[i] - t0
		}
		env := s.shape.Envelope(rel)
		osc := s.shape.Oscillation(times)
		for i := range samples {
			assert.InDelta(t, env[i]*osc[i], samples[i], 1e-15, "%s index %d", s.name, i)
		}
	}
}

func TestOscillationReferencedToAbsoluteTime(t *testing.T) {
	for _, s := range testShapes(t) {
		for _, t0 := range []float64{0, 7e-9, 123.4e-9, 2e-3} {
			times, _, err := Build(s.shape, testTimestep, t0)
			require.NoError(t, err)

			want := testutil.ReferenceCarrier(s.carrier, times, s.freq, s.phase)
			testutil.RequireSliceNearlyEqual(t, s.shape.Oscillation(times), want, 1e-9)
		}
	}
}

func TestPhaseCoherenceAcrossInitialTimes(t *testing.T) {
	// Two pulses of the same shape placed at different offsets carry one
	// continuous carrier: dividing out the envelope recovers it.
	for _, s := range testShapes(t) {
		for _, t0 := range []float64{0, 13e-9, 1.0005e-6} {
			times, samples, err := Build(s.shape, testTimestep, t0)
			require.NoError(t, err)

			rel := make([]float64, len(times))
			for i := range times {
				rel[i] = times[i] - t0
			}
			env := s.shape.Envelope(rel)
			ref := testutil.ReferenceCarrier(s.carrier, times, s.freq, s.phase)
			for i := range samples {
				if math.Abs(env[i]) < 1e-3 {
					continue
				}
				assert.InDelta(t, ref[i], samples[i]/env[i], 1e-9, "%s t0=%v index %d", s.name, t0, i)
			}
		}
	}
}

func TestEnvelopeNonNegative(t *testing.T) {
	for _, s := range testShapes(t) {
		rel := testutil.Linspace(0, s.shape.Length(), 4001)
		env := s.shape.Envelope(rel)
		require.Len(t, env, len(rel))
		testutil.RequireNonNegative(t, env)
	}
}

func TestEnvelopeLeavesInputUntouched(t *testing.T) {
	for _, s := range testShapes(t) {
		rel := testutil.Linspace(0, s.shape.Length(), 17)
		orig := append([]float64(nil), rel...)
		_ = s.shape.Envelope(rel)
		_ = s.shape.Oscillation(rel)
		assert.Equal(t, orig, rel, s.name)
	}
}

func TestEnvelopeAreaMatchesIntegration(t *testing.T) {
	const n = 20001
	for _, s := range testShapes(t) {
		rel := testutil.Linspace(0, s.shape.Length(), n)
		dx := s.shape.Length() / (n - 1)
		got := testutil.TrapezoidArea(s.shape.Envelope(rel), dx)
		want := s.shape.EnvelopeArea()
		assert.InEpsilon(t, want, got, 1e-6, s.name)
	}
}

func TestInvalidDuration(t *testing.T) {
	ctors := map[string]func(length float64) error{
		"GaussianBorderCos": func(l float64) error {
			_, err := NewGaussianBorderCos(l, 1, 10e6)
			return err
		},
		"GaussianCos": func(l float64) error {
			_, err := NewGaussianCos(1, 10e-9, 10e6, l)
			return err
		},
		"GaussianCosFactor": func(l float64) error {
			_, err := NewGaussianCosFactor(1, 10e-9, 10e6, l/10e-9)
			return err
		},
		"SineEnvCos": func(l float64) error {
			_, err := NewSineEnvCos(1, 10e6, l)
			return err
		},
		"SquareSideBand": func(l float64) error {
			_, err := NewSquareSideBand(l, 10e6, 1)
			return err
		},
	}

	for name, ctor := range ctors {
		t.Run(name, func(t *testing.T) {
			for _, l := range []float64{0, -1e-9, -1, math.NaN(), math.Inf(1)} {
				err := ctor(l)
				require.ErrorIs(t, err, ErrInvalidDuration, "length %v", l)

				var verr *ValidationError
				require.True(t, errors.As(err, &verr))
				assert.NotEmpty(t, verr.Shape)
				assert.NotEmpty(t, verr.Error())
			}
		})
	}
}

func TestBuildConfig(t *testing.T) {
	p, err := NewSineEnvCos(1, 25e6, 100e-9)
	require.NoError(t, err)

	cfg := core.ApplySamplingOptions(core.WithSampleRate(2e9), core.WithInitialTime(40e-9))
	times, samples, err := BuildConfig(p, cfg)
	require.NoError(t, err)

	wantTimes, wantSamples, err := p.Build(0.5e-9, 40e-9)
	require.NoError(t, err)
	assert.Equal(t, wantTimes, times)
	assert.Equal(t, wantSamples, samples)

	only, err := Samples(p, 0.5e-9, 40e-9)
	require.NoError(t, err)
	assert.Equal(t, wantSamples, only)
}

func TestConcurrentBuild(t *testing.T) {
	shapes := testShapes(t)
	want := make([][]float64, len(shapes))
	for i, s := range shapes {
		samples, err := Samples(s.shape, testTimestep, 5e-9)
		require.NoError(t, err)
		want[i] = samples
	}

	const workers = 8
	got := make([][][]float64, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			got[w] = make([][]float64, len(shapes))
			for i, s := range shapes {
				samples, err := Samples(s.shape, testTimestep, 5e-9)
				if err != nil {
					return
				}
				got[w][i] = samples
			}
		}(w)
	}
	wg.Wait()

	for w := range got {
		for i := range shapes {
			assert.Equal(t, want[i], got[w][i], "worker %d shape %s", w, shapes[i].name)
		}
	}
}

type brokenShape struct{}

func (brokenShape) Length() float64                   { return 1 }
func (brokenShape) Envelope(t []float64) []float64    { return make([]float64, len(t)) }
func (brokenShape) Oscillation(t []float64) []float64 { return nil }

func TestBuildRejectsMismatchedShapeOutput(t *testing.T) {
	_, _, err := Build(brokenShape{}, 0.25, 0)
	require.Error(t, err)
}
