package testutil

import "math"

// Carrier selects the reference oscillator function.
type Carrier int

const (
	Cosine Carrier = iota
	Sine
)

// ReferenceCarrier evaluates a unit carrier at the given absolute times.
func ReferenceCarrier(c Carrier, times []float64, frequency, phase float64) []float64 {
	out := make([]float64, len(times))
	for i, t := range times {
		arg := 2*math.Pi*frequency*t + phase
		if c == Sine {
			out[i] = math.Sin(arg)
		} else {
			out[i] = math.Cos(arg)
		}
	}
	return out
}

// Linspace returns n evenly spaced points over the closed interval
// [start, stop].
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}

// TrapezoidArea integrates uniformly spaced samples with the trapezoid rule.
func TrapezoidArea(y []float64, dx float64) float64 {
	if len(y) < 2 {
		return 0
	}
	sum := (y[0] + y[len(y)-1]) / 2
	for _, v := range y[1 : len(y)-1] {
		sum += v
	}
	return sum * dx
}
