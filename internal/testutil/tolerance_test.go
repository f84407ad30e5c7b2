package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	d, err := MaxAbsDiff([]float64{1.0, 2.0, 3.0}, []float64{1.0, 2.1, 3.0})
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}
	if math.Abs(d-0.1) > 1e-15 {
		t.Fatalf("MaxAbsDiff = %v, want 0.1", d)
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	if _, err := MaxAbsDiff([]float64{1}, []float64{1, 2}); err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestMaxAbsDiffEmpty(t *testing.T) {
	d, err := MaxAbsDiff(nil, []float64{})
	if err != nil || d != 0 {
		t.Fatalf("MaxAbsDiff(empty) = %v, %v; want 0, nil", d, err)
	}
}

func TestRequireHelpersPass(t *testing.T) {
	x := []float64{0, 0.5, 1, 2}
	RequireSliceNearlyEqual(t, x, []float64{0, 0.5, 1, 2 + 1e-13}, 1e-12)
	RequireFinite(t, x)
	RequireNonNegative(t, x)
	RequireStrictlyIncreasing(t, x)
	RequireStrictlyIncreasing(t, nil)
}
