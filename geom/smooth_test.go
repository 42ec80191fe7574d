package geom

import (
	"math"
	"testing"
)

func TestSmoothMinSingleElementExact(t *testing.T) {
	if got := SmoothMin([]float64{3.25}, DefaultSharpness); got != 3.25 {
		t.Fatalf("SmoothMin single element = %v, want 3.25", got)
	}
}

func TestSmoothMinTracksMinimum(t *testing.T) {
	xs := []float64{4.0, 1.0, 9.0, 2.5}
	got := SmoothMin(xs, DefaultSharpness)
	if math.Abs(got-1.0) > 1e-6 {
		t.Fatalf("SmoothMin = %v, want ~1.0", got)
	}
	if got < 1.0 {
		t.Fatalf("SmoothMin = %v fell below the true minimum; the weighted average approaches it from above", got)
	}
}

func TestSmoothMinOrderInvariant(t *testing.T) {
	a := SmoothMin([]float64{2, 5, 3}, 50)
	b := SmoothMin([]float64{3, 2, 5}, 50)
	if math.Abs(a-b) > 1e-12 {
		t.Fatalf("order changed the result: %v vs %v", a, b)
	}
}

func TestSmoothMinEqualValuesExact(t *testing.T) {
	if got := SmoothMin([]float64{0.5, 0.5, 0.5, 0.5}, DefaultSharpness); got != 0.5 {
		t.Fatalf("SmoothMin of equal values = %v, want exactly 0.5", got)
	}
}

func TestSmoothMinEmptyIsNaN(t *testing.T) {
	if got := SmoothMin(nil, DefaultSharpness); !math.IsNaN(got) {
		t.Fatalf("SmoothMin(nil) = %v, want NaN", got)
	}
}

func TestSmoothMinNonPositiveSharpnessUsesDefault(t *testing.T) {
	want := SmoothMin([]float64{1, 2}, DefaultSharpness)
	if got := SmoothMin([]float64{1, 2}, 0); got != want {
		t.Fatalf("sharpness 0 = %v, want default behavior %v", got, want)
	}
}

func TestSmoothMaxMirrorsSmoothMin(t *testing.T) {
	xs := []float64{-3, 7, 2}
	got := SmoothMax(xs, DefaultSharpness)
	if math.Abs(got-7) > 1e-6 {
		t.Fatalf("SmoothMax = %v, want ~7", got)
	}
	if got < 2 {
		t.Fatalf("SmoothMax = %v below interior values", got)
	}
}

func TestSmoothMinSharpnessControlsTightness(t *testing.T) {
	xs := []float64{1.0, 1.1}
	loose := SmoothMin(xs, 5)
	tight := SmoothMin(xs, 500)
	if !(tight < loose) {
		t.Fatalf("sharper soft-min should sit closer to the true min: tight=%v loose=%v", tight, loose)
	}
	if tight > 1.0+1e-9 || loose > 1.1 {
		t.Fatalf("soft-min out of range: tight=%v loose=%v", tight, loose)
	}
}
