// Package testutil holds tolerance assertions shared by the rf package tests.
package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireSliceRelativelyEqual fails t if got and want differ in length or if
// any element pair differs by more than rel relative to the larger magnitude.
func RequireSliceRelativelyEqual(t *testing.T, got, want []float64, rel float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if d := RelativeDiff(got[i], want[i]); d > rel {
			t.Fatalf("index %d: got %v, want %v (relative diff %v > %v)", i, got[i], want[i], d, rel)
		}
	}
}

// RequireRelativelyEqual fails t if got and want differ by more than rel
// relative to the larger magnitude.
func RequireRelativelyEqual(t *testing.T, name string, got, want, rel float64) {
	t.Helper()
	if d := RelativeDiff(got, want); d > rel {
		t.Fatalf("%s: got %v, want %v (relative diff %v > %v)", name, got, want, d, rel)
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RelativeDiff returns |a-b| / max(|a|, |b|), or 0 when both are zero.
// Any NaN operand yields +Inf so comparisons fail.
func RelativeDiff(a, b float64) float64 {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.Inf(1)
	}
	if a == b {
		return 0
	}
	largest := math.Max(math.Abs(a), math.Abs(b))
	return math.Abs(a-b) / largest
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
