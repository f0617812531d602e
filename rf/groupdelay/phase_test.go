package groupdelay

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-rftune/internal/testutil"
)

func TestUnwrapPhase(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want []float64
	}{
		{name: "empty", in: nil, want: nil},
		{name: "smooth", in: []float64{0, 0.5, 1}, want: []float64{0, 0.5, 1}},
		{name: "wrap down", in: []float64{3, -3}, want: []float64{3, 2*math.Pi - 3}},
		{name: "wrap up", in: []float64{-3, 3}, want: []float64{-3, 3 - 2*math.Pi}},
		{name: "wrap and return", in: []float64{3, -3, 0.5}, want: []float64{3, 2*math.Pi - 3, 0.5}},
		{
			name: "two wraps",
			in:   []float64{0, 2, -2.28, -0.28, 1.72, -2.56},
			want: []float64{0, 2, 2*math.Pi - 2.28, 2*math.Pi - 0.28, 2*math.Pi + 1.72, 4*math.Pi - 2.56},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.RequireSliceNearlyEqual(t, UnwrapPhase(tt.in), tt.want, 1e-12)
		})
	}
}
