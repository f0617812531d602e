package groupdelay

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-rftune/internal/testutil"
	"github.com/cwbudde/algo-rftune/rf/core"
	"github.com/cwbudde/algo-rftune/rf/network"
)

func pureDelay(tau float64) network.Evaluator {
	return func(f float64, _ core.UnloadedQ) complex128 {
		return cmplx.Exp(complex(0, -2*math.Pi*f*tau))
	}
}

func TestNumeric_PureDelay(t *testing.T) {
	tau := 37e-9
	fn := pureDelay(tau)
	for _, f := range []float64{0, 1e6, 2.3e9, 10e9} {
		testutil.RequireRelativelyEqual(t, "td", Numeric(fn, f, core.Lossless()), tau, 1e-6)
	}
}

func TestNumeric_PhaseWrapInsideStep(t *testing.T) {
	// the phase of a 1 µs delay crosses ±π constantly; every two-point
	// difference must still unwrap correctly
	tau := 1e-6
	fn := pureDelay(tau)
	freqs := core.Linspace(1e9, 1e9+1e4, 101)
	td := NumericSweep(fn, freqs, core.Lossless())
	if len(td) != len(freqs) {
		t.Fatalf("len = %d, want %d", len(td), len(freqs))
	}
	for _, v := range td {
		testutil.RequireRelativelyEqual(t, "td", v, tau, 1e-6)
	}
}

func TestNumericStep(t *testing.T) {
	fn := pureDelay(5e-9)
	testutil.RequireRelativelyEqual(t, "td", NumericStep(fn, 1e9, core.Lossless(), 1e3), 5e-9, 1e-6)
}
