package timedomain

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-rftune/internal/testutil"
	"github.com/cwbudde/algo-rftune/rf/core"
)

func delaySweep(freqs []float64, tau float64) []complex128 {
	out := make([]complex128, len(freqs))
	for i, f := range freqs {
		out[i] = cmplx.Exp(complex(0, -2*math.Pi*f*tau))
	}
	return out
}

func peakIndex(v []float64) int {
	best := 0
	for i, x := range v {
		if x > v[best] {
			best = i
		}
	}
	return best
}

func TestTransform_LocatesDelay(t *testing.T) {
	// 1023 points, 1024 with DC, transformed at 2048
	df := 1e5
	freqs := core.Linspace(1e9, 1e9+1022*df, 1023)
	tau := 1e-6

	res, err := Transform(freqs, delaySweep(freqs, tau))
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Time) != 1024 || len(res.Level) != 1024 {
		t.Fatalf("lengths %d/%d, want 1024", len(res.Time), len(res.Level))
	}
	if res.Time[0] != 0 {
		t.Fatalf("Time[0] = %v", res.Time[0])
	}
	bin := 1 / (2048 * df)
	testutil.RequireRelativelyEqual(t, "bin", res.Time[1], bin, 1e-12)

	got := res.Time[peakIndex(res.Level)]
	if math.Abs(got-tau) > bin {
		t.Fatalf("peak at %v, want %v ± %v", got, tau, bin)
	}
}

func TestTransform_RectangularLevel(t *testing.T) {
	df := 1e5
	freqs := core.Linspace(1e9, 1e9+1022*df, 1023)
	// exactly on bin 200
	tau := 200 / (2048 * df)

	res, err := Transform(freqs, delaySweep(freqs, tau), WithBeta(0))
	if err != nil {
		t.Fatal(err)
	}
	if i := peakIndex(res.Level); i != 200 {
		t.Fatalf("peak bin = %d, want 200", i)
	}
	want := core.LinearToDB(1023.0 / 2047.0)
	if math.Abs(res.Level[200]-want) > 1e-9 {
		t.Fatalf("peak level = %v dB, want %v dB", res.Level[200], want)
	}
}

func TestTransform_WindowSuppressesSidelobes(t *testing.T) {
	df := 1e5
	freqs := core.Linspace(1e9, 1e9+1022*df, 1023)
	tau := 200.5 / (2048 * df)
	sweep := delaySweep(freqs, tau)

	rect, err := Transform(freqs, sweep, WithBeta(0))
	if err != nil {
		t.Fatal(err)
	}
	kais, err := Transform(freqs, sweep)
	if err != nil {
		t.Fatal(err)
	}
	// far from the peak the Kaiser window is much quieter
	far := 600
	if kais.Level[far]-kais.Level[peakIndex(kais.Level)] >= rect.Level[far]-rect.Level[peakIndex(rect.Level)]-40 {
		t.Fatalf("kaiser sidelobe %v dB, rectangular %v dB",
			kais.Level[far]-kais.Level[peakIndex(kais.Level)],
			rect.Level[far]-rect.Level[peakIndex(rect.Level)])
	}
}

func TestTransform_Errors(t *testing.T) {
	if _, err := Transform([]float64{1}, []complex128{1}); !errors.Is(err, ErrSamples) {
		t.Fatalf("short: err = %v", err)
	}
	if _, err := Transform([]float64{1, 2}, []complex128{1}); !errors.Is(err, ErrSamples) {
		t.Fatalf("mismatched: err = %v", err)
	}
	if _, err := Transform([]float64{2, 1}, []complex128{1, 1}); !errors.Is(err, ErrSpacing) {
		t.Fatalf("descending: err = %v", err)
	}
}

func TestSpan(t *testing.T) {
	fo, period := 1.234e9, 7e-7
	freqs, err := Span(fo, period, 101)
	if err != nil {
		t.Fatal(err)
	}
	if len(freqs) != 101 {
		t.Fatalf("len = %d", len(freqs))
	}
	df := freqs[1] - freqs[0]
	if df > 1/(2*period) {
		t.Fatalf("spacing %v too coarse for %v s", df, period)
	}
	if r := fo / df; math.Abs(r-math.Round(r)) > 1e-4 {
		t.Fatalf("fo/df = %v, want an integer", r)
	}
	testutil.RequireRelativelyEqual(t, "centre", freqs[50], fo, 1e-12)

	if _, err := Span(fo, 0, 11); !errors.Is(err, ErrPeriod) {
		t.Fatalf("period 0: err = %v", err)
	}
	if _, err := Span(0, period, 11); !errors.Is(err, ErrFrequency) {
		t.Fatalf("fo 0: err = %v", err)
	}
	if _, err := Span(fo, period, 1); !errors.Is(err, ErrSamples) {
		t.Fatalf("n 1: err = %v", err)
	}
}
