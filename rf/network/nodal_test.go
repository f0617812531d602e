package network

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-rftune/internal/testutil"
	"github.com/cwbudde/algo-rftune/rf/prototype"
)

func TestSynthesizeNodal_Shape(t *testing.T) {
	nw := nessNetwork(t)
	if nw.Poles() != 6 || len(nw.C) != 6 || len(nw.Ck) != 5 {
		t.Fatalf("unexpected shape: L=%d C=%d Ck=%d", len(nw.L), len(nw.C), len(nw.Ck))
	}
	if nw.Center != nessCenter {
		t.Fatalf("Center = %v", nw.Center)
	}
	for i := range nw.C {
		if !(nw.C[i] > 0) || !(nw.L[i] > 0) {
			t.Fatalf("resonator %d: L=%v C=%v", i, nw.L[i], nw.C[i])
		}
	}
}

func TestSynthesizeNodal_ResonatesAtCenter(t *testing.T) {
	qk := chebyshevCoupling(t, 5, 0.1)
	nw, err := SynthesizeNodal(qk, 10e6, 1e9)
	if err != nil {
		t.Fatal(err)
	}
	wo := 2 * math.Pi * 1e9
	for i := range nw.L {
		total := nw.C[i]
		if i > 0 {
			total += nw.Ck[i-1]
		}
		if i < len(nw.Ck) {
			total += nw.Ck[i]
		}
		testutil.RequireRelativelyEqual(t, "resonance", wo*wo*nw.L[i]*total, 1, 1e-12)
	}
}

func TestSynthesizeNodal_RealizesCouplings(t *testing.T) {
	qk := prototype.Coupling{0.9, 1.1, 0.7, 1.3}
	bw, fo := 5e6, 500e6
	nw, err := SynthesizeNodal(qk, bw, fo)
	if err != nil {
		t.Fatal(err)
	}
	wo := 2 * math.Pi * fo
	want := prototype.Denormalize(qk, bw, fo)

	// external Q of a parallel resonator against 1 ohm
	testutil.RequireRelativelyEqual(t, "Q1", 1/(wo*nw.L[0]), want[0], 1e-12)
	testutil.RequireRelativelyEqual(t, "QN", 1/(wo*nw.L[2]), want[3], 1e-12)

	for i, ck := range nw.Ck {
		cm1 := 1 / (wo * wo * nw.L[i])
		cm2 := 1 / (wo * wo * nw.L[i+1])
		testutil.RequireRelativelyEqual(t, "K", ck/math.Sqrt(cm1*cm2), want[i+1], 1e-12)
	}
}

func TestSynthesizeNodal_SingleResonator(t *testing.T) {
	nw, err := SynthesizeNodal(prototype.Coupling{2, 2}, 1e6, 100e6)
	if err != nil {
		t.Fatal(err)
	}
	if nw.Poles() != 1 || len(nw.Ck) != 0 {
		t.Fatalf("unexpected shape: %+v", nw)
	}
}

func TestSynthesizeNodal_InvalidInput(t *testing.T) {
	qk := prototype.Coupling{1, 0.5, 1}
	tests := []struct {
		name string
		qk   prototype.Coupling
		bw   float64
		fo   float64
		want error
	}{
		{name: "short", qk: prototype.Coupling{1}, bw: 1, fo: 10, want: ErrTopology},
		{name: "bandwidth", qk: qk, bw: 0, fo: 10, want: ErrBandwidth},
		{name: "frequency", qk: qk, bw: 1, fo: -10, want: ErrFrequency},
		{name: "nan bandwidth", qk: qk, bw: math.NaN(), fo: 10, want: ErrBandwidth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := SynthesizeNodal(tt.qk, tt.bw, tt.fo); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}
