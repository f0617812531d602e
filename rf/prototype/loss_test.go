package prototype

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-rftune/rf/core"
)

func TestInsertionLoss_Cohn(t *testing.T) {
	g, err := Chebyshev(6, 0.01)
	if err != nil {
		t.Fatal(err)
	}
	il := InsertionLoss(g, 26.9e6, 2.3e9, core.Finite(1400))

	var sum float64
	for _, v := range g[1:7] {
		sum += v
	}
	want := 4.343 * (2.3e9 / 26.9e6) / 1400 * sum
	if math.Abs(il-want) > 1e-12 {
		t.Fatalf("InsertionLoss = %v, want %v", il, want)
	}
	if il < 1.9 || il > 2.1 {
		t.Fatalf("InsertionLoss = %v dB, expected about 2 dB", il)
	}
}

func TestInsertionLoss_Lossless(t *testing.T) {
	g := Prototype{1, 1.4142, 1.4142, 1}
	if il := InsertionLoss(g, 1e6, 1e9, core.Lossless()); il != 0 {
		t.Fatalf("lossless InsertionLoss = %v, want 0", il)
	}
	if il := InsertionLoss(Prototype{1}, 1e6, 1e9, core.Finite(100)); il != 0 {
		t.Fatalf("short prototype InsertionLoss = %v, want 0", il)
	}
}
