package analysis

import (
	"testing"

	"github.com/cwbudde/algo-rftune/rf/core"
	"github.com/cwbudde/algo-rftune/rf/prototype"
)

const (
	nessBandwidth = 26.9e6
	nessCenter    = 2.3e9
	nessQu        = 1400
)

func chebyshev(t testing.TB, n int, ripple float64) prototype.Prototype {
	t.Helper()
	g, err := prototype.Chebyshev(n, ripple)
	if err != nil {
		t.Fatalf("Chebyshev(%d, %v): %v", n, ripple, err)
	}
	return g
}

func nessAnalyzer(t testing.TB, opts ...core.SweepOption) *Analyzer {
	t.Helper()
	a, err := NewAnalyzerFromPrototype(chebyshev(t, 6, 0.01), nessBandwidth, nessCenter, opts...)
	if err != nil {
		t.Fatalf("NewAnalyzerFromPrototype: %v", err)
	}
	return a
}
