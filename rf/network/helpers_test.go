package network

import (
	"testing"

	"github.com/cwbudde/algo-rftune/rf/prototype"
)

const (
	nessBandwidth = 26.9e6
	nessCenter    = 2.3e9
)

func chebyshevCoupling(t testing.TB, n int, ripple float64) prototype.Coupling {
	t.Helper()
	g, err := prototype.Chebyshev(n, ripple)
	if err != nil {
		t.Fatalf("Chebyshev(%d, %v): %v", n, ripple, err)
	}
	return prototype.ToCoupling(g)
}

func nessNetwork(t testing.TB) *Nodal {
	t.Helper()
	nw, err := SynthesizeNodal(chebyshevCoupling(t, 6, 0.01), nessBandwidth, nessCenter)
	if err != nil {
		t.Fatalf("SynthesizeNodal: %v", err)
	}
	return nw
}
