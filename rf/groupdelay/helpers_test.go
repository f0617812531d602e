package groupdelay

import (
	"testing"

	"github.com/cwbudde/algo-rftune/rf/prototype"
)

const (
	nessBandwidth = 26.9e6
	nessCenter    = 2.3e9
)

func nessPrototype(t testing.TB) prototype.Prototype {
	t.Helper()
	g, err := prototype.Chebyshev(6, 0.01)
	if err != nil {
		t.Fatalf("Chebyshev: %v", err)
	}
	return g
}
