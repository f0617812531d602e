package network

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-rftune/rf/prototype"
)

// Nodal is a top-coupled nodal ladder: N shunt resonators (L[i] parallel with
// C[i]) joined by N-1 series coupling capacitors Ck. Values are in henries and
// farads for a 1 ohm reference.
type Nodal struct {
	L  []float64
	C  []float64
	Ck []float64
	// Center is the synthesis centre frequency in Hz.
	Center float64
}

// SynthesizeNodal builds the nodal ladder realizing qk with bandwidth bw at
// centre frequency fo (both Hz).
//
// End couplings are scaled to external Qs (Q = q·Ql), interior couplings to
// coupling coefficients (K = k/Ql). Each resonator inductance follows from
// the external Q at resonance, L = 1/(ω0·Q); the first N-1 resonators share
// the input value and the last one takes the output value. The coupling
// capacitors realize K against the geometric-mean resonator reactance and
// are subtracted from the adjacent shunt capacitors so every node still
// resonates at fo.
func SynthesizeNodal(qk prototype.Coupling, bw, fo float64) (*Nodal, error) {
	if len(qk) < 2 {
		return nil, fmt.Errorf("%w: %d coupling values", ErrTopology, len(qk))
	}
	if !(bw > 0) {
		return nil, fmt.Errorf("%w: %v", ErrBandwidth, bw)
	}
	if !(fo > 0) {
		return nil, fmt.Errorf("%w: %v", ErrFrequency, fo)
	}

	n := len(qk) - 1
	ql := fo / bw
	wo := 2 * math.Pi * fo

	qIn := qk[0] * ql
	qOut := qk[n] * ql

	l := make([]float64, n)
	for i := range l {
		l[i] = 1 / (wo * qIn)
	}
	l[n-1] = 1 / (wo * qOut)

	cm := make([]float64, n)
	for i := range cm {
		cm[i] = 1 / (wo * wo * l[i])
	}

	ck := make([]float64, n-1)
	for i := range ck {
		k := qk[i+1] / ql
		z := 1 / (wo * math.Sqrt(cm[i]*cm[i+1]))
		ck[i] = k / (wo * z)
	}

	c := make([]float64, n)
	for i := range c {
		c[i] = cm[i]
		if i > 0 {
			c[i] -= ck[i-1]
		}
		if i < n-1 {
			c[i] -= ck[i]
		}
	}

	return &Nodal{L: l, C: c, Ck: ck, Center: fo}, nil
}

// Poles returns the number of resonators.
func (n *Nodal) Poles() int { return len(n.L) }
