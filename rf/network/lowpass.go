package network

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-rftune/rf/core"
	"github.com/cwbudde/algo-rftune/rf/prototype"
)

// LowpassReflection returns the S11 evaluator of the lowpass prototype g with
// the ladder grounded after node n (1 <= n <= N), at normalized frequency
// wp = f/fo.
//
// Odd elements are shunt capacitors, even elements series inductors carrying
// the dissipation wp·g/Qu. The reflection is referenced to g0.
func LowpassReflection(g prototype.Prototype, fo float64, n int) (Evaluator, error) {
	if n < 1 || n > g.Poles() {
		return nil, fmt.Errorf("%w: node %d of %d", ErrNode, n, g.Poles())
	}
	if !(fo > 0) {
		return nil, fmt.Errorf("%w: %v", ErrFrequency, fo)
	}
	elems := append([]float64(nil), g[1:n+1]...)
	g0 := complex(g[0], 0)

	return func(freqHz float64, qu core.UnloadedQ) complex128 {
		wp := freqHz / fo
		zin := lowpassGrounded(elems, wp, qu.Loss())
		return (zin - g0) / (zin + g0)
	}, nil
}

// lowpassGrounded folds elems (g1..gn) from gn back to g1 and returns the
// input impedance.
func lowpassGrounded(elems []float64, wp, loss float64) complex128 {
	var zin complex128
	for i := len(elems); i >= 1; i-- {
		gi := elems[i-1]
		if i%2 == 1 {
			y := complex(0, wp*gi)
			if i == len(elems) {
				zin = 1 / y
			} else {
				zin = 1 / (y + 1/zin)
			}
		} else {
			zin += complex(wp*gi*loss, wp*gi)
		}
	}
	return zin
}

// LowpassTransmission returns the S21 evaluator of the full lowpass
// prototype between a g0 generator and a g(N+1) load at wp = f/fo. The
// result is power-normalized so a lossless passband peak is 1 even when
// the load differs from g0.
//
// For odd N the ladder ends on a shunt capacitor and g(N+1) is the load
// resistance; for even N it ends on a series inductor and g(N+1) is the load
// conductance.
func LowpassTransmission(g prototype.Prototype, fo float64) (Evaluator, error) {
	if len(g) < 3 {
		return nil, fmt.Errorf("%w: %d prototype values", ErrTopology, len(g))
	}
	if !(fo > 0) {
		return nil, fmt.Errorf("%w: %v", ErrFrequency, fo)
	}
	elems := append([]float64(nil), g[1:len(g)-1]...)
	rs := complex(g[0], 0)
	load := g[len(g)-1]
	if g.Poles()%2 == 0 {
		load = 1 / load
	}
	rl := complex(load, 0)
	norm := complex(math.Sqrt(g[0]/load), 0)

	return func(freqHz float64, qu core.UnloadedQ) complex128 {
		wp := freqHz / fo
		loss := qu.Loss()
		vin := complex(1, 0)
		zin := rs
		for i, gi := range elems {
			if i%2 == 0 {
				y := complex(0, wp*gi)
				vin /= 1 + zin*y
				zin = 1 / (y + 1/zin)
			} else {
				zin += complex(wp*gi*loss, wp*gi)
			}
		}
		return 2 * vin * rl / (zin + rl) * norm
	}, nil
}
