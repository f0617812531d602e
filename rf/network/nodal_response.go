package network

import (
	"math"

	"github.com/cwbudde/algo-rftune/rf/core"
)

// Reflection returns the S11 evaluator of the ladder terminated in re at both
// ports. re is the line impedance divided by the filter termination; 1 means
// matched.
//
// The ladder is folded from the load toward the source:
//
//	Zin ← 1 / (jωC + 1/(jωL) + 1/(ωL·Qu) + 1/Zin),  Zin ← Zin + 1/(jωCk)
//
// and S11 = (Zin - re)/(Zin + re).
func (n *Nodal) Reflection(re float64) Evaluator {
	l := append([]float64(nil), n.L...)
	c := append([]float64(nil), n.C...)
	ck := append([]float64(nil), n.Ck...)
	r := complex(re, 0)

	return func(freqHz float64, qu core.UnloadedQ) complex128 {
		w := 2 * math.Pi * freqHz
		loss := qu.Loss()
		zin := r
		for i := len(l) - 1; i >= 0; i-- {
			zin = 1 / (shuntAdmittance(w, l[i], c[i], loss) + 1/zin)
			if i > 0 {
				zin += seriesImpedance(w, ck[i-1])
			}
		}
		return (zin - r) / (zin + r)
	}
}

// Transmission returns the S21 evaluator of the ladder terminated in re at
// both ports.
//
// A Thevenin source is propagated from the generator toward the load: at
// each shunt resonator the open-circuit voltage is divided by the resonator
// admittance and the source impedance absorbs the resonator and the next
// coupling capacitor. S21 = 2·V(load).
func (n *Nodal) Transmission(re float64) Evaluator {
	l := append([]float64(nil), n.L...)
	c := append([]float64(nil), n.C...)
	ck := append([]float64(nil), n.Ck...)
	r := complex(re, 0)
	last := len(l) - 1

	return func(freqHz float64, qu core.UnloadedQ) complex128 {
		w := 2 * math.Pi * freqHz
		loss := qu.Loss()
		vin := complex(1, 0)
		zin := r
		for i := 0; i < last; i++ {
			y := shuntAdmittance(w, l[i], c[i], loss)
			vin /= 1 + zin*y
			zin = 1/(y+1/zin) + seriesImpedance(w, ck[i])
		}
		y := shuntAdmittance(w, l[last], c[last], loss) + 1/r
		return 2 * vin / (1 + zin*y)
	}
}

// shuntAdmittance is jωC + 1/(jωL) + 1/(ωL·Qu).
func shuntAdmittance(w, l, c, loss float64) complex128 {
	return complex(loss/(w*l), w*c-1/(w*l))
}

// seriesImpedance is 1/(jωC).
func seriesImpedance(w, c float64) complex128 {
	return complex(0, -1/(w*c))
}
