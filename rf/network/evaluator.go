package network

import (
	"math/cmplx"

	"github.com/cwbudde/algo-rftune/rf/core"
)

// Evaluator returns a complex scattering parameter at freqHz for a
// resonator unloaded Q.
type Evaluator func(freqHz float64, qu core.UnloadedQ) complex128

// MagnitudeDB returns 20*log10|fn(freqHz, qu)|.
func (fn Evaluator) MagnitudeDB(freqHz float64, qu core.UnloadedQ) float64 {
	return core.LinearToDB(cmplx.Abs(fn(freqHz, qu)))
}

// Phase returns arg fn(freqHz, qu) in radians.
func (fn Evaluator) Phase(freqHz float64, qu core.UnloadedQ) float64 {
	return cmplx.Phase(fn(freqHz, qu))
}

// Eval evaluates fn at each frequency.
func (fn Evaluator) Eval(freqs []float64, qu core.UnloadedQ) []complex128 {
	out := make([]complex128, len(freqs))
	for i, f := range freqs {
		out[i] = fn(f, qu)
	}
	return out
}
