package groupdelay

import (
	"math"

	"github.com/cwbudde/algo-rftune/rf/core"
	"github.com/cwbudde/algo-rftune/rf/network"
)

// DefaultStep is the frequency step in Hz of the numeric group delay.
const DefaultStep = 1.0

// Numeric returns the group delay in seconds of fn at freqHz, from the
// unwrapped phase at freqHz ± DefaultStep/2:
//
//	td = -Δφ / (2π·Δf)
func Numeric(fn network.Evaluator, freqHz float64, qu core.UnloadedQ) float64 {
	return NumericStep(fn, freqHz, qu, DefaultStep)
}

// NumericStep is [Numeric] with an explicit frequency step.
func NumericStep(fn network.Evaluator, freqHz float64, qu core.UnloadedQ, step float64) float64 {
	a := fn.Phase(freqHz-step/2, qu)
	b := fn.Phase(freqHz+step/2, qu)
	p := UnwrapPhase([]float64{a, b})
	return -(p[1] - p[0]) / (2 * math.Pi * step)
}

// NumericSweep returns [Numeric] at every frequency in freqs.
func NumericSweep(fn network.Evaluator, freqs []float64, qu core.UnloadedQ) []float64 {
	out := make([]float64, len(freqs))
	for i, f := range freqs {
		out[i] = Numeric(fn, f, qu)
	}
	return out
}
