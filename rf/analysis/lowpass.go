package analysis

import (
	"fmt"

	"github.com/cwbudde/algo-rftune/rf/core"
	"github.com/cwbudde/algo-rftune/rf/groupdelay"
	"github.com/cwbudde/algo-rftune/rf/network"
	"github.com/cwbudde/algo-rftune/rf/prototype"
)

// LowpassDelayPeaks returns, for the prototype grounded at each node
// n = 2..N, the frequency and value of the largest S11 group delay on a
// grid over [0, 2·fo]. Only the grid size of opts is used.
func LowpassDelayPeaks(g prototype.Prototype, fo float64, qu core.UnloadedQ, opts ...core.SweepOption) (freqs, delays []float64, err error) {
	cfg := core.ApplySweepOptions(opts...)
	grid := core.Linspace(0, 2*fo, cfg.Steps)
	for n := 2; n <= g.Poles(); n++ {
		fn, err := network.LowpassReflection(g, fo, n)
		if err != nil {
			return nil, nil, err
		}
		f, td, err := delayPeak(fn, grid, qu)
		if err != nil {
			return nil, nil, fmt.Errorf("node %d: %w", n, err)
		}
		freqs = append(freqs, f)
		delays = append(delays, td)
	}
	return freqs, delays, nil
}

// LowpassDelayPeak returns the frequency and value of the largest S21 group
// delay of the prototype on a grid over [0, 2·fo].
func LowpassDelayPeak(g prototype.Prototype, fo float64, qu core.UnloadedQ, opts ...core.SweepOption) (freq, delay float64, err error) {
	fn, err := network.LowpassTransmission(g, fo)
	if err != nil {
		return 0, 0, err
	}
	cfg := core.ApplySweepOptions(opts...)
	return delayPeak(fn, core.Linspace(0, 2*fo, cfg.Steps), qu)
}

func delayPeak(fn network.Evaluator, grid []float64, qu core.UnloadedQ) (float64, float64, error) {
	td := groupdelay.NumericSweep(fn, grid, qu)
	i := argmax(td)
	if i < 0 {
		return 0, 0, ErrNoExtrema
	}
	return grid[i], td[i], nil
}
