package prototype

import "github.com/cwbudde/algo-rftune/rf/core"

// InsertionLoss returns Cohn's approximation of the midband dissipation loss
// in dB of a bandpass filter built from g with uniform unloaded Q:
//
//	IL ≈ 4.343 · fo/(Qu·bw) · Σ g(1..N)
//
// A lossless resonator yields 0.
func InsertionLoss(g Prototype, bw, fo float64, qu core.UnloadedQ) float64 {
	if len(g) < 3 {
		return 0
	}
	var sum float64
	for _, v := range g[1 : len(g)-1] {
		sum += v
	}
	return 4.343 * fo * qu.Loss() / bw * sum
}
