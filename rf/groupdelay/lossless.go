package groupdelay

import (
	"math"

	"github.com/cwbudde/algo-rftune/rf/core"
	"github.com/cwbudde/algo-rftune/rf/prototype"
)

// LosslessPrototype returns the N lossless Ness group delays at the centre
// frequency of a bandpass filter with bandwidth bw built from g. Entry n-1
// is the delay seen with resonators 1..n tuned:
//
//	td(n) = 4/Δω · (g(n) + g(n-2) + ...) · g0^(±1)
//
// with g0 multiplying when n is odd and dividing when n is even.
func LosslessPrototype(g prototype.Prototype, bw float64) []float64 {
	if len(g) < 3 {
		return nil
	}
	dw := 2 * math.Pi * bw
	td := make([]float64, 0, len(g)-2)
	for i := 2; i < len(g); i++ {
		var sum float64
		for j := i%2 + 1; j < i; j += 2 {
			sum += g[j]
		}
		scale := g[0]
		if i%2 == 1 {
			scale = 1 / g[0]
		}
		td = append(td, 4/dw*sum*scale)
	}
	return td
}

// LosslessCoupling returns the same delays as [LosslessPrototype] directly
// from the normalized couplings qk.
func LosslessCoupling(qk prototype.Coupling, bw float64) []float64 {
	if len(qk) < 2 {
		return nil
	}
	qb := qk[0] / bw
	kb := make([]float64, len(qk)-2)
	for i := range kb {
		kb[i] = qk[i+1] * bw
	}

	td := make([]float64, len(qk)+1)
	for i := 2; i < len(td); i++ {
		ratio := qb
		for j := 0; j < i-2; j++ {
			if j%2 == 0 {
				ratio *= kb[j] * kb[j]
			} else {
				ratio /= kb[j] * kb[j]
			}
		}
		if i%2 == 1 {
			ratio = 1 / ratio
		}
		td[i] = td[i-2] + 2/math.Pi*ratio
	}
	return td[2:]
}

// ExternalReflection returns the reflection coefficient at resonance of the
// input and output resonators alone for unloaded Q qu:
//
//	Γ = (1 - Qe/Qu) / (1 + Qe/Qu)
func ExternalReflection(qk prototype.Coupling, bw, fo float64, qu core.UnloadedQ) (in, out float64) {
	qe := prototype.Denormalize(qk, bw, fo)
	r := func(q float64) float64 {
		x := q * qu.Loss()
		return (1 - x) / (1 + x)
	}
	return r(qe[0]), r(qe[len(qe)-1])
}
