package inverse

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-rftune/rf/core"
	"github.com/cwbudde/algo-rftune/rf/prototype"
)

// LosslessSubstitute stands in for an unbounded unloaded Q inside
// [RecoverK12], whose closed form has no lossless limit written out.
const LosslessSubstitute = 1e99

// RecoverQeQu returns the external Q and unloaded Q of the first resonator
// from its Ness group delay td (seconds) and reflection magnitude gamma at
// the centre frequency fo:
//
//	q  = (1 - |Γ|)/(1 + |Γ|)
//	Qe = ωo·td/4 · (1 - q²)
//	Qu = Qe/q
//
// |Γ| = 1 yields a lossless unloaded Q.
func RecoverQeQu(fo, td, gamma float64) (float64, core.UnloadedQ, error) {
	if !(fo > 0) || !(td > 0) {
		return 0, core.UnloadedQ{}, fmt.Errorf("%w: fo=%v td=%v", ErrInconsistentMeasurement, fo, td)
	}
	ma := math.Abs(gamma)
	if ma > 1 {
		return 0, core.UnloadedQ{}, fmt.Errorf("%w: |Γ|=%v exceeds 1", ErrInconsistentMeasurement, ma)
	}
	wo := 2 * math.Pi * fo
	q := (1 - ma) / (1 + ma)
	qe := wo * td / 4 * (1 - q*q)
	if q == 0 {
		return qe, core.Lossless(), nil
	}
	return qe, core.Finite(qe / q), nil
}

// RecoverK12 returns the coupling coefficient between resonators 1 and 2
// from the Ness delays td1 and td2 and the reflection magnitude gamma1 of
// resonator 1, all at fo. A lossless first resonator is evaluated with
// Qu = [LosslessSubstitute].
func RecoverK12(fo, td1, td2, gamma1 float64) (float64, error) {
	qe, u, err := RecoverQeQu(fo, td1, gamma1)
	if err != nil {
		return 0, err
	}
	if !(td2 > 0) {
		return 0, fmt.Errorf("%w: td2=%v", ErrInconsistentMeasurement, td2)
	}
	qu := u.Substitute(LosslessSubstitute)
	wo := 2 * math.Pi * fo
	a := qe * td2 * wo

	inner := -8*a + 4*qu*qu + a*a/(qe*qe)
	if inner < 0 {
		return 0, fmt.Errorf("%w: inner radicand %v", ErrInconsistentMeasurement, inner)
	}
	outer := -1/(qu*qu) + 2/a + math.Sqrt(inner)/(a*qu)
	if !(outer >= 0) {
		return 0, fmt.Errorf("%w: outer radicand %v", ErrInconsistentMeasurement, outer)
	}
	return math.Sqrt(outer), nil
}

// CouplingFromDelays returns the denormalized couplings Q1, K12 .. K(N-1)N,
// QN of a lossless filter from its N Ness delays at fo. Reflection delays
// seen from the input carry no information about the output coupling, so
// QN is reported equal to Q1 (a symmetric design).
//
// With Δ(n) = td(n) - td(n-2) and td(0) = td(-1) = 0:
//
//	Q1 = ωo·td(1)/4,  K(n,n+1) = 4/(ωo·sqrt(Δ(n)·Δ(n+1)))
func CouplingFromDelays(td []float64, fo float64) (prototype.Coupling, error) {
	if len(td) < 1 {
		return nil, fmt.Errorf("%w: no delays", ErrInconsistentMeasurement)
	}
	if !(fo > 0) {
		return nil, fmt.Errorf("%w: fo=%v", ErrInconsistentMeasurement, fo)
	}
	wo := 2 * math.Pi * fo

	delta := make([]float64, len(td))
	for i, v := range td {
		delta[i] = v
		if i >= 2 {
			delta[i] -= td[i-2]
		}
		if !(delta[i] > 0) {
			return nil, fmt.Errorf("%w: delay step %d is %v", ErrInconsistentMeasurement, i+1, delta[i])
		}
	}

	qk := make(prototype.Coupling, len(td)+1)
	qk[0] = wo * td[0] / 4
	for i := 0; i < len(td)-1; i++ {
		qk[i+1] = 4 / (wo * math.Sqrt(delta[i]*delta[i+1]))
	}
	qk[len(qk)-1] = qk[0]
	return qk, nil
}

// GammaFromReturnLoss converts a return loss in dB (positive) to |Γ|.
func GammaFromReturnLoss(db float64) float64 {
	return core.DBToLinear(-db)
}

// ReturnLossFromGamma converts |Γ| to a return loss in dB.
func ReturnLossFromGamma(gamma float64) float64 {
	return -core.LinearToDB(math.Abs(gamma))
}
