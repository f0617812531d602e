package analysis

import (
	"math"

	"github.com/cwbudde/algo-rftune/rf/core"
)

// CutoffSpan returns the width of the band whose level stays within
// cutoffDB of the peak of levels (dB).
//
// The band edges are the grid points where |peak - level - cutoffDB| has a
// local minimum; the outermost pair is used so that passband ripple does not
// shorten the span.
func CutoffSpan(freqs, levels []float64, cutoffDB float64) (float64, error) {
	if err := checkSamples(freqs, levels); err != nil {
		return 0, err
	}
	peak := math.Inf(-1)
	for _, v := range levels {
		if v > peak {
			peak = v
		}
	}
	dev := make([]float64, len(levels))
	for i, v := range levels {
		dev[i] = math.Abs(peak - v - cutoffDB)
	}
	idx := localMinima(dev)
	if len(idx) == 0 {
		return 0, ErrNoExtrema
	}
	return freqs[idx[len(idx)-1]] - freqs[idx[0]], nil
}

// ExtremaSpan returns the distance between the outermost interior turning
// points (local maxima or minima) of values.
func ExtremaSpan(freqs, values []float64) (float64, error) {
	if err := checkSamples(freqs, values); err != nil {
		return 0, err
	}
	idx := turningPoints(values)
	if len(idx) == 0 {
		return 0, ErrNoExtrema
	}
	return freqs[idx[len(idx)-1]] - freqs[idx[0]], nil
}

// MinReturnLoss returns the median of the interior local minima of a return
// loss curve (dB, positive). These are the reflection peaks between the
// passband zeros; the median tolerates an asymmetric ripple. ok is false
// when the curve has no interior minimum.
func MinReturnLoss(returnLoss []float64) (rl float64, ok bool) {
	idx := localMinima(returnLoss)
	if len(idx) == 0 {
		return 0, false
	}
	vals := make([]float64, len(idx))
	for i, j := range idx {
		vals[i] = returnLoss[j]
	}
	return core.Median(vals), true
}

func checkSamples(freqs, values []float64) error {
	if len(freqs) < 3 || len(freqs) != len(values) {
		return ErrSamples
	}
	return nil
}

// slopeSigns returns sign(v[i+1]-v[i]) with 0 for flat steps.
func slopeSigns(v []float64) []float64 {
	if len(v) < 2 {
		return nil
	}
	s := make([]float64, len(v)-1)
	for i := range s {
		switch d := v[i+1] - v[i]; {
		case d > 0:
			s[i] = 1
		case d < 0:
			s[i] = -1
		}
	}
	return s
}

// localMinima returns the indices where the slope sign increases.
func localMinima(v []float64) []int {
	s := slopeSigns(v)
	var idx []int
	for i := 0; i+1 < len(s); i++ {
		if s[i+1]-s[i] > 0 {
			idx = append(idx, i+1)
		}
	}
	return idx
}

// turningPoints returns the indices where the slope sign changes.
func turningPoints(v []float64) []int {
	s := slopeSigns(v)
	var idx []int
	for i := 0; i+1 < len(s); i++ {
		if s[i+1] != s[i] {
			idx = append(idx, i+1)
		}
	}
	return idx
}

// argmax returns the index of the largest non-NaN value, or -1.
func argmax(v []float64) int {
	best := -1
	for i, x := range v {
		if math.IsNaN(x) {
			continue
		}
		if best < 0 || x > v[best] {
			best = i
		}
	}
	return best
}
