package groupdelay

import "math"

// UnwrapPhase returns a new phase slice with 2π discontinuities removed.
// Jumps larger than π between neighbours are folded back into (-π, π].
func UnwrapPhase(phase []float64) []float64 {
	if len(phase) == 0 {
		return nil
	}
	out := make([]float64, len(phase))
	out[0] = phase[0]
	offset := 0.0
	for i := 1; i < len(phase); i++ {
		d := phase[i] - phase[i-1]
		if math.Abs(d) > math.Pi {
			offset -= 2 * math.Pi * math.Round(d/(2*math.Pi))
		}
		out[i] = phase[i] + offset
	}
	return out
}
