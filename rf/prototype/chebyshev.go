package prototype

import (
	"fmt"
	"math"
)

// Chebyshev returns the lowpass prototype of an n-pole Chebyshev filter with
// the given passband ripple in dB.
//
// The closed form follows Matthaei, Young and Jones, "Microwave Filters,
// Impedance-Matching Networks, and Coupling Structures", p. 99. g0 = 1 and the
// load g(n+1) is 1 for odd n and coth²(β/4) for even n.
func Chebyshev(n int, rippleDB float64) (Prototype, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrPoleCount, n)
	}
	if !(rippleDB > 0) {
		return nil, fmt.Errorf("%w: %v", ErrRipple, rippleDB)
	}

	beta := math.Log(1 / math.Tanh(rippleDB/(40/math.Ln10)))
	gamma := math.Sinh(beta / (2 * float64(n)))

	a := make([]float64, n)
	b := make([]float64, n)
	for k := 1; k <= n; k++ {
		a[k-1] = math.Sin(float64(2*k-1) * math.Pi / (2 * float64(n)))
		s := math.Sin(float64(k) * math.Pi / float64(n))
		b[k-1] = gamma*gamma + s*s
	}

	g := make(Prototype, n+2)
	for i := range g {
		g[i] = 1
	}
	g[1] = 2 * a[0] / gamma
	for i := 2; i <= n; i++ {
		g[i] = 4 * a[i-2] * a[i-1] / (b[i-2] * g[i-1])
	}
	if n%2 == 0 {
		t := math.Tanh(beta / 4)
		g[n+1] = 1 / (t * t)
	}
	return g, nil
}
