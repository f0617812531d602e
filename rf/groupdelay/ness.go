package groupdelay

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-rftune/rf/core"
	"github.com/cwbudde/algo-rftune/rf/network"
	"github.com/cwbudde/algo-rftune/rf/prototype"
)

// DelayEvaluator returns a group delay in seconds at freqHz for a resonator
// unloaded Q.
type DelayEvaluator func(freqHz float64, qu core.UnloadedQ) float64

// ness holds the ladder g1..gn of a prototype grounded after node n,
// translated to a bandpass design.
type ness struct {
	elems []float64
	g0    float64
	bw    float64
	fo    float64
}

func newNess(g prototype.Prototype, bw, fo float64, n int) (ness, error) {
	if n < 1 || n > g.Poles() {
		return ness{}, fmt.Errorf("%w: node %d of %d", ErrNode, n, g.Poles())
	}
	if !(bw > 0) {
		return ness{}, fmt.Errorf("%w: %v", ErrBandwidth, bw)
	}
	if !(fo > 0) {
		return ness{}, fmt.Errorf("%w: %v", ErrFrequency, fo)
	}
	return ness{
		elems: append([]float64(nil), g[1:n+1]...),
		g0:    g[0],
		bw:    bw,
		fo:    fo,
	}, nil
}

// lowpass maps a bandpass frequency to the complex lowpass variable
//
//	wp = ωo/Δω·(ω/ωo - ωo/ω) - j·ωo/(Qu·Δω)
//
// written in terms of f-fo so the narrow-band difference is exact.
func (s ness) lowpass(f, loss float64) complex128 {
	return complex((f-s.fo)*(f+s.fo)/(f*s.bw), -s.fo*loss/s.bw)
}

// slope returns dwp/dω.
func (s ness) slope(f float64) float64 {
	r := s.fo / f
	return (1 + r*r) / (2 * math.Pi * s.bw)
}

// reactance returns the lowpass input reactance X(wp) of the grounded ladder
// together with its exact derivative dX/dwp. Shunt elements (odd) fold as
// X ← 1/(-wp·g + 1/X), series elements (even) as X ← X + wp·g; a shunt
// element at the grounded end starts the fraction at -1/(wp·g).
func (s ness) reactance(wp complex128) (x, dx complex128) {
	last := len(s.elems)
	for i := last; i >= 1; i-- {
		g := complex(s.elems[i-1], 0)
		G := wp * g
		switch {
		case i%2 == 0:
			x += G
			dx += g
		case i == last:
			x = -1 / G
			dx = g / (G * G)
		default:
			y := -G + 1/x
			dy := -g - dx/(x*x)
			x = 1 / y
			dx = -dy / (y * y)
		}
	}
	return x, dx
}

// reflection returns S11 = (jX - g0)/(jX + g0).
func (s ness) reflection(x complex128) complex128 {
	g0 := complex(s.g0, 0)
	jx := complex(0, 1) * x
	return (jx - g0) / (jx + g0)
}

// delay returns the complex group delay -dwp/dω · dφ/dwp with
// φ = -2·atan(X/g0). Its real part is the phase derivative of S11.
func (s ness) delay(f, loss float64) complex128 {
	x, dx := s.reactance(s.lowpass(f, loss))
	g0 := complex(s.g0, 0)
	dphi := -2 * g0 * dx / (g0*g0 + x*x)
	return -complex(s.slope(f), 0) * dphi
}

// ResonatorReflection returns the evaluator of the Ness reflection S11 of
// the bandpass filter built from g, measured with resonators 1..n tuned and
// the rest detuned.
func ResonatorReflection(g prototype.Prototype, bw, fo float64, n int) (network.Evaluator, error) {
	s, err := newNess(g, bw, fo, n)
	if err != nil {
		return nil, err
	}
	return func(freqHz float64, qu core.UnloadedQ) complex128 {
		x, _ := s.reactance(s.lowpass(freqHz, qu.Loss()))
		return s.reflection(x)
	}, nil
}

// ResonatorDelay returns the closed-form group delay evaluator matching
// [ResonatorReflection]. The value is the derivative of the reflection
// phase, so it agrees with [Numeric] applied to the reflection evaluator.
func ResonatorDelay(g prototype.Prototype, bw, fo float64, n int) (DelayEvaluator, error) {
	s, err := newNess(g, bw, fo, n)
	if err != nil {
		return nil, err
	}
	return func(freqHz float64, qu core.UnloadedQ) float64 {
		return real(s.delay(freqHz, qu.Loss()))
	}, nil
}

// Resonators returns the Ness group delay td and reflection magnitude ma at
// the centre frequency for n = 1..N. A lossless qu uses [LosslessPrototype]
// with unit reflection, since the closed form is singular at wp = 0.
func Resonators(g prototype.Prototype, bw, fo float64, qu core.UnloadedQ) (td, ma []float64, err error) {
	n := g.Poles()
	if n < 1 {
		return nil, nil, fmt.Errorf("%w: %d poles", ErrNode, n)
	}
	if qu.IsLossless() {
		if !(bw > 0) {
			return nil, nil, fmt.Errorf("%w: %v", ErrBandwidth, bw)
		}
		td = LosslessPrototype(g, bw)
		ma = make([]float64, n)
		for i := range ma {
			ma[i] = 1
		}
		return td, ma, nil
	}

	td = make([]float64, n)
	ma = make([]float64, n)
	for i := 1; i <= n; i++ {
		s, err := newNess(g, bw, fo, i)
		if err != nil {
			return nil, nil, err
		}
		x, _ := s.reactance(s.lowpass(fo, qu.Loss()))
		ma[i-1] = cmplx.Abs(s.reflection(x))
		td[i-1] = real(s.delay(fo, qu.Loss()))
	}
	return td, ma, nil
}
