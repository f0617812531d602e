package timedomain

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-rftune/rf/core"
)

// Option configures [Transform].
type Option func(*config)

type config struct {
	beta float64
}

// WithBeta sets the Kaiser window shape. Non-positive values select a
// rectangular window.
func WithBeta(beta float64) Option {
	return func(c *config) {
		c.beta = beta
	}
}

// Result is a time-domain response.
type Result struct {
	// Time holds the sample times in seconds, starting at 0.
	Time []float64
	// Level holds 20*log10 of the response magnitude.
	Level []float64
}

// Transform returns the time-domain view of the reflection sweep gamma
// taken on the uniform grid freqs.
//
// With N = len(freqs)+1 points after the DC zero, the windowed spectrum is
// inverse transformed at a length M >= 2N-1 (the next power of two) and the
// first N bins are returned. Bin i lies at i/(M·Δf); levels are scaled as
// for a transform of length 2N-1.
func Transform(freqs []float64, gamma []complex128, opts ...Option) (Result, error) {
	if len(freqs) < 2 || len(freqs) != len(gamma) {
		return Result{}, fmt.Errorf("%w: %d frequencies, %d samples", ErrSamples, len(freqs), len(gamma))
	}
	df := freqs[1] - freqs[0]
	if !(df > 0) {
		return Result{}, fmt.Errorf("%w: %v", ErrSpacing, df)
	}

	cfg := config{beta: DefaultBeta}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	n := len(gamma) + 1
	re := make([]float64, n)
	im := make([]float64, n)
	for i, v := range gamma {
		re[i+1] = real(v)
		im[i+1] = imag(v)
	}
	if cfg.beta > 0 {
		w := kaiser(n, cfg.beta)
		vecmath.MulBlockInPlace(re, w)
		vecmath.MulBlockInPlace(im, w)
	}

	m := nextPowerOf2(2*n - 1)
	plan, err := algofft.NewPlan64(m)
	if err != nil {
		return Result{}, fmt.Errorf("timedomain: failed to create FFT plan: %w", err)
	}
	spec := make([]complex128, m)
	for i := range re {
		spec[i] = complex(re[i], im[i])
	}
	out := make([]complex128, m)
	if err := plan.Inverse(out, spec); err != nil {
		return Result{}, fmt.Errorf("timedomain: inverse FFT failed: %w", err)
	}

	for i := 0; i < n; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}
	level := make([]float64, n)
	vecmath.Magnitude(level, re, im)
	vecmath.ScaleBlock(level, level, float64(m)/float64(2*n-1))
	for i, v := range level {
		level[i] = core.LinearToDB(v)
	}

	t := make([]float64, n)
	for i := range t {
		t[i] = float64(i) / (float64(m) * df)
	}
	return Result{Time: t, Level: level}, nil
}

// Span returns n frequencies centred on fo whose spacing divides fo and is
// fine enough for a time window of length period (Δf <= 1/(2·period)).
func Span(fo, period float64, n int) ([]float64, error) {
	if !(period > 0) {
		return nil, fmt.Errorf("%w: %v", ErrPeriod, period)
	}
	if !(fo > 0) {
		return nil, fmt.Errorf("%w: %v", ErrFrequency, fo)
	}
	if n < 2 {
		return nil, fmt.Errorf("%w: n=%d", ErrSamples, n)
	}
	df := 1 / (2 * period)
	df = fo / math.Ceil(fo/df)
	half := float64(n-1) * df / 2
	return core.Linspace(fo-half, fo+half, n), nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
