package analysis

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-rftune/rf/core"
	"github.com/cwbudde/algo-rftune/rf/network"
)

// Response is an evaluator sampled on a frequency grid.
type Response struct {
	Freqs  []float64
	Values []complex128
}

// Sample evaluates fn at every frequency in freqs.
func Sample(fn network.Evaluator, freqs []float64, qu core.UnloadedQ) Response {
	return Response{
		Freqs:  append([]float64(nil), freqs...),
		Values: fn.Eval(freqs, qu),
	}
}

// Magnitude returns |H| for each sample.
func (r Response) Magnitude() []float64 {
	if len(r.Values) == 0 {
		return nil
	}
	re := make([]float64, len(r.Values))
	im := make([]float64, len(r.Values))
	for i, v := range r.Values {
		re[i] = real(v)
		im[i] = imag(v)
	}
	out := make([]float64, len(r.Values))
	vecmath.Magnitude(out, re, im)
	return out
}

// MagnitudeDB returns 20*log10|H| for each sample.
func (r Response) MagnitudeDB() []float64 {
	mag := r.Magnitude()
	for i, v := range mag {
		mag[i] = core.LinearToDB(v)
	}
	return mag
}

// LossDB returns -20*log10|H|, the return loss of a reflection response or
// the attenuation of a transmission response.
func (r Response) LossDB() []float64 {
	db := r.MagnitudeDB()
	for i := range db {
		db[i] = -db[i]
	}
	return db
}
