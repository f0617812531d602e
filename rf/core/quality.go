package core

import (
	"math"
	"strconv"
)

// UnloadedQ is the unloaded quality factor of a resonator.
//
// The zero value is lossless. Formulas consume [UnloadedQ.Loss], which is
// exactly zero for a lossless resonator, so no IEEE infinity travels through
// the arithmetic. Formulas that genuinely need a finite stand-in must ask for
// one via [UnloadedQ.Substitute].
type UnloadedQ struct {
	q      float64
	finite bool
}

// Lossless returns the unbounded-Q sentinel.
func Lossless() UnloadedQ { return UnloadedQ{} }

// Finite returns a finite unloaded Q. The value is not validated; a
// non-positive q is a domain error that shows up as NaN/Inf downstream.
func Finite(q float64) UnloadedQ { return UnloadedQ{q: q, finite: true} }

// FromFloat maps +Inf to [Lossless] and any other value to [Finite].
func FromFloat(q float64) UnloadedQ {
	if math.IsInf(q, 1) {
		return Lossless()
	}
	return Finite(q)
}

// IsLossless reports whether the resonator has no dissipation.
func (u UnloadedQ) IsLossless() bool { return !u.finite }

// Value returns the quality factor, +Inf for a lossless resonator.
// Intended for display; formulas should use Loss.
func (u UnloadedQ) Value() float64 {
	if !u.finite {
		return math.Inf(1)
	}
	return u.q
}

// Loss returns 1/Qu, zero for a lossless resonator.
func (u UnloadedQ) Loss() float64 {
	if !u.finite {
		return 0
	}
	return 1 / u.q
}

// Substitute returns the finite Q, or large when the resonator is lossless.
func (u UnloadedQ) Substitute(large float64) float64 {
	if !u.finite {
		return large
	}
	return u.q
}

// String formats the value; the lossless sentinel prints as "inf".
func (u UnloadedQ) String() string {
	if !u.finite {
		return "inf"
	}
	return strconv.FormatFloat(u.q, 'g', -1, 64)
}
