package prototype

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrShape reports a coefficient array whose length does not match the
	// expected pole count.
	ErrShape = errors.New("prototype: coefficient count does not match pole count")
	// ErrNonPositive reports a zero, negative or non-finite coefficient.
	ErrNonPositive = errors.New("prototype: coefficients must be positive and finite")
	// ErrPoleCount reports a pole count below one.
	ErrPoleCount = errors.New("prototype: pole count must be >= 1")
	// ErrRipple reports a non-positive passband ripple.
	ErrRipple = errors.New("prototype: ripple must be > 0 dB")
)

// ValidateCoupling checks that qk describes an n-pole filter with positive
// values. n <= 0 accepts any pole count of at least one.
func ValidateCoupling(qk Coupling, n int) error {
	if len(qk) < 2 || (n > 0 && len(qk) != n+1) {
		return fmt.Errorf("%w: %d coupling values for %d poles", ErrShape, len(qk), n)
	}
	return validatePositive(qk)
}

// ValidatePrototype checks that g describes an n-pole filter with positive
// values. n <= 0 accepts any pole count of at least one.
func ValidatePrototype(g Prototype, n int) error {
	if len(g) < 3 || (n > 0 && len(g) != n+2) {
		return fmt.Errorf("%w: %d prototype values for %d poles", ErrShape, len(g), n)
	}
	return validatePositive(g)
}

func validatePositive(values []float64) error {
	for i, v := range values {
		if !(v > 0) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: index %d is %v", ErrNonPositive, i, v)
		}
	}
	return nil
}
