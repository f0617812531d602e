package timedomain

import "errors"

var (
	// ErrSamples reports fewer than two sweep points or mismatched slices.
	ErrSamples = errors.New("timedomain: need at least 2 matching sweep points")
	// ErrSpacing reports a non-increasing frequency grid.
	ErrSpacing = errors.New("timedomain: frequency spacing must be > 0")
	// ErrFrequency reports a non-positive centre frequency.
	ErrFrequency = errors.New("timedomain: center frequency must be > 0")
	// ErrPeriod reports a non-positive time window.
	ErrPeriod = errors.New("timedomain: period must be > 0")
)
