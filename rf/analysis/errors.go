package analysis

import "errors"

var (
	// ErrSamples reports mismatched or too short sample slices.
	ErrSamples = errors.New("analysis: need at least 3 matching samples")
	// ErrNoExtrema reports a curve without the turning points an extractor
	// relies on.
	ErrNoExtrema = errors.New("analysis: no interior extrema in sampled window")
)
