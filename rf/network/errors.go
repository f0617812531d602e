package network

import "errors"

var (
	// ErrBandwidth reports a non-positive design bandwidth.
	ErrBandwidth = errors.New("network: bandwidth must be > 0")
	// ErrFrequency reports a non-positive centre frequency.
	ErrFrequency = errors.New("network: center frequency must be > 0")
	// ErrTopology reports a coupling set too short to describe a resonator.
	ErrTopology = errors.New("network: at least one resonator is required")
	// ErrNode reports a grounding node outside 1..N.
	ErrNode = errors.New("network: grounding node out of range")
)
