package groupdelay

import "errors"

var (
	// ErrNode reports a resonator node outside 1..N.
	ErrNode = errors.New("groupdelay: resonator node out of range")
	// ErrBandwidth reports a non-positive design bandwidth.
	ErrBandwidth = errors.New("groupdelay: bandwidth must be > 0")
	// ErrFrequency reports a non-positive centre frequency.
	ErrFrequency = errors.New("groupdelay: center frequency must be > 0")
)
