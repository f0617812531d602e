// Package timedomain converts swept reflection data into a time-domain
// view, the way a network analyzer's gating display shows where along a
// filter the reflections come from.
//
// The sweep is treated as a one-sided band-pass spectrum: a DC zero is
// prepended, a Kaiser window suppresses the truncation sidelobes and an
// inverse FFT produces the time response. Tuning each resonator then shows
// up as a dip at its own round-trip time.
package timedomain
