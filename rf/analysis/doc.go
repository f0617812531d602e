// Package analysis extracts performance figures of a coupled resonator
// filter from sampled responses.
//
// None of the figures has a closed form for a general design, so they are
// read off a fixed frequency grid (by default 1000 points over fo ± 2·bw)
// and their precision is bounded by the grid spacing. There is no
// refinement step.
//
// [Analyzer.Bandwidth3dB] and [Analyzer.DelayBandwidth] assume the
// transmission response has a flat top with two group-delay peaks at the
// band edges, as Chebyshev and Butterworth designs do. For filter families
// without twin delay peaks (Bessel, Gaussian, linear phase) the numbers are
// still returned but may be physically meaningless.
package analysis
