// Package prototype converts between lowpass prototype element values (g) and
// normalized coupling coefficients (qk), and synthesizes Chebyshev prototypes.
//
// A filter with N resonators is described either by a [Prototype] of N+2
// values g0..g(N+1) or by a [Coupling] of N+1 values: the external coupling q1,
// the N-1 inter-resonator couplings k(i,i+1) and the external coupling qN. The
// two are duals; [ToPrototype] and [ToCoupling] convert between them.
//
// The conversions are fast paths and do not validate. Run [ValidateCoupling]
// or [ValidatePrototype] first when the input comes from outside.
package prototype
