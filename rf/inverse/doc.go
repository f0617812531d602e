// Package inverse recovers coupled resonator parameters from measured Ness
// group delays and reflection magnitudes.
//
// Every function is a closed-form algebraic inversion; there is no search or
// fitting. Measurements that no physical resonator could produce are
// reported as [ErrInconsistentMeasurement] instead of NaN.
package inverse
