// Package groupdelay computes group delays of coupled resonator filters.
//
// Two independent methods are provided. [Numeric] differentiates the
// unwrapped phase of any [network.Evaluator] by a 1 Hz central difference and
// works at any frequency. [Resonators], [ResonatorDelay] and
// [ResonatorReflection] evaluate the Ness reflection delay of the filter
// with every resonator beyond node n detuned, in closed form: the lowpass
// ladder reactance and its exact derivative are carried through the
// continued fraction together, so no finite difference is involved.
//
// Delays are in the Ness sense (reflection at a resonator node) unless the
// numeric method is applied to a transmission evaluator.
package groupdelay
