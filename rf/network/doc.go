// Package network synthesizes the nodal ladder equivalent of a coupled
// resonator filter and builds scattering-parameter evaluators for it.
//
// A [Nodal] network is a chain of shunt parallel-LC resonators joined by
// series coupling capacitors, referenced to 1 ohm. Its [Nodal.Reflection] and
// [Nodal.Transmission] evaluators fold the ladder as a continued fraction for
// each frequency. Element values are fixed when the evaluator is built, so an
// [Evaluator] is a pure function that can be called any number of times, from
// any goroutine.
//
// [LowpassReflection] and [LowpassTransmission] do the same for the lowpass
// prototype ladder itself.
package network
