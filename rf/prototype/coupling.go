package prototype

import "math"

// Coupling holds normalized coupling coefficients q1, k12 .. k(N-1)N, qN.
type Coupling []float64

// Prototype holds lowpass prototype element values g0 .. g(N+1).
type Prototype []float64

// Poles returns the number of resonators N.
func (qk Coupling) Poles() int { return len(qk) - 1 }

// Poles returns the number of resonators N.
func (g Prototype) Poles() int { return len(g) - 2 }

// Reverse returns the coefficients of the same filter seen from its far end.
// The result never shares storage with qk.
func (qk Coupling) Reverse() Coupling {
	out := make(Coupling, len(qk))
	for i, v := range qk {
		out[len(qk)-1-i] = v
	}
	return out
}

// Reverse returns the prototype seen from its far end, so out[0] is the
// former load g(N+1). The result never shares storage with g.
func (g Prototype) Reverse() Prototype {
	out := make(Prototype, len(g))
	for i, v := range g {
		out[len(g)-1-i] = v
	}
	return out
}

// ToPrototype converts qk to lowpass prototype values with g0 = 1.
func ToPrototype(qk Coupling) Prototype {
	return ToPrototypeG0(qk, 1)
}

// ToPrototypeG0 converts qk to lowpass prototype values for the generator
// value g0. The recurrence is
//
//	g1 = q1/g0,  g(i+1) = 1/(k(i,i+1)² g(i)),  g(N+1) = qN/g(N).
func ToPrototypeG0(qk Coupling, g0 float64) Prototype {
	if len(qk) < 2 {
		return nil
	}
	g := make(Prototype, len(qk)+1)
	g[0] = g0
	g[1] = qk[0] / g[0]
	for i := 1; i < len(g)-2; i++ {
		g[i+1] = 1 / (qk[i] * qk[i] * g[i])
	}
	g[len(g)-1] = qk[len(qk)-1] / g[len(g)-2]
	return g
}

// ToCoupling converts lowpass prototype values to normalized couplings:
// q1 = g0·g1, qN = g(N)·g(N+1) and k(i,i+1) = 1/sqrt(g(i)·g(i+1)).
func ToCoupling(g Prototype) Coupling {
	if len(g) < 3 {
		return nil
	}
	qk := make(Coupling, len(g)-1)
	qk[0] = g[0] * g[1]
	for i := 1; i < len(qk)-1; i++ {
		qk[i] = 1 / math.Sqrt(g[i]*g[i+1])
	}
	n := len(qk) - 1
	qk[n] = g[n] * g[n+1]
	return qk
}

// Denormalize scales qk to a bandpass design with loaded Q = fo/bw: the
// external couplings become external Qs (×Ql) and the inter-resonator
// couplings become coupling coefficients (÷Ql).
func Denormalize(qk Coupling, bw, fo float64) Coupling {
	ql := fo / bw
	out := make(Coupling, len(qk))
	for i, v := range qk {
		if i == 0 || i == len(qk)-1 {
			out[i] = v * ql
		} else {
			out[i] = v / ql
		}
	}
	return out
}
