package analysis

import (
	"github.com/cwbudde/algo-rftune/rf/core"
	"github.com/cwbudde/algo-rftune/rf/groupdelay"
)

// Mismatch describes a filter designed for one termination but measured on
// a line of a different impedance.
type Mismatch struct {
	LineImpedance     float64 // ohms
	Termination       float64 // ohms
	InsertionLoss     float64 // -20*log10|S21(fo)| in dB, reflection included
	TransmissionDelay float64 // seconds
	InputQ            float64 // empirical external Q of resonator 1
	OutputQ           float64 // empirical external Q of resonator N
	Ness              NessTable
}

// Mismatch evaluates the design with the line and termination impedances
// of the sweep configuration. The Ness figures use a generator scaled by
// line/termination.
func (a *Analyzer) Mismatch(qu core.UnloadedQ) (Mismatch, error) {
	ratio := a.cfg.ImpedanceRatio()

	fwd := a.Prototype()
	fwd[0] *= ratio
	rev := a.g.Reverse()
	rev[0] *= ratio
	ness, err := nessTable(fwd, rev, a.bw, a.fo, qu)
	if err != nil {
		return Mismatch{}, err
	}

	s21 := a.nodal.Transmission(ratio)
	ql := a.fo / a.bw
	return Mismatch{
		LineImpedance:     a.cfg.LineImpedance,
		Termination:       a.cfg.Termination,
		InsertionLoss:     -s21.MagnitudeDB(a.fo, qu),
		TransmissionDelay: groupdelay.Numeric(s21, a.fo, qu),
		InputQ:            ql * a.qk[0] * ratio,
		OutputQ:           ql * a.qk[len(a.qk)-1] * ratio,
		Ness:              ness,
	}, nil
}

// Mismatched reports whether the line and termination impedances differ.
func (a *Analyzer) Mismatched() bool {
	return a.cfg.LineImpedance != a.cfg.Termination
}
