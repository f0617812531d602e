package analysis

import (
	"errors"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-rftune/rf/core"
	"github.com/cwbudde/algo-rftune/rf/groupdelay"
	"github.com/cwbudde/algo-rftune/rf/network"
	"github.com/cwbudde/algo-rftune/rf/prototype"
)

// Metrics holds the design-level figures of a bandpass filter.
type Metrics struct {
	DelayBandwidth    float64 // span between the twin S21 group-delay peaks in Hz
	Bandwidth         float64 // cutoff bandwidth of |S21| in Hz
	TransmissionDelay float64 // S21 group delay at fo in seconds
	ReturnLoss        float64 // minimum in-band return loss in dB
	InsertionLoss     float64 // dissipation loss at fo in dB
	CohnLoss          float64 // Cohn's estimate of InsertionLoss in dB
	LoadedQ           float64 // fo/bw
	NormalizedQo      float64 // Qu/QL, +Inf for a lossless design
}

// NessTable holds Ness group delays (seconds) and reflection magnitudes at fo
// for resonators 1..n tuned, measured from the input (Delay, Reflection) and
// from the output (ReverseDelay, ReverseReflection).
type NessTable struct {
	Delay             []float64
	Reflection        []float64
	ReverseDelay      []float64
	ReverseReflection []float64
}

// Analyzer evaluates one filter design: a set of normalized couplings
// realized as a nodal network with bandwidth bw around fo.
type Analyzer struct {
	qk  prototype.Coupling
	g   prototype.Prototype
	bw  float64
	fo  float64
	cfg core.SweepConfig

	nodal *network.Nodal
	s11   network.Evaluator
	s21   network.Evaluator
}

// NewAnalyzer validates qk and synthesizes its nodal network.
func NewAnalyzer(qk prototype.Coupling, bw, fo float64, opts ...core.SweepOption) (*Analyzer, error) {
	if err := prototype.ValidateCoupling(qk, 0); err != nil {
		return nil, err
	}
	return newAnalyzer(qk, prototype.ToPrototype(qk), bw, fo, opts)
}

// NewAnalyzerFromPrototype is [NewAnalyzer] for lowpass prototype values.
// g is kept as given for the Ness computations.
func NewAnalyzerFromPrototype(g prototype.Prototype, bw, fo float64, opts ...core.SweepOption) (*Analyzer, error) {
	if err := prototype.ValidatePrototype(g, 0); err != nil {
		return nil, err
	}
	return newAnalyzer(prototype.ToCoupling(g), g, bw, fo, opts)
}

func newAnalyzer(qk prototype.Coupling, g prototype.Prototype, bw, fo float64, opts []core.SweepOption) (*Analyzer, error) {
	nodal, err := network.SynthesizeNodal(qk, bw, fo)
	if err != nil {
		return nil, err
	}
	return &Analyzer{
		qk:    append(prototype.Coupling(nil), qk...),
		g:     append(prototype.Prototype(nil), g...),
		bw:    bw,
		fo:    fo,
		cfg:   core.ApplySweepOptions(opts...),
		nodal: nodal,
		s11:   nodal.Reflection(1),
		s21:   nodal.Transmission(1),
	}, nil
}

// Poles returns the number of resonators.
func (a *Analyzer) Poles() int { return a.qk.Poles() }

// Coupling returns a copy of the normalized couplings.
func (a *Analyzer) Coupling() prototype.Coupling {
	return append(prototype.Coupling(nil), a.qk...)
}

// Prototype returns a copy of the lowpass prototype values.
func (a *Analyzer) Prototype() prototype.Prototype {
	return append(prototype.Prototype(nil), a.g...)
}

// Denormalized returns the external Qs and coupling coefficients.
func (a *Analyzer) Denormalized() prototype.Coupling {
	return prototype.Denormalize(a.qk, a.bw, a.fo)
}

// Network returns the synthesized nodal ladder.
func (a *Analyzer) Network() *network.Nodal { return a.nodal }

// Config returns the sweep configuration.
func (a *Analyzer) Config() core.SweepConfig { return a.cfg }

// Grid returns the analysis frequencies fo ± Span·bw.
func (a *Analyzer) Grid() []float64 {
	half := a.cfg.Span * a.bw
	return core.Linspace(a.fo-half, a.fo+half, a.cfg.Steps)
}

// Reflection samples the matched S11 on the analysis grid.
func (a *Analyzer) Reflection(qu core.UnloadedQ) Response {
	return Sample(a.s11, a.Grid(), qu)
}

// Transmission samples the matched S21 on the analysis grid.
func (a *Analyzer) Transmission(qu core.UnloadedQ) Response {
	return Sample(a.s21, a.Grid(), qu)
}

// TransmissionDelay returns the S21 group delay at fo.
func (a *Analyzer) TransmissionDelay(qu core.UnloadedQ) float64 {
	return groupdelay.Numeric(a.s21, a.fo, qu)
}

// TransmissionDelays returns the S21 group delay on the analysis grid.
func (a *Analyzer) TransmissionDelays(qu core.UnloadedQ) []float64 {
	return groupdelay.NumericSweep(a.s21, a.Grid(), qu)
}

// ReturnLoss returns the approximate minimum in-band return loss in dB. A
// response without interior reflection peaks falls back to the return loss
// at fo.
func (a *Analyzer) ReturnLoss(qu core.UnloadedQ) float64 {
	if rl, ok := MinReturnLoss(a.Reflection(qu).LossDB()); ok {
		return rl
	}
	return -core.LinearToDB(cmplx.Abs(a.s11(a.fo, qu)))
}

// Bandwidth3dB returns the span over which |S21| stays within the
// configured cutoff (3.0103 dB by default) of its peak.
func (a *Analyzer) Bandwidth3dB(qu core.UnloadedQ) (float64, error) {
	resp := a.Transmission(qu)
	return CutoffSpan(resp.Freqs, resp.MagnitudeDB(), a.cfg.CutoffDB)
}

// DelayBandwidth returns the span between the outermost turning points of
// the S21 group delay, i.e. the twin delay peaks of the passband edges.
func (a *Analyzer) DelayBandwidth(qu core.UnloadedQ) (float64, error) {
	return ExtremaSpan(a.Grid(), a.TransmissionDelays(qu))
}

// InsertionLoss returns the loss at fo caused by dissipation alone: the
// difference between the lossless and the lossy |S21| in dB.
func (a *Analyzer) InsertionLoss(qu core.UnloadedQ) float64 {
	return a.s21.MagnitudeDB(a.fo, core.Lossless()) - a.s21.MagnitudeDB(a.fo, qu)
}

// CohnLoss returns Cohn's closed-form estimate of [Analyzer.InsertionLoss].
func (a *Analyzer) CohnLoss(qu core.UnloadedQ) float64 {
	return prototype.InsertionLoss(a.g, a.bw, a.fo, qu)
}

// Ness returns the Ness delays and reflections from both ends.
func (a *Analyzer) Ness(qu core.UnloadedQ) (NessTable, error) {
	return nessTable(a.g, a.g.Reverse(), a.bw, a.fo, qu)
}

func nessTable(fwd, rev prototype.Prototype, bw, fo float64, qu core.UnloadedQ) (NessTable, error) {
	var t NessTable
	var err error
	t.Delay, t.Reflection, err = groupdelay.Resonators(fwd, bw, fo, qu)
	if err != nil {
		return NessTable{}, err
	}
	t.ReverseDelay, t.ReverseReflection, err = groupdelay.Resonators(rev, bw, fo, qu)
	if err != nil {
		return NessTable{}, err
	}
	return t, nil
}

// Analyze computes all design metrics. Bandwidths that cannot be located on
// the grid are reported as NaN rather than failing the whole analysis.
func (a *Analyzer) Analyze(qu core.UnloadedQ) (Metrics, error) {
	m := Metrics{
		TransmissionDelay: a.TransmissionDelay(qu),
		ReturnLoss:        a.ReturnLoss(qu),
		InsertionLoss:     a.InsertionLoss(qu),
		CohnLoss:          a.CohnLoss(qu),
		LoadedQ:           a.fo / a.bw,
	}
	m.NormalizedQo = qu.Value() / m.LoadedQ

	var err error
	if m.Bandwidth, err = a.Bandwidth3dB(qu); err != nil {
		if !errors.Is(err, ErrNoExtrema) {
			return Metrics{}, err
		}
		m.Bandwidth = math.NaN()
	}
	if m.DelayBandwidth, err = a.DelayBandwidth(qu); err != nil {
		if !errors.Is(err, ErrNoExtrema) {
			return Metrics{}, err
		}
		m.DelayBandwidth = math.NaN()
	}
	return m, nil
}
