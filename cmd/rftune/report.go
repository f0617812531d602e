package main

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-rftune/internal/logger"
	"github.com/cwbudde/algo-rftune/rf/analysis"
	"github.com/cwbudde/algo-rftune/rf/core"
	"github.com/cwbudde/algo-rftune/rf/groupdelay"
	"github.com/cwbudde/algo-rftune/rf/inverse"
	"github.com/cwbudde/algo-rftune/rf/timedomain"
)

// validation holds parameters recovered from the report's own Ness delays.
type validation struct {
	qeIn, qeOut float64
	quIn, quOut core.UnloadedQ
	kIn, kOut   float64
	// Errors of the Qe/Qu and K recoveries; the values are meaningless when set.
	qInErr, qOutErr error
	kInErr, kOutErr error
}

// lowpassPeaks holds the lowpass prototype delay peaks.
type lowpassPeaks struct {
	nodeFreqs  []float64
	nodeDelays []float64
	s21Freq    float64
	s21Delay   float64
}

// sweep holds sampled responses on the analysis grid.
type sweep struct {
	freqs []float64
	s11   []float64 // dB
	s21   []float64 // dB
	delay []float64 // S21 group delay in seconds
}

// report collects everything rftune prints or exports. Sections that do not
// apply to the given flags stay nil.
type report struct {
	design design
	bw     float64
	fo     float64
	qu     core.UnloadedQ
	zo     float64
	re     float64
	period float64

	denormalized []float64
	lossless     *analysis.NessTable
	metrics      *analysis.Metrics
	lossy        *analysis.NessTable
	mismatch     *analysis.Mismatch
	validation   *validation
	lowpass      *lowpassPeaks
	tdr          *timedomain.Result
	sweep        *sweep
}

func buildReport(opts *options) (*report, error) {
	d, err := resolveDesign(opts)
	if err != nil {
		return nil, err
	}
	qu := core.FromFloat(opts.qu)
	if !qu.IsLossless() && !(opts.qu > 0) {
		return nil, fmt.Errorf("unloaded Q must be > 0, got %v", opts.qu)
	}
	if opts.bw < 0 || opts.fo < 0 {
		return nil, errors.New("bandwidth and center frequency must be positive")
	}
	logger.Log.Debugw("design resolved", "name", d.name, "poles", d.poles(), "qu", qu)

	rep := &report{
		design: d,
		bw:     opts.bw,
		fo:     opts.fo,
		qu:     qu,
		zo:     opts.zo,
		re:     opts.re,
		period: opts.tdr,
	}

	if rep.bw > 0 {
		rep.lossless = &analysis.NessTable{
			Delay:             groupdelay.LosslessCoupling(d.qk, rep.bw),
			Reflection:        ones(d.poles()),
			ReverseDelay:      groupdelay.LosslessCoupling(d.qk.Reverse(), rep.bw),
			ReverseReflection: ones(d.poles()),
		}
	}

	if rep.fo > 0 && rep.bw > 0 {
		if err := rep.analyze(opts); err != nil {
			return nil, err
		}
	} else if rep.fo > 0 {
		logger.Log.Warnw("center frequency given without bandwidth, skipping bandpass analysis", "fo", rep.fo)
	}

	if opts.lowpass {
		if rep.fo <= 0 {
			return nil, errors.New("-lowpass needs a cutoff frequency (-f)")
		}
		if err := rep.analyzeLowpass(opts); err != nil {
			return nil, err
		}
	}
	return rep, nil
}

func (rep *report) analyze(opts *options) error {
	a, err := analysis.NewAnalyzerFromPrototype(rep.design.g, rep.bw, rep.fo,
		core.WithSteps(opts.steps),
		core.WithImpedance(opts.zo, opts.re),
	)
	if err != nil {
		return err
	}
	rep.denormalized = a.Denormalized()

	m, err := a.Analyze(rep.qu)
	if err != nil {
		return err
	}
	rep.metrics = &m
	if math.IsNaN(m.DelayBandwidth) || math.IsNaN(m.Bandwidth) {
		logger.Log.Warnw("bandwidth could not be located on the grid", "steps", opts.steps)
	}
	logger.Log.Debugw("metrics computed", "rl", m.ReturnLoss, "il", m.InsertionLoss, "bw3db", m.Bandwidth)

	ness := rep.lossless
	if !rep.qu.IsLossless() {
		t, err := a.Ness(rep.qu)
		if err != nil {
			return err
		}
		rep.lossy = &t
		ness = &t
	}

	if a.Mismatched() {
		mm, err := a.Mismatch(rep.qu)
		if err != nil {
			return err
		}
		rep.mismatch = &mm
	}

	if opts.validate {
		rep.validation = validate(rep.fo, ness)
	}

	if opts.xlsx != "" {
		rep.sweep = &sweep{
			freqs: a.Grid(),
			s11:   a.Reflection(rep.qu).MagnitudeDB(),
			s21:   a.Transmission(rep.qu).MagnitudeDB(),
			delay: a.TransmissionDelays(rep.qu),
		}
	}

	if opts.tdr > 0 {
		freqs, err := timedomain.Span(rep.fo, opts.tdr, opts.steps)
		if err != nil {
			return err
		}
		gamma := a.Network().Reflection(1).Eval(freqs, rep.qu)
		res, err := timedomain.Transform(freqs, gamma)
		if err != nil {
			return err
		}
		rep.tdr = &res
	}
	return nil
}

func (rep *report) analyzeLowpass(opts *options) error {
	cfg := core.WithSteps(opts.steps)
	freqs, delays, err := analysis.LowpassDelayPeaks(rep.design.g, rep.fo, rep.qu, cfg)
	if err != nil {
		return err
	}
	f, td, err := analysis.LowpassDelayPeak(rep.design.g, rep.fo, rep.qu, cfg)
	if err != nil {
		return err
	}
	rep.lowpass = &lowpassPeaks{nodeFreqs: freqs, nodeDelays: delays, s21Freq: f, s21Delay: td}
	return nil
}

func validate(fo float64, t *analysis.NessTable) *validation {
	v := &validation{kIn: math.NaN(), kOut: math.NaN()}
	if v.qeIn, v.quIn, v.qInErr = inverse.RecoverQeQu(fo, t.Delay[0], t.Reflection[0]); v.qInErr != nil {
		logger.Log.Warnw("input Qe/Qu recovery failed", "error", v.qInErr)
	}
	if v.qeOut, v.quOut, v.qOutErr = inverse.RecoverQeQu(fo, t.ReverseDelay[0], t.ReverseReflection[0]); v.qOutErr != nil {
		logger.Log.Warnw("output Qe/Qu recovery failed", "error", v.qOutErr)
	}
	if len(t.Delay) < 2 {
		return v
	}
	v.kIn, v.kInErr = inverse.RecoverK12(fo, t.Delay[0], t.Delay[1], t.Reflection[0])
	v.kOut, v.kOutErr = inverse.RecoverK12(fo, t.ReverseDelay[0], t.ReverseDelay[1], t.ReverseReflection[0])
	return v
}

func ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	return out
}
