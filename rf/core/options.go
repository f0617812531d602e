package core

// Sweep defaults shared by curve analysis.
const (
	DefaultSteps  = 1000
	DefaultSpan   = 2.0
	DefaultCutoff = 3.0103
)

// SweepConfig defines how a response is sampled around the centre frequency.
type SweepConfig struct {
	// Steps is the number of grid points.
	Steps int
	// Span is the half-width of the window in multiples of the design
	// bandwidth: the grid covers fo ± Span*bw.
	Span float64
	// CutoffDB is the attenuation relative to the peak that defines the
	// bandwidth edges.
	CutoffDB float64
	// LineImpedance and Termination only matter as a ratio.
	LineImpedance float64
	Termination   float64
}

// SweepOption mutates a SweepConfig.
type SweepOption func(*SweepConfig)

// DefaultSweepConfig returns a 1000-point grid over fo ± 2*bw with a
// 3.0103 dB cutoff and matched terminations.
func DefaultSweepConfig() SweepConfig {
	return SweepConfig{
		Steps:         DefaultSteps,
		Span:          DefaultSpan,
		CutoffDB:      DefaultCutoff,
		LineImpedance: 50,
		Termination:   50,
	}
}

// WithSteps sets the grid size. Values below 3 are ignored since no interior
// extremum can be located on a shorter grid.
func WithSteps(steps int) SweepOption {
	return func(cfg *SweepConfig) {
		if steps >= 3 {
			cfg.Steps = steps
		}
	}
}

// WithSpan sets the window half-width in bandwidths.
func WithSpan(span float64) SweepOption {
	return func(cfg *SweepConfig) {
		if span > 0 {
			cfg.Span = span
		}
	}
}

// WithCutoff sets the bandwidth cutoff in dB below the peak.
func WithCutoff(db float64) SweepOption {
	return func(cfg *SweepConfig) {
		if db > 0 {
			cfg.CutoffDB = db
		}
	}
}

// WithImpedance sets the line and termination impedances.
func WithImpedance(line, termination float64) SweepOption {
	return func(cfg *SweepConfig) {
		if line > 0 && termination > 0 {
			cfg.LineImpedance = line
			cfg.Termination = termination
		}
	}
}

// ImpedanceRatio returns line/termination, 1 when matched.
func (cfg SweepConfig) ImpedanceRatio() float64 {
	return cfg.LineImpedance / cfg.Termination
}

// ApplySweepOptions applies zero or more options to the default config.
func ApplySweepOptions(opts ...SweepOption) SweepConfig {
	cfg := DefaultSweepConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
