package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-rftune/rf/prototype"
)

var errNoDesign = errors.New("no filter specified: use -qk, -g or -n with -ripple")

// design is a filter in both coefficient forms.
type design struct {
	name string
	qk   prototype.Coupling
	g    prototype.Prototype
}

func (d design) poles() int { return d.qk.Poles() }

// resolveDesign picks the design from the flags. Explicit coefficients win
// over Chebyshev synthesis; -n, when given, must match their pole count.
func resolveDesign(opts *options) (design, error) {
	switch {
	case opts.qk != "" && opts.g != "":
		return design{}, errors.New("-qk and -g are mutually exclusive")

	case opts.qk != "":
		values, err := parseList(opts.qk)
		if err != nil {
			return design{}, fmt.Errorf("-qk: %w", err)
		}
		qk := prototype.Coupling(values)
		if err := prototype.ValidateCoupling(qk, opts.poles); err != nil {
			return design{}, fmt.Errorf("-qk: %w", err)
		}
		return design{name: "Coupling", qk: qk, g: prototype.ToPrototype(qk)}, nil

	case opts.g != "":
		values, err := parseList(opts.g)
		if err != nil {
			return design{}, fmt.Errorf("-g: %w", err)
		}
		g := prototype.Prototype(values)
		if err := prototype.ValidatePrototype(g, opts.poles); err != nil {
			return design{}, fmt.Errorf("-g: %w", err)
		}
		return design{name: "Prototype", qk: prototype.ToCoupling(g), g: g}, nil

	case opts.ripple != 0:
		if opts.poles == 0 {
			return design{}, errors.New("-ripple needs the number of poles (-n)")
		}
		g, err := prototype.Chebyshev(opts.poles, opts.ripple)
		if err != nil {
			return design{}, err
		}
		name := fmt.Sprintf("Chebyshev %s dB", strconv.FormatFloat(opts.ripple, 'g', -1, 64))
		return design{name: name, qk: prototype.ToCoupling(g), g: g}, nil
	}
	return design{}, errNoDesign
}

// parseList parses comma or whitespace separated numbers.
func parseList(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, errors.New("empty list")
	}
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i+1, err)
		}
		out[i] = v
	}
	return out, nil
}
