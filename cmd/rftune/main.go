// Command rftune analyzes coupled resonator bandpass filters.
//
// Usage:
//
//	rftune [flags]
//
// A design is given as normalized couplings (-qk), lowpass prototype values
// (-g) or a Chebyshev pole count and ripple (-n, -ripple). With a bandwidth
// the lossless Ness group delays are listed; with a centre frequency as well
// the nodal network is analyzed for the given unloaded Q.
//
// Examples:
//
//	rftune -n 6 -ripple 0.01 -b 26.9e6
//	rftune -n 6 -ripple 0.01 -b 26.9e6 -f 2.3e9 -u 1400 -validate
//	rftune -qk 0.7814,0.9701,0.6597,0.6209,0.6597,0.9701,0.7814 -b 26.9e6 -f 2.3e9 -u 1400 -re 100
//	rftune -n 5 -ripple 0.1 -b 10e6 -f 1e9 -u 2000 -tdr 200e-9 -xlsx filter.xlsx
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/cwbudde/algo-rftune/internal/logger"
	"github.com/cwbudde/algo-rftune/rf/core"
)

type options struct {
	poles    int
	ripple   float64
	qk       string
	g        string
	fo       float64
	bw       float64
	qu       float64
	zo       float64
	re       float64
	steps    int
	validate bool
	lowpass  bool
	tdr      float64
	xlsx     string
	verbose  bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("rftune", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&opts.poles, "n", 0, "number of filter poles (Chebyshev synthesis, or a check on -qk/-g)")
	fs.Float64Var(&opts.ripple, "ripple", 0, "Chebyshev passband ripple in dB")
	fs.StringVar(&opts.qk, "qk", "", "comma separated normalized couplings q1,k12,...,qN")
	fs.StringVar(&opts.g, "g", "", "comma separated lowpass prototype values g0,...,g(N+1)")
	fs.Float64Var(&opts.fo, "f", 0, "center frequency in Hz")
	fs.Float64Var(&opts.bw, "b", 0, "design bandwidth in Hz")
	fs.Float64Var(&opts.qu, "u", math.Inf(1), "unloaded quality factor (inf = lossless)")
	fs.Float64Var(&opts.zo, "zo", 50, "line impedance in ohms")
	fs.Float64Var(&opts.re, "re", 50, "filter termination impedance in ohms")
	fs.IntVar(&opts.steps, "steps", core.DefaultSteps, "analysis grid size")
	fs.BoolVar(&opts.validate, "validate", false, "recover Qe, Qu and K from the computed Ness delays")
	fs.BoolVar(&opts.lowpass, "lowpass", false, "list lowpass prototype delay peaks, using -f as cutoff")
	fs.Float64Var(&opts.tdr, "tdr", 0, "time-domain window in seconds for the S11 transform (0 = off)")
	fs.StringVar(&opts.xlsx, "xlsx", "", "write the report and sweeps to this spreadsheet")
	fs.BoolVar(&opts.verbose, "v", false, "verbose logging")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: rftune [flags]\n\n")
		fmt.Fprintf(stderr, "Analyzes coupled resonator bandpass filters.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  rftune -n 6 -ripple 0.01 -b 26.9e6\n")
		fmt.Fprintf(stderr, "  rftune -n 6 -ripple 0.01 -b 26.9e6 -f 2.3e9 -u 1400 -validate\n")
		fmt.Fprintf(stderr, "  rftune -g 1,0.6291,0.9702,0.6291,1 -b 10e6 -f 1e9 -re 75\n")
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	if err := logger.Init(opts.verbose); err != nil {
		fmt.Fprintf(stderr, "error: failed to initialize logging: %v\n", err)
		return 1
	}
	defer logger.Sync()

	rep, err := buildReport(opts)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	if err := printReport(stdout, rep); err != nil {
		fmt.Fprintf(stderr, "error: failed to write report: %v\n", err)
		return 1
	}

	if opts.xlsx != "" {
		if err := exportWorkbook(opts.xlsx, rep); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		logger.Log.Infow("workbook written", "path", opts.xlsx)
	}
	return 0
}
