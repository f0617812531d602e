package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-rftune/rf/analysis"
	"github.com/cwbudde/algo-rftune/rf/core"
)

const rule = "---------------------------------------"

// printer stops writing after the first error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func printReport(w io.Writer, rep *report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	p := &printer{w: tw}

	title := fmt.Sprintf("%d Pole %s", rep.design.poles(), rep.design.name)
	p.printf("%s\n%*s\n%s\n", rule, (len(rule)+len(title))/2, title, rule)

	if rep.bw > 0 {
		p.printf("Design Bandwidth\t%15.4f MHz\n", rep.bw/1e6)
	}
	if m := rep.metrics; m != nil {
		p.printf("Center Frequency\t%15.4f MHz\n", rep.fo/1e6)
		p.printf("Delay Bandwidth\t%15.4f MHz\n", m.DelayBandwidth/1e6)
		p.printf("3dB Bandwidth\t%15.4f MHz\n", m.Bandwidth/1e6)
		p.printf("Transmission Delay\t%15.4f ns\n", m.TransmissionDelay*1e9)
		p.printf("Minimum Return Loss\t%15.4f dB\n", m.ReturnLoss)
		p.printf("Insertion Loss\t%15.4f dB\n", m.InsertionLoss)
		p.printf("Cohn Insertion Loss\t%15.4f dB\n", m.CohnLoss)
		p.printf("Unloaded QU\t%15s\n", formatQ(rep.qu))
		p.printf("Filter Loaded QL\t%15.4f\n", m.LoadedQ)
		p.printf("Normalized Qo\t%15.4f\n", m.NormalizedQo)
	}

	printCouplings(p, rep)

	if rep.lossless != nil {
		p.printf("Lossless Ness Group Delay and Return Loss\n")
		printNess(p, rep.lossless)
	}
	if rep.lossy != nil {
		p.printf("Ness Group Delay and Return Loss (QU=%s)\n", formatQ(rep.qu))
		printNess(p, rep.lossy)
	}
	if mm := rep.mismatch; mm != nil {
		p.printf("Filter Termination and Line Impedance Mismatch Results (QU=%s)\n", formatQ(rep.qu))
		printNess(p, &mm.Ness)
		p.printf("  Line Impedance\t%15.4f ohm\n", mm.LineImpedance)
		p.printf("  Termination Resistance\t%15.4f ohm\n", mm.Termination)
		p.printf("  Transmission Delay\t%15.4f ns\n", mm.TransmissionDelay*1e9)
		p.printf("  Insertion Loss\t%15.4f dB\n", mm.InsertionLoss)
		p.printf("  Empirical QE1\t%15.4f\n", mm.InputQ)
		p.printf("  Empirical QE%d\t%15.4f\n", rep.design.poles(), mm.OutputQ)
	}
	if v := rep.validation; v != nil {
		printValidation(p, rep.design.poles(), v)
	}
	if lp := rep.lowpass; lp != nil {
		p.printf("Lowpass Group Delay Peaks (fo=%.4f MHz)\n", rep.fo/1e6)
		for i := range lp.nodeFreqs {
			p.printf("  S11 grounded at %d\t%12.4f MHz\t%12.4f ns\n", i+2, lp.nodeFreqs[i]/1e6, lp.nodeDelays[i]*1e9)
		}
		p.printf("  S21\t%12.4f MHz\t%12.4f ns\n", lp.s21Freq/1e6, lp.s21Delay*1e9)
	}
	if res := rep.tdr; res != nil {
		p.printf("Time Domain S11 Dips (window %.4f ns)\n", rep.period*1e9)
		for _, i := range dips(res.Level) {
			if res.Time[i] > rep.period {
				break
			}
			p.printf("  \t%12.4f ns\t%10.3f dB\n", res.Time[i]*1e9, res.Level[i])
		}
	}

	if p.err != nil {
		return p.err
	}
	return tw.Flush()
}

func printValidation(p *printer, n int, v *validation) {
	p.printf("Validation\n")
	p.printf("  QU1\t%14s\n", formatRecoveredQ(v.quIn, v.qInErr))
	p.printf("  QU%d\t%14s\n", n, formatRecoveredQ(v.quOut, v.qOutErr))
	p.printf("  QE1\t%14s\n", formatK(v.qeIn, v.qInErr))
	p.printf("  QE%d\t%14s\n", n, formatK(v.qeOut, v.qOutErr))
	if n >= 2 {
		p.printf("  K12\t%14s\n", formatK(v.kIn, v.kInErr))
		p.printf("  K%d%d\t%14s\n", n-1, n, formatK(v.kOut, v.kOutErr))
	}
}

func printCouplings(p *printer, rep *report) {
	qk := rep.design.qk
	n := len(qk) - 1
	if rep.denormalized == nil {
		p.printf("Normalized Qi and Kij\n")
	} else {
		p.printf("Normalized and Denormalized Qi and Kij\n")
	}
	for i, v := range qk {
		lower := fmt.Sprintf("k%d%d", i, i+1)
		upper := fmt.Sprintf("K%d%d", i, i+1)
		switch i {
		case 0:
			lower, upper = "q1", "Q1"
		case n:
			lower, upper = fmt.Sprintf("q%d", n), fmt.Sprintf("Q%d", n)
		}
		if rep.denormalized == nil {
			p.printf("  %s\t%11.6f\n", lower, v)
			continue
		}
		p.printf("  %s\t%11.6f\t|\t%s\t%11.6f\n", lower, v, upper, rep.denormalized[i])
	}
}

// printNess lists the delays from both ends; row n has resonators 1..n
// (and N..N-n+1) tuned.
func printNess(p *printer, t *analysis.NessTable) {
	n := len(t.Delay)
	for i := 0; i < n; i++ {
		fwd := make([]string, 0, i+1)
		rev := make([]string, 0, i+1)
		for j := 1; j <= i+1; j++ {
			fwd = append(fwd, strconv.Itoa(j))
			rev = append(rev, strconv.Itoa(n+1-j))
		}
		p.printf("  %s\t%9.3f ns\t%7.3f dB\t|\t%s\t%9.3f ns\t%7.3f dB\n",
			strings.Join(fwd, " "), t.Delay[i]*1e9, returnLoss(t.Reflection[i]),
			strings.Join(rev, " "), t.ReverseDelay[i]*1e9, returnLoss(t.ReverseReflection[i]))
	}
}

// returnLoss converts |Γ| to dB, printing a perfect reflection as 0 rather
// than -0.
func returnLoss(gamma float64) float64 {
	return 0 - core.LinearToDB(gamma)
}

func formatQ(q core.UnloadedQ) string {
	if q.IsLossless() {
		return q.String()
	}
	return strconv.FormatFloat(q.Value(), 'f', 4, 64)
}

func formatRecoveredQ(q core.UnloadedQ, err error) string {
	if err != nil {
		return "inconsistent"
	}
	return formatQ(q)
}

// formatK prints a recovered value, or "inconsistent" when recovery failed.
func formatK(k float64, err error) string {
	if err != nil {
		return "inconsistent"
	}
	return strconv.FormatFloat(k, 'f', 6, 64)
}

// dips returns the indices of interior local minima.
func dips(v []float64) []int {
	var idx []int
	for i := 1; i+1 < len(v); i++ {
		if v[i] < v[i-1] && v[i] <= v[i+1] {
			idx = append(idx, i)
		}
	}
	return idx
}
