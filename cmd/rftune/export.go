package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/cwbudde/algo-rftune/rf/analysis"
)

// exportWorkbook writes the report to an xlsx file with one sheet per
// section.
func exportWorkbook(path string, rep *report) error {
	f := excelize.NewFile()
	defer f.Close()

	summary := "Summary"
	if err := f.SetSheetName("Sheet1", summary); err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}
	rows := [][]any{
		{"Design", rep.design.name},
		{"Poles", rep.design.poles()},
		{"Design Bandwidth [Hz]", rep.bw},
		{"Center Frequency [Hz]", rep.fo},
		{"Unloaded QU", formatQ(rep.qu)},
	}
	if m := rep.metrics; m != nil {
		rows = append(rows,
			[]any{"Delay Bandwidth [Hz]", m.DelayBandwidth},
			[]any{"3dB Bandwidth [Hz]", m.Bandwidth},
			[]any{"Transmission Delay [s]", m.TransmissionDelay},
			[]any{"Minimum Return Loss [dB]", m.ReturnLoss},
			[]any{"Insertion Loss [dB]", m.InsertionLoss},
			[]any{"Cohn Insertion Loss [dB]", m.CohnLoss},
			[]any{"Filter Loaded QL", m.LoadedQ},
			[]any{"Normalized Qo", m.NormalizedQo},
		)
	}
	if mm := rep.mismatch; mm != nil {
		rows = append(rows,
			[]any{"Line Impedance [ohm]", mm.LineImpedance},
			[]any{"Termination Resistance [ohm]", mm.Termination},
			[]any{"Mismatch Insertion Loss [dB]", mm.InsertionLoss},
			[]any{"Mismatch Transmission Delay [s]", mm.TransmissionDelay},
			[]any{"Empirical QE1", mm.InputQ},
			[]any{"Empirical QEN", mm.OutputQ},
		)
	}
	if err := writeRows(f, summary, nil, rows); err != nil {
		return err
	}

	coupling := make([][]any, len(rep.design.qk))
	for i, v := range rep.design.qk {
		coupling[i] = []any{i + 1, v}
		if rep.denormalized != nil {
			coupling[i] = append(coupling[i], rep.denormalized[i])
		}
	}
	if err := writeSheet(f, "Coupling", []string{"Index", "Normalized", "Denormalized"}, coupling); err != nil {
		return err
	}

	if err := writeSheet(f, "Prototype", []string{"Index", "g"}, indexed(rep.design.g, 0)); err != nil {
		return err
	}

	var mismatch *analysis.NessTable
	if rep.mismatch != nil {
		mismatch = &rep.mismatch.Ness
	}
	for _, sec := range []struct {
		name  string
		table *analysis.NessTable
	}{
		{"Ness Lossless", rep.lossless},
		{"Ness", rep.lossy},
		{"Ness Mismatch", mismatch},
	} {
		if sec.table == nil {
			continue
		}
		if err := writeSheet(f, sec.name, nessHeader, nessRows(sec.table)); err != nil {
			return err
		}
	}

	if s := rep.sweep; s != nil {
		rows := make([][]any, len(s.freqs))
		for i := range rows {
			rows[i] = []any{s.freqs[i], s.s11[i], s.s21[i], s.delay[i]}
		}
		if err := writeSheet(f, "Sweep", []string{"Frequency [Hz]", "S11 [dB]", "S21 [dB]", "S21 Delay [s]"}, rows); err != nil {
			return err
		}
	}

	if res := rep.tdr; res != nil {
		rows := make([][]any, len(res.Time))
		for i := range rows {
			rows[i] = []any{res.Time[i], res.Level[i]}
		}
		if err := writeSheet(f, "Time Domain", []string{"Time [s]", "S11 [dB]"}, rows); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("xlsx: failed to save %s: %w", path, err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, header []string, rows [][]any) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}
	return writeRows(f, sheet, header, rows)
}

func writeRows(f *excelize.File, sheet string, header []string, rows [][]any) error {
	start := 1
	if header != nil {
		for col, h := range header {
			cell, _ := excelize.CoordinatesToCellName(col+1, 1)
			if err := f.SetCellValue(sheet, cell, h); err != nil {
				return fmt.Errorf("xlsx: %w", err)
			}
		}
		start = 2
	}
	for i, row := range rows {
		for col, v := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, start+i)
			if err := f.SetCellValue(sheet, cell, cellValue(v)); err != nil {
				return fmt.Errorf("xlsx: %w", err)
			}
		}
	}
	return nil
}

var nessHeader = []string{"Resonators", "Delay [s]", "|S11|", "Reverse Delay [s]", "Reverse |S11|"}

func nessRows(t *analysis.NessTable) [][]any {
	out := make([][]any, len(t.Delay))
	for i := range out {
		out[i] = []any{i + 1, t.Delay[i], t.Reflection[i], t.ReverseDelay[i], t.ReverseReflection[i]}
	}
	return out
}

func indexed(values []float64, first int) [][]any {
	out := make([][]any, len(values))
	for i, v := range values {
		out[i] = []any{first + i, v}
	}
	return out
}

// cellValue replaces values a spreadsheet cannot hold with text.
func cellValue(v any) any {
	if x, ok := v.(float64); ok && (math.IsNaN(x) || math.IsInf(x, 0)) {
		return strconv.FormatFloat(x, 'g', -1, 64)
	}
	return v
}
