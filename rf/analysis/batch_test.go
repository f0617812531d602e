package analysis

import (
	"testing"

	"github.com/cwbudde/algo-rftune/rf/core"
	"github.com/cwbudde/algo-rftune/rf/prototype"
)

func TestAnalyzeBatch(t *testing.T) {
	designs := []Design{
		{Name: "cheb6", Coupling: prototype.ToCoupling(chebyshev(t, 6, 0.01)), Bandwidth: nessBandwidth, Center: nessCenter},
		{Name: "broken", Coupling: prototype.Coupling{1}, Bandwidth: 1e6, Center: 1e9},
		{Name: "cheb3", Coupling: prototype.ToCoupling(chebyshev(t, 3, 0.1)), Bandwidth: 10e6, Center: 1e9},
	}
	qu := core.Finite(nessQu)
	results := AnalyzeBatch(designs, qu, core.WithSteps(300))
	if len(results) != len(designs) {
		t.Fatalf("len = %d", len(results))
	}
	for i, r := range results {
		if r.Design.Name != designs[i].Name {
			t.Fatalf("result %d is %q, want %q", i, r.Design.Name, designs[i].Name)
		}
	}
	if results[1].Err == nil {
		t.Fatal("broken design analyzed without error")
	}

	// concurrent results match a sequential analysis
	for _, i := range []int{0, 2} {
		if results[i].Err != nil {
			t.Fatalf("%s: %v", results[i].Design.Name, results[i].Err)
		}
		d := designs[i]
		a, err := NewAnalyzer(d.Coupling, d.Bandwidth, d.Center, core.WithSteps(300))
		if err != nil {
			t.Fatal(err)
		}
		want, err := a.Analyze(qu)
		if err != nil {
			t.Fatal(err)
		}
		if results[i].Metrics != want {
			t.Fatalf("%s: batch %+v, sequential %+v", d.Name, results[i].Metrics, want)
		}
	}
}

func TestAnalyzeBatch_Empty(t *testing.T) {
	if got := AnalyzeBatch(nil, core.Lossless()); len(got) != 0 {
		t.Fatalf("got %v", got)
	}
}
