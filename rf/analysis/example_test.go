package analysis_test

import (
	"fmt"

	"github.com/cwbudde/algo-rftune/rf/analysis"
	"github.com/cwbudde/algo-rftune/rf/core"
	"github.com/cwbudde/algo-rftune/rf/prototype"
)

func ExampleMinReturnLoss() {
	rl := []float64{2, 30, 21, 35, 19, 33, 23, 31, 2}
	v, ok := analysis.MinReturnLoss(rl)
	fmt.Println(v, ok)

	// Output:
	// 21 true
}

func ExampleAnalyzer_Analyze() {
	g, err := prototype.Chebyshev(6, 0.01)
	if err != nil {
		panic(err)
	}
	a, err := analysis.NewAnalyzerFromPrototype(g, 26.9e6, 2.3e9)
	if err != nil {
		panic(err)
	}
	m, err := a.Analyze(core.Finite(1400))
	if err != nil {
		panic(err)
	}
	fmt.Printf("loaded Q      %.2f\n", m.LoadedQ)
	fmt.Printf("normalized Qo %.2f\n", m.NormalizedQo)

	// Output:
	// loaded Q      85.50
	// normalized Qo 16.37
}
