package analysis

import (
	"runtime"
	"sync"

	"github.com/cwbudde/algo-rftune/rf/core"
	"github.com/cwbudde/algo-rftune/rf/prototype"
)

// Design names one filter to analyze.
type Design struct {
	Name      string
	Coupling  prototype.Coupling
	Bandwidth float64
	Center    float64
}

// Result is the outcome of analyzing one Design.
type Result struct {
	Design  Design
	Metrics Metrics
	Err     error
}

// AnalyzeBatch analyzes independent designs concurrently. Results are in
// the order of designs; a failing design only sets its own Err.
func AnalyzeBatch(designs []Design, qu core.UnloadedQ, opts ...core.SweepOption) []Result {
	results := make([]Result, len(designs))
	sem := make(chan struct{}, runtime.GOMAXPROCS(0))

	var wg sync.WaitGroup
	for i, d := range designs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			results[i].Design = d
			a, err := NewAnalyzer(d.Coupling, d.Bandwidth, d.Center, opts...)
			if err != nil {
				results[i].Err = err
				return
			}
			results[i].Metrics, results[i].Err = a.Analyze(qu)
		}()
	}
	wg.Wait()
	return results
}
