package timedomain_test

import (
	"fmt"

	"github.com/cwbudde/algo-rftune/rf/timedomain"
)

func ExampleSpan() {
	// five points resolving a 1 µs window around 1 GHz
	freqs, err := timedomain.Span(1e9, 1e-6, 5)
	if err != nil {
		panic(err)
	}
	for _, f := range freqs {
		fmt.Printf("%.1f MHz\n", f/1e6)
	}

	// Output:
	// 999.0 MHz
	// 999.5 MHz
	// 1000.0 MHz
	// 1000.5 MHz
	// 1001.0 MHz
}
