package inverse_test

import (
	"fmt"

	"github.com/cwbudde/algo-rftune/rf/inverse"
)

func ExampleRecoverQeQu() {
	// 40 ns of Ness delay at 1 GHz with 1 dB return loss
	qe, qu, err := inverse.RecoverQeQu(1e9, 40e-9, inverse.GammaFromReturnLoss(1))
	if err != nil {
		panic(err)
	}
	fmt.Printf("Qe = %.2f, Qu = %.1f\n", qe, qu.Value())

	qe, qu, _ = inverse.RecoverQeQu(1e9, 40e-9, 1)
	fmt.Printf("Qe = %.2f, Qu = %s\n", qe, qu)

	// Output:
	// Qe = 62.62, Qu = 1089.1
	// Qe = 62.83, Qu = inf
}
