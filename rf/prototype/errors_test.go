package prototype

import (
	"errors"
	"math"
	"testing"
)

func TestValidateCoupling(t *testing.T) {
	tests := []struct {
		name string
		qk   Coupling
		n    int
		want error
	}{
		{name: "ok", qk: Coupling{1, 0.5, 1}, n: 2},
		{name: "any pole count", qk: Coupling{1, 0.5, 0.5, 1}, n: 0},
		{name: "too short", qk: Coupling{1}, n: 0, want: ErrShape},
		{name: "wrong pole count", qk: Coupling{1, 0.5, 1}, n: 3, want: ErrShape},
		{name: "zero", qk: Coupling{1, 0, 1}, n: 2, want: ErrNonPositive},
		{name: "negative", qk: Coupling{1, 0.5, -1}, n: 2, want: ErrNonPositive},
		{name: "nan", qk: Coupling{1, math.NaN(), 1}, n: 2, want: ErrNonPositive},
		{name: "inf", qk: Coupling{math.Inf(1), 0.5, 1}, n: 2, want: ErrNonPositive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCoupling(tt.qk, tt.n)
			if tt.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestValidatePrototype(t *testing.T) {
	if err := ValidatePrototype(Prototype{1, 2, 1}, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidatePrototype(Prototype{1, 2}, 0); !errors.Is(err, ErrShape) {
		t.Fatalf("err = %v, want ErrShape", err)
	}
	if err := ValidatePrototype(Prototype{1, 2, 1}, 2); !errors.Is(err, ErrShape) {
		t.Fatalf("err = %v, want ErrShape", err)
	}
	if err := ValidatePrototype(Prototype{0, 2, 1}, 1); !errors.Is(err, ErrNonPositive) {
		t.Fatalf("err = %v, want ErrNonPositive", err)
	}
}
