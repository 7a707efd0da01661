package sorting

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
)

// ErrSelfCheck is returned by SelfCheck when the engine produces a wrong result.
var ErrSelfCheck = errors.New("sort self-check failed")

var (
	sampleInput = []float64{5, 2, 9, 1, 5, 6}
	sampleAsc   = []float64{1, 2, 5, 5, 6, 9}
	sampleDesc  = []float64{9, 6, 5, 5, 2, 1}
)

// SelfCheck sorts a fixed sample in both directions and verifies the output.
// It is meant to be used as the initialization step of a readiness gate.
func SelfCheck(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if got := Numbers(sampleInput, true); !slices.Equal(got, sampleAsc) {
		return fmt.Errorf("%w: ascending: got %v, want %v", ErrSelfCheck, got, sampleAsc)
	}

	if got := Numbers(sampleInput, false); !slices.Equal(got, sampleDesc) {
		return fmt.Errorf("%w: descending: got %v, want %v", ErrSelfCheck, got, sampleDesc)
	}

	return nil
}
