// Package sorting implements the sort engine: pure, non-mutating sorts of
// numbers, strings and decoded JSON objects in either direction.
//
// All sorts are stable. NaN values are always moved to the end of the output
// regardless of the direction, infinities keep their natural positions and
// negative zero compares equal to positive zero.
package sorting

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Numbers returns a sorted copy of values. The input slice is left untouched
// and the result is never nil, even for empty input.
func Numbers(values []float64, ascending bool) []float64 {
	out := clone(values)

	slices.SortStableFunc(out, func(a, b float64) int {
		return compareFloats(a, b, ascending)
	})

	return out
}

// Strings returns a copy of values in byte-wise lexicographic order.
func Strings(values []string, ascending bool) []string {
	return Ordered(values, ascending)
}

// Ordered is the generic form of Numbers for any ordered type. For floating
// point types it applies the same NaN rule as Numbers.
func Ordered[T constraints.Ordered](values []T, ascending bool) []T {
	out := clone(values)

	slices.SortStableFunc(out, func(a, b T) int {
		return compareOrdered(a, b, ascending)
	})

	return out
}

func clone[T any](values []T) []T {
	out := make([]T, len(values))
	copy(out, values)

	return out
}
