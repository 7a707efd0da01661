package handler

//go:generate mockgen -source=facilities.go -destination=mock/facilities_mock.go -package=mock

import (
	"context"

	"github.com/maxpoletaev/sorter/sorting"
)

// Sorter is the engine behind the HTTP handlers.
type Sorter interface {
	SortNumbers(ctx context.Context, values []float64, ascending bool) ([]float64, error)
	SortStrings(ctx context.Context, values []string, ascending bool) ([]string, error)
	SortObjects(ctx context.Context, objects []sorting.Object, column string, ascending bool) ([]sorting.Object, error)
}

// Gate reports whether the service finished its initialization.
type Gate interface {
	Ready() bool
}
