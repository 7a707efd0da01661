package rpc

import (
	"context"
	"errors"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

var errNotReady = status.New(codes.Unavailable, "service is initializing").Err()

// Sorter is the engine behind the service.
type Sorter interface {
	SortNumbers(ctx context.Context, values []float64, ascending bool) ([]float64, error)
	SortStrings(ctx context.Context, values []string, ascending bool) ([]string, error)
}

// Gate reports whether the service finished its initialization.
type Gate interface {
	Ready() bool
}

type SorterService struct {
	sorter Sorter
	gate   Gate
	logger kitlog.Logger
}

var _ SorterServer = (*SorterService)(nil)

func New(sorter Sorter, gate Gate, logger kitlog.Logger) *SorterService {
	return &SorterService{
		sorter: sorter,
		gate:   gate,
		logger: logger,
	}
}

func (s *SorterService) SortNumbers(ctx context.Context, req *structpb.Struct) (*structpb.ListValue, error) {
	if !s.gate.Ready() {
		return nil, errNotReady
	}

	list, ascending, err := fromRequest(req)
	if err != nil {
		return nil, err
	}

	values, err := toNumbers(list)
	if err != nil {
		return nil, err
	}

	sorted, err := s.sorter.SortNumbers(ctx, values, ascending)
	if err != nil {
		return nil, s.engineError(err)
	}

	return fromNumbers(sorted), nil
}

func (s *SorterService) SortStrings(ctx context.Context, req *structpb.Struct) (*structpb.ListValue, error) {
	if !s.gate.Ready() {
		return nil, errNotReady
	}

	list, ascending, err := fromRequest(req)
	if err != nil {
		return nil, err
	}

	values, err := toStrings(list)
	if err != nil {
		return nil, err
	}

	sorted, err := s.sorter.SortStrings(ctx, values, ascending)
	if err != nil {
		return nil, s.engineError(err)
	}

	return fromStrings(sorted), nil
}

func (s *SorterService) engineError(err error) error {
	switch {
	case errors.Is(err, context.Canceled):
		return status.New(codes.Canceled, err.Error()).Err()
	case errors.Is(err, context.DeadlineExceeded):
		return status.New(codes.DeadlineExceeded, err.Error()).Err()
	}

	level.Error(s.logger).Log("msg", "sort failed", "err", err)

	return status.Errorf(codes.Internal, "sort failed: %s", err)
}
