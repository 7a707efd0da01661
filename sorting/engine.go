package sorting

import (
	"context"
	"runtime"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/sync/errgroup"

	"github.com/maxpoletaev/sorter/internal/heap"
)

// ResultCache memoizes sorted numeric sequences.
type ResultCache interface {
	Get(values []float64, ascending bool) ([]float64, bool)
	Put(values []float64, ascending bool, sorted []float64)
}

type Config struct {
	// Logger is used to report slow paths such as parallel sorts.
	// Defaults to a no-op logger.
	Logger kitlog.Logger
	// Workers is the number of chunks a large input is split into. Each
	// chunk is sorted in its own goroutine. Defaults to GOMAXPROCS.
	Workers int
	// ParallelThreshold is the minimum number of values for which the
	// parallel path is used. Smaller inputs are sorted in the calling
	// goroutine. Defaults to 64K values.
	ParallelThreshold int
	// Cache, if set, is consulted before sorting numbers and updated after.
	Cache ResultCache
}

func DefaultConfig() Config {
	return Config{
		Logger:            kitlog.NewNopLogger(),
		Workers:           runtime.GOMAXPROCS(0),
		ParallelThreshold: 64 * 1024,
	}
}

// Engine is the configurable front of the package-level sort functions. It
// is safe for concurrent use.
type Engine struct {
	logger    kitlog.Logger
	cache     ResultCache
	workers   int
	threshold int
}

func NewEngine(conf Config) *Engine {
	if conf.Logger == nil {
		conf.Logger = kitlog.NewNopLogger()
	}

	if conf.Workers < 1 {
		conf.Workers = 1
	}

	return &Engine{
		logger:    conf.Logger,
		cache:     conf.Cache,
		workers:   conf.Workers,
		threshold: conf.ParallelThreshold,
	}
}

// SortNumbers produces the same result as Numbers. Inputs of at least
// ParallelThreshold values are sorted in chunks concurrently and merged.
func (e *Engine) SortNumbers(ctx context.Context, values []float64, ascending bool) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if e.cache != nil {
		if sorted, ok := e.cache.Get(values, ascending); ok {
			return sorted, nil
		}
	}

	var (
		sorted []float64
		err    error
	)

	if e.workers > 1 && e.threshold > 0 && len(values) >= e.threshold {
		sorted, err = e.parallelSort(ctx, values, ascending)
		if err != nil {
			return nil, err
		}
	} else {
		sorted = Numbers(values, ascending)
	}

	if e.cache != nil {
		e.cache.Put(values, ascending, sorted)
	}

	return sorted, nil
}

func (e *Engine) SortStrings(ctx context.Context, values []string, ascending bool) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return Strings(values, ascending), nil
}

func (e *Engine) SortObjects(ctx context.Context, objects []Object, column string, ascending bool) ([]Object, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return ObjectsByColumn(objects, column, ascending), nil
}

func (e *Engine) parallelSort(ctx context.Context, values []float64, ascending bool) ([]float64, error) {
	chunkSize := (len(values) + e.workers - 1) / e.workers
	chunks := make([][]float64, 0, e.workers)

	for start := 0; start < len(values); start += chunkSize {
		end := start + chunkSize
		if end > len(values) {
			end = len(values)
		}

		chunks = append(chunks, values[start:end])
	}

	level.Debug(e.logger).Log(
		"msg", "sorting in parallel",
		"values", len(values),
		"chunks", len(chunks),
	)

	g, gctx := errgroup.WithContext(ctx)

	for i := range chunks {
		i := i

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			chunks[i] = Numbers(chunks[i], ascending)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return mergeRuns(chunks, ascending), nil
}

// cursor points at the next unread value of a sorted run.
type cursor struct {
	run int
	pos int
	val float64
}

// mergeRuns performs a k-way merge of sorted runs. Ties are resolved by run
// index, so merging the chunks of a stable sort keeps the result stable.
func mergeRuns(runs [][]float64, ascending bool) []float64 {
	total := 0
	heads := make([]cursor, 0, len(runs))

	for i, run := range runs {
		total += len(run)

		if len(run) > 0 {
			heads = append(heads, cursor{run: i, val: run[0]})
		}
	}

	h := heap.From(func(a, b cursor) bool {
		if c := compareFloats(a.val, b.val, ascending); c != 0 {
			return c < 0
		}

		return a.run < b.run
	}, heads)

	out := make([]float64, 0, total)

	for h.Len() > 0 {
		top := h.Peek()
		out = append(out, top.val)

		if next := top.pos + 1; next < len(runs[top.run]) {
			h.ReplaceTop(cursor{run: top.run, pos: next, val: runs[top.run][next]})
		} else {
			h.Pop()
		}
	}

	return out
}
