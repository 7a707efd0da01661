package sorting

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cacheStub struct {
	getFunc func(values []float64, ascending bool) ([]float64, bool)
	puts    int
}

func (c *cacheStub) Get(values []float64, ascending bool) ([]float64, bool) {
	if c.getFunc == nil {
		return nil, false
	}

	return c.getFunc(values, ascending)
}

func (c *cacheStub) Put([]float64, bool, []float64) {
	c.puts++
}

func TestEngine_SortNumbers_Parallel(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))

	conf := DefaultConfig()
	conf.Workers = 4
	conf.ParallelThreshold = 10
	engine := NewEngine(conf)

	for _, n := range []int{10, 11, 97, 1000, 4096} {
		values := randomValues(rnd, n)

		for _, ascending := range []bool{true, false} {
			got, err := engine.SortNumbers(context.Background(), values, ascending)
			require.NoError(t, err)

			assertIdentical(t, Numbers(values, ascending), got)
		}
	}
}

func TestEngine_SortNumbers_SmallInput(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	got, err := engine.SortNumbers(context.Background(), []float64{5, 2, 9, 1, 5, 6}, false)
	require.NoError(t, err)
	assert.Equal(t, []float64{9, 6, 5, 5, 2, 1}, got)
}

func TestEngine_SortNumbers_Canceled(t *testing.T) {
	conf := DefaultConfig()
	conf.Workers = 2
	conf.ParallelThreshold = 1
	engine := NewEngine(conf)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.SortNumbers(ctx, []float64{3, 2, 1}, true)
	require.ErrorIs(t, err, context.Canceled)
}

func TestEngine_SortNumbers_Cache(t *testing.T) {
	t.Run("Hit", func(t *testing.T) {
		cache := &cacheStub{
			getFunc: func(values []float64, ascending bool) ([]float64, bool) {
				return []float64{42}, true
			},
		}

		conf := DefaultConfig()
		conf.Cache = cache
		engine := NewEngine(conf)

		got, err := engine.SortNumbers(context.Background(), []float64{1}, true)
		require.NoError(t, err)
		assert.Equal(t, []float64{42}, got)
		assert.Equal(t, 0, cache.puts)
	})

	t.Run("Miss", func(t *testing.T) {
		cache := &cacheStub{}

		conf := DefaultConfig()
		conf.Cache = cache
		engine := NewEngine(conf)

		got, err := engine.SortNumbers(context.Background(), []float64{2, 1}, true)
		require.NoError(t, err)
		assert.Equal(t, []float64{1, 2}, got)
		assert.Equal(t, 1, cache.puts)
	})
}

func TestEngine_SortStringsAndObjects(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	ctx := context.Background()

	strs, err := engine.SortStrings(ctx, []string{"b", "c", "a"}, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "a"}, strs)

	objs, err := engine.SortObjects(ctx, []Object{{"n": 2.0}, {"n": 1.0}}, "n", true)
	require.NoError(t, err)
	assert.Equal(t, []Object{{"n": 1.0}, {"n": 2.0}}, objs)
}

func TestMergeRuns(t *testing.T) {
	runs := [][]float64{{1, 4, 7}, {}, {2, 4}, {0, 9}}
	assert.Equal(t, []float64{0, 1, 2, 4, 4, 7, 9}, mergeRuns(runs, true))

	desc := [][]float64{{7, 4}, {9, 4, 2}}
	assert.Equal(t, []float64{9, 7, 4, 4, 2}, mergeRuns(desc, false))

	assert.Equal(t, []float64{}, mergeRuns(nil, true))
}

func TestSelfCheck(t *testing.T) {
	require.NoError(t, SelfCheck(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, SelfCheck(ctx), context.Canceled)
}
