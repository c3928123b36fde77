package implementations

import (
	"sync/atomic"

	"github.com/dgraph-io/ristretto"

	"github.com/aymericzip/benchmark-intl/benchmark"
)

// CachedStrategy reuses formatter instances from a ristretto cache keyed by
// locale+options. Eviction policy is this strategy's own business; callers
// only see the FormatterStrategy shape.
type CachedStrategy struct {
	cache         *ristretto.Cache
	constructions atomic.Int64
}

// NewCachedStrategy returns the cached strategy, or an error if the backing
// cache cannot be initialized.
func NewCachedStrategy() (benchmark.FormatterStrategy, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e4,
		MaxCost:     1 << 10,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &CachedStrategy{cache: cache}, nil
}

func (s *CachedStrategy) Name() string {
	return "Cached (ristretto, keyed by locale+options)"
}

func (s *CachedStrategy) Formatter(locale string, opts benchmark.FormatOptions) (benchmark.Formatter, error) {
	key := opts.Key(locale)
	if v, found := s.cache.Get(key); found {
		return v.(benchmark.Formatter), nil
	}

	f, err := newDateFormatter(locale, opts)
	if err != nil {
		return nil, err
	}
	s.constructions.Add(1)
	// Sets are buffered; wait so later lookups in the same render pass hit.
	s.cache.Set(key, f, 1)
	s.cache.Wait()
	return f, nil
}

func (s *CachedStrategy) Close() error {
	s.cache.Close()
	return nil
}

// Constructions reports how many formatters were built on cache misses.
func (s *CachedStrategy) Constructions() int64 {
	return s.constructions.Load()
}
