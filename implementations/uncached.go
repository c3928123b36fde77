package implementations

import (
	"sync/atomic"

	"github.com/aymericzip/benchmark-intl/benchmark"
)

// UncachedStrategy constructs a fresh formatter on every call. This is the
// baseline the cached variant is compared against.
type UncachedStrategy struct {
	constructions atomic.Int64
}

// NewUncachedStrategy returns the uncached strategy.
func NewUncachedStrategy() benchmark.FormatterStrategy {
	return &UncachedStrategy{}
}

func (s *UncachedStrategy) Name() string {
	return "Uncached (new formatter per render)"
}

func (s *UncachedStrategy) Formatter(locale string, opts benchmark.FormatOptions) (benchmark.Formatter, error) {
	s.constructions.Add(1)
	return newDateFormatter(locale, opts)
}

func (s *UncachedStrategy) Close() error {
	return nil
}

// Constructions reports how many formatters have been built so far.
func (s *UncachedStrategy) Constructions() int64 {
	return s.constructions.Load()
}
