package workload

import (
	"errors"
	"fmt"
	"time"

	xrand "golang.org/x/exp/rand"
)

// Batch is an ordered run of locale identifiers rendered as one section.
type Batch []string

// Dataset is the fixed collection of batches both strategies render.
// It is generated once at startup and treated as immutable afterwards so the
// two strategies always compare against the same scenario.
type Dataset []Batch

// ErrBatchSizeExceedsCatalog is returned when a batch cannot be filled by
// sampling the catalog without replacement.
var ErrBatchSizeExceedsCatalog = errors.New("workload: batch size exceeds catalog size")

// Generate builds batchCount batches of batchSize locales each. Every batch
// is an unbiased shuffle of a copy of the catalog, truncated to batchSize,
// so no locale repeats within a batch.
//
// seed controls the shuffle for reproducible runs; pass 0 to use the clock,
// which is the default interactive behavior.
func Generate(catalog []string, batchSize, batchCount int, seed uint64) (Dataset, error) {
	if batchSize <= 0 || batchCount <= 0 {
		return nil, fmt.Errorf("workload: batch size %d and batch count %d must be positive", batchSize, batchCount)
	}
	if batchSize > len(catalog) {
		return nil, fmt.Errorf("%w: %d > %d", ErrBatchSizeExceedsCatalog, batchSize, len(catalog))
	}

	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := xrand.New(xrand.NewSource(seed))

	dataset := make(Dataset, batchCount)
	for b := range dataset {
		pool := make([]string, len(catalog))
		copy(pool, catalog)
		rng.Shuffle(len(pool), func(i, j int) {
			pool[i], pool[j] = pool[j], pool[i]
		})
		dataset[b] = Batch(pool[:batchSize])
	}
	return dataset, nil
}
