package pure

import (
	"fmt"

	ristretto "github.com/dgraph-io/ristretto/v2"
)

// RistrettoTable is a memo table backed by a ristretto cache. It admits and
// evicts by frequency, so a stored result may be dropped and computed again.
type RistrettoTable[O any] struct {
	cache *ristretto.Cache[string, O]
}

func NewRistrettoTable[O any](maxEntries int64) (*RistrettoTable[O], error) {
	if maxEntries <= 0 {
		return nil, fmt.Errorf("pure: ristretto table needs a positive size, got %d", maxEntries)
	}
	cache, err := ristretto.NewCache(&ristretto.Config[string, O]{
		NumCounters:        maxEntries * 10,
		MaxCost:            maxEntries,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("pure: creating ristretto cache: %w", err)
	}
	return &RistrettoTable[O]{cache: cache}, nil
}

func (r *RistrettoTable[O]) Load(keys []Key) (O, bool) {
	if len(keys) == 0 {
		panic(ErrEmptyKeys)
	}
	return r.cache.Get(encodeKeys(keys))
}

// Store waits for the write to be applied so the next Load can observe it.
func (r *RistrettoTable[O]) Store(keys []Key, value O) {
	if len(keys) == 0 {
		panic(ErrEmptyKeys)
	}
	r.cache.Set(encodeKeys(keys), value, 1)
	r.cache.Wait()
}

// Close releases the cache's background goroutines.
func (r *RistrettoTable[O]) Close() {
	r.cache.Close()
}
