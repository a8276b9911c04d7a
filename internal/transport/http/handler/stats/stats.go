// Package stats serves the operator endpoints for usage aggregates and
// request logs.
package stats

import (
	"net/http"
	"time"

	"github.com/chalklabs/tutorgate/internal/storage"
	"github.com/dgraph-io/ristretto/v2"
)

// statsCacheTTL bounds how stale a cached aggregate can get. Usage rows
// only ever accumulate, so a short TTL is plenty.
const statsCacheTTL = 30 * time.Second

// Handlers holds the dependencies for the stats HTTP handlers.
type Handlers struct {
	Storage storage.Storage
	Cache   *ristretto.Cache[string, any]
}

// New creates a new instance of stats handlers.
func New(store storage.Storage, cache *ristretto.Cache[string, any]) *Handlers {
	return &Handlers{
		Storage: store,
		Cache:   cache,
	}
}

// cacheKey canonicalizes the filterable query parameters so equivalent
// requests share a cache entry.
func cacheKey(prefix string, r *http.Request) string {
	q := r.URL.Query()
	return prefix + ":" + q.Get("model") + ":" + q.Get("start_date") + ":" + q.Get("end_date")
}
