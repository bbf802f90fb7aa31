package idempotency

import (
	"context"
	"time"

	"encore.dev/storage/cache"

	"github.com/dugiahuy/pave-swap/swap/model"
)

// submissionTTL bounds how long a submitted key replays its response.
const submissionTTL = 24 * time.Hour

var IdempotencyCluster = cache.NewCluster("swap-idempotency", cache.ClusterConfig{
	EvictionPolicy: cache.AllKeysLRU,
})

// IdempotencyCache holds one entry per submitted session path and key.
var IdempotencyCache = cache.NewStructKeyspace[model.IdempotencyKey, model.IdempotencyCacheEntry](
	IdempotencyCluster,
	cache.KeyspaceConfig{
		KeyPattern:    "submission/:Resource/:Key",
		DefaultExpiry: cache.ExpireIn(submissionTTL),
	},
)

// entryStore is the part of the keyspace the middleware uses.
type entryStore interface {
	Get(ctx context.Context, key model.IdempotencyKey) (model.IdempotencyCacheEntry, error)
	Set(ctx context.Context, key model.IdempotencyKey, val model.IdempotencyCacheEntry) error
	Delete(ctx context.Context, keys ...model.IdempotencyKey) (int, error)
}

var entries entryStore = IdempotencyCache
