// Package cache stores fully processed product lists behind a TTL'd key.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/maicaalmonte/nutricalculator/internal/model"
)

// DefaultTTL is how long a cached result stays valid.
const DefaultTTL = time.Hour

// Store is the narrow key-value contract the cache runs on. Values are opaque
// blobs; an expired key reads as absent.
type Store interface {
	// Get returns the value under key, or ok=false when the key is missing
	// or past its expiry.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	// SetWithTTL stores value under key, overwriting any prior entry, with an
	// absolute expiry of now + ttl.
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Key derives a deterministic cache key from the full request parameter set.
// Identical parameters always hash to the same key; any difference — filters
// included — produces a different key.
func Key(p model.Params) string {
	// Struct marshalling has a fixed field order, so the serialization is
	// canonical.
	b, _ := json.Marshal(p)
	sum := sha256.Sum256(b)
	return "products:" + hex.EncodeToString(sum[:])
}

// Cache serializes product lists in and out of a Store. Store failures are
// logged and treated as misses — the pipeline must keep working when the
// store is down.
type Cache struct {
	store Store
	ttl   time.Duration
	log   *zap.Logger
}

// New constructs a Cache. A non-positive ttl falls back to DefaultTTL.
func New(store Store, ttl time.Duration, log *zap.Logger) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{store: store, ttl: ttl, log: log}
}

// Get returns the cached record list for key, or ok=false on a miss.
func (c *Cache) Get(ctx context.Context, key string) ([]model.ProductRecord, bool) {
	raw, ok, err := c.store.Get(ctx, key)
	if err != nil {
		c.log.Warn("cache get failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var records []model.ProductRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		c.log.Warn("cache entry corrupt, treating as miss", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return records, true
}

// Set stores records under key with the configured TTL, overwriting any
// prior entry.
func (c *Cache) Set(ctx context.Context, key string, records []model.ProductRecord) {
	raw, err := json.Marshal(records)
	if err != nil {
		c.log.Warn("cache marshal failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.store.SetWithTTL(ctx, key, raw, c.ttl); err != nil {
		c.log.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
}
