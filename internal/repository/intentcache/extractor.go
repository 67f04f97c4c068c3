// Package intentcache caches extracted intent records in a key-value store.
package intentcache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/narralit/bookdex/internal/db"
	"github.com/narralit/bookdex/internal/domain"
)

const cacheKeyPrefix = "bookdex:intent_cache:"

// store is the consumer interface for the intent cache (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// CachedExtractor caches intent records keyed by the hashed user text.
// Cache failures are never surfaced: a broken cache degrades to a direct
// extractor call.
type CachedExtractor struct {
	inner      domain.IntentExtractor
	store      store
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// New creates a caching decorator.
// cacheTotal is a counter vec with label "result" ("hit"/"miss"), passed explicitly.
func New(
	inner domain.IntentExtractor,
	s store,
	ttl time.Duration,
	cacheTotal *prometheus.CounterVec,
	logger *zap.Logger,
) *CachedExtractor {
	return &CachedExtractor{
		inner:      inner,
		store:      s,
		ttl:        ttl,
		cacheTotal: cacheTotal,
		logger:     logger,
	}
}

// Extract returns a cached intent record or calls the inner extractor.
func (c *CachedExtractor) Extract(ctx context.Context, userText string) domain.IntentRecord {
	key := c.cacheKey(userText)

	if intent, ok := c.getFromCache(ctx, key); ok {
		c.incCache("hit")
		return intent
	}
	c.incCache("miss")

	intent := c.inner.Extract(ctx, userText)
	c.putToCache(ctx, key, intent)
	return intent
}

func (c *CachedExtractor) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}

func (c *CachedExtractor) cacheKey(text string) string {
	h := sha256.Sum256([]byte(text))
	return cacheKeyPrefix + hex.EncodeToString(h[:])
}

func (c *CachedExtractor) getFromCache(ctx context.Context, key string) (domain.IntentRecord, bool) {
	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			c.logger.Warn("Failed to get cached intent", zap.String("key", key), zap.Error(err))
		}
		return domain.IntentRecord{}, false
	}

	var intent domain.IntentRecord
	if err := json.Unmarshal(data, &intent); err != nil {
		c.logger.Warn("Failed to parse cached intent", zap.String("key", key), zap.Error(err))
		return domain.IntentRecord{}, false
	}
	return intent, true
}

func (c *CachedExtractor) putToCache(ctx context.Context, key string, intent domain.IntentRecord) {
	data, err := json.Marshal(intent)
	if err != nil {
		c.logger.Warn("Failed to encode intent for cache", zap.Error(err))
		return
	}
	if err := c.store.SetWithTTL(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("Failed to cache intent", zap.String("key", key), zap.Error(err))
	}
}
