package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/narralit/bookdex/internal/config"
	dbRedis "github.com/narralit/bookdex/internal/db/redis"
	"github.com/narralit/bookdex/internal/domain"
	logpkg "github.com/narralit/bookdex/internal/logger"
	"github.com/narralit/bookdex/internal/metrics"
	"github.com/narralit/bookdex/internal/repository/artifacts"
	"github.com/narralit/bookdex/internal/repository/catalog"
	"github.com/narralit/bookdex/internal/repository/intentcache"
	openaiIntent "github.com/narralit/bookdex/internal/transport/openai"
	"github.com/narralit/bookdex/internal/usecase/recommend"
	searchuc "github.com/narralit/bookdex/internal/usecase/search"
)

func newLogger(env, level string) (*zap.Logger, error) {
	return logpkg.NewLogger(env, level)
}

// buildRecommender assembles the full query-time pipeline: artifacts,
// catalog, search service, intent extractor and the optional Redis cache.
// The returned closer shuts down the cache connection when one was opened.
func buildRecommender(cfg config.Config, log *zap.Logger) (*recommend.Service, func(), error) {
	store := artifacts.New(cfg.Artifacts.Dir)
	model, matrix, err := store.Load()
	if err != nil {
		if errors.Is(err, domain.ErrArtifactsMissing) {
			return nil, nil, fmt.Errorf("%w: run \"bookdex train\" first", err)
		}
		return nil, nil, fmt.Errorf("load artifacts: %w", err)
	}

	books, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("load catalog: %w", err)
	}

	searchSvc, err := searchuc.New(model, matrix, books)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: re-run \"bookdex train\" against the current catalog", err)
	}

	extractor, closer := buildExtractor(cfg, log)

	log.Info("Recommender ready",
		zap.Int("books", len(books)),
		zap.Int("vocabulary", len(model.Terms)))
	return recommend.New(extractor, searchSvc), closer, nil
}

// buildExtractor assembles the intent decorator chain: OpenAI -> Cached.
func buildExtractor(cfg config.Config, log *zap.Logger) (domain.IntentExtractor, func()) {
	var extractor domain.IntentExtractor = openaiIntent.NewExtractor(&openaiIntent.Config{
		APIKey:  cfg.Intent.APIKey,
		BaseURL: cfg.Intent.BaseURL,
		Model:   cfg.Intent.Model,
		Logger:  log,
	})
	closer := func() {}

	if cfg.Cache.Enabled {
		store, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Cache.Addrs,
			Password: cfg.Cache.Password,
		})
		if err != nil {
			log.Warn("Intent cache unavailable, continuing without it", zap.Error(err))
			return extractor, closer
		}

		readiness := time.Duration(cfg.Cache.ReadinessTimeout) * time.Second
		if err := store.WaitForReady(context.Background(), readiness); err != nil {
			log.Warn("Intent cache not ready, continuing without it", zap.Error(err))
			store.Close()
			return extractor, closer
		}

		ttl := time.Duration(cfg.Cache.TTLSec) * time.Second
		extractor = intentcache.New(extractor, store, ttl, metrics.IntentCacheTotal, log)
		closer = store.Close
		log.Info("Intent cache enabled", zap.Strings("addrs", cfg.Cache.Addrs))
	}

	return extractor, closer
}
