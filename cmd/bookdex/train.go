package main

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/narralit/bookdex/internal/config"
	"github.com/narralit/bookdex/internal/corpus"
	"github.com/narralit/bookdex/internal/domain"
	logpkg "github.com/narralit/bookdex/internal/logger"
	"github.com/narralit/bookdex/internal/repository/artifacts"
	"github.com/narralit/bookdex/internal/repository/catalog"
	"github.com/narralit/bookdex/internal/usecase/train"
	"github.com/narralit/bookdex/internal/vectorspace"
)

// runTrain fits the vector space over the catalog and publishes artifacts.
func runTrain(cfg config.Config, log *zap.Logger) error {
	books, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		if errors.Is(err, domain.ErrCatalogNotFound) {
			return fmt.Errorf("%w: place the catalog at %s or set catalog.path", err, cfg.Catalog.Path)
		}
		return fmt.Errorf("load catalog: %w", err)
	}
	log.Info("Catalog loaded", zap.String("path", cfg.Catalog.Path), zap.Int("rows", len(books)))

	svc := train.New(
		corpus.NewStandardCleaner(),
		artifacts.New(cfg.Artifacts.Dir),
		vectorspace.Params{
			MaxFeatures:      cfg.Vectorizer.MaxFeatures,
			MinDF:            cfg.Vectorizer.MinDF,
			MaxDFRatio:       cfg.Vectorizer.MaxDFRatio,
			MaxMatrixEntries: cfg.Vectorizer.MaxMatrixEntries,
		},
	)

	ctx := logpkg.ContextWithLogger(context.Background(), log)
	if err := svc.Train(ctx, books); err != nil {
		if errors.Is(err, domain.ErrResourceExhausted) {
			return fmt.Errorf("%w: reduce vectorizer.max_features and retrain", err)
		}
		return err
	}

	log.Info("Training complete", zap.String("artifacts", cfg.Artifacts.Dir))
	return nil
}
