// Package train runs the offline build: normalize the catalog, fit the
// vector space and persist the artifacts the query path depends on.
package train

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/narralit/bookdex/internal/corpus"
	"github.com/narralit/bookdex/internal/domain"
	"github.com/narralit/bookdex/internal/logger"
	"github.com/narralit/bookdex/internal/vectorspace"
)

// ArtifactWriter persists the fitted model, matrix and title index.
type ArtifactWriter interface {
	Save(model *vectorspace.Model, matrix *vectorspace.Matrix, titles []string) error
}

// Service fits the vector space over a catalog and publishes artifacts.
type Service struct {
	cleaner corpus.Cleaner
	writer  ArtifactWriter
	params  vectorspace.Params
}

// New creates a training service.
func New(cleaner corpus.Cleaner, writer ArtifactWriter, params vectorspace.Params) *Service {
	return &Service{cleaner: cleaner, writer: writer, params: params}
}

// Train builds and persists the artifacts for catalog. Resource exhaustion
// during fitting and artifact write failures are fatal and propagate; there
// is nothing to retry, the corpus or the vocabulary cap has to change.
func (s *Service) Train(ctx context.Context, catalog domain.Catalog) error {
	log := logger.FromContext(ctx)

	log.Info("Normalizing catalog", zap.Int("rows", len(catalog)))
	texts := corpus.TagTexts(catalog, s.cleaner)

	log.Info("Fitting vector space")
	model, matrix, err := vectorspace.Fit(texts, s.params)
	if err != nil {
		return fmt.Errorf("fit vector space: %w", err)
	}
	log.Info("Vector space fitted",
		zap.Int("rows", matrix.NumRows()),
		zap.Int("vocabulary", len(model.Terms)),
		zap.Int("entries", matrix.NNZ()))

	if err := s.writer.Save(model, matrix, catalog.Titles()); err != nil {
		return fmt.Errorf("save artifacts: %w", err)
	}
	log.Info("Artifacts published")
	return nil
}
