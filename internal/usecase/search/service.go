// Package search ranks the catalog against a query vector and collapses
// near-duplicate editions from the ranked candidates.
package search

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/narralit/bookdex/internal/domain"
	"github.com/narralit/bookdex/internal/domain/search/request"
	"github.com/narralit/bookdex/internal/domain/search/result"
	"github.com/narralit/bookdex/internal/logger"
	"github.com/narralit/bookdex/internal/metrics"
	"github.com/narralit/bookdex/internal/vectorspace"
)

// DedupBufferFactor sizes the candidate buffer at 4x the requested result
// count, so duplicate editions collapsed during the dedup walk do not starve
// the result list.
const DedupBufferFactor = 4

// Service ranks catalog rows by cosine similarity to a query. It owns the
// model, the matrix and the catalog as one paired structure; the row-order
// invariant between matrix and catalog is checked once at construction.
type Service struct {
	model   *vectorspace.Model
	matrix  *vectorspace.Matrix
	catalog domain.Catalog
}

// New creates a search service. It fails when the matrix row count does not
// match the catalog: ranking over mismatched rows is silently wrong, so the
// pairing is rejected up front.
func New(model *vectorspace.Model, matrix *vectorspace.Matrix, catalog domain.Catalog) (*Service, error) {
	if matrix.NumRows() != len(catalog) {
		return nil, fmt.Errorf("%d matrix rows vs %d catalog rows: %w",
			matrix.NumRows(), len(catalog), domain.ErrRowCountMismatch)
	}
	return &Service{model: model, matrix: matrix, catalog: catalog}, nil
}

// Stats reports how the candidate set was formed.
type Stats struct {
	// AuthorMatches is the number of rows matched by the author filter.
	AuthorMatches int
	// FilterFellBack is true when the author filter matched nothing and the
	// search broadened to the full catalog.
	FilterFellBack bool
}

// Search returns the top-N ranked, deduplicated results for the request.
// Results are ordered by non-increasing similarity; equal scores keep
// catalog row order. Fewer than N results is not an error.
func (s *Service) Search(ctx context.Context, req *request.Request) ([]result.Result, Stats, error) {
	start := time.Now()
	log := logger.FromContext(ctx)

	queryVec := s.model.Transform(req.Query())

	candidates, stats := s.candidateRows(ctx, req)
	if len(candidates) == 0 {
		return nil, stats, nil
	}

	scored := make([]scoredRow, len(candidates))
	for i, row := range candidates {
		scored[i] = scoredRow{
			row: row,
			// Rows and query are unit length, so the dot product is cosine
			// similarity; a zero query vector scores 0 everywhere.
			score: vectorspace.Dot(queryVec, s.matrix.Rows[row]),
		}
	}
	// Stable: equal scores keep candidate (catalog) order.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	buffer := DedupBufferFactor * req.TopN()
	if buffer > len(scored) {
		buffer = len(scored)
	}

	results := s.dedupWalk(scored[:buffer], req.TopN())

	metrics.SearchDuration.Observe(time.Since(start).Seconds())
	log.Debug("Search completed",
		zap.Int("candidates", len(candidates)),
		zap.Int("results", len(results)),
		zap.Duration("took", time.Since(start)))

	return results, stats, nil
}

type scoredRow struct {
	row   int
	score float64
}

// candidateRows resolves the author filter into a row index set. A filter
// that matches nothing broadens to the full catalog instead of returning an
// empty result set.
func (s *Service) candidateRows(ctx context.Context, req *request.Request) ([]int, Stats) {
	log := logger.FromContext(ctx)
	filters := req.Filters()

	all := make([]int, len(s.catalog))
	for i := range s.catalog {
		all[i] = i
	}

	if !filters.HasAuthor() {
		return all, Stats{}
	}

	target := filters.NormalizedAuthor()
	var matched []int
	for i, b := range s.catalog {
		if strings.Contains(normalizeAuthor(b.Authors), target) {
			matched = append(matched, i)
		}
	}

	if len(matched) == 0 {
		log.Warn("Author filter matched no rows, searching the full catalog",
			zap.String("author", filters.Author()))
		metrics.SearchFilterFallbacksTotal.Inc()
		return all, Stats{FilterFellBack: true}
	}

	log.Info("Author filter applied",
		zap.String("author", filters.Author()),
		zap.Int("matches", len(matched)))
	return matched, Stats{AuthorMatches: len(matched)}
}

// dedupWalk accepts candidates in descending-score order, dropping later
// entries that duplicate an accepted one. Highest score wins; drops are
// silent.
func (s *Service) dedupWalk(buffer []scoredRow, topN int) []result.Result {
	results := make([]result.Result, 0, topN)
	accepted := make([]dedupKey, 0, topN)

	for _, cand := range buffer {
		if len(results) == topN {
			break
		}

		book := s.catalog[cand.row]
		key := newDedupKey(book)

		duplicate := false
		for _, a := range accepted {
			if key.duplicates(a) {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}

		accepted = append(accepted, key)
		results = append(results, result.New(
			cand.row, book.Title, cand.score, book.Authors, book.Description, book.Rating,
		))
	}
	return results
}

func normalizeAuthor(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "")
}
