// Package recommend orchestrates a full recommendation request: intent
// extraction, query construction and similarity search.
package recommend

import (
	"context"
	"fmt"

	"github.com/narralit/bookdex/internal/domain"
	"github.com/narralit/bookdex/internal/domain/search/filter"
	"github.com/narralit/bookdex/internal/domain/search/request"
	"github.com/narralit/bookdex/internal/domain/search/result"
	searchuc "github.com/narralit/bookdex/internal/usecase/search"
)

// Service turns free-text requests into ranked recommendations.
type Service struct {
	extractor domain.IntentExtractor
	searcher  Searcher
}

// New creates a recommendation service.
func New(extractor domain.IntentExtractor, searcher Searcher) *Service {
	return &Service{extractor: extractor, searcher: searcher}
}

// Recommendation is the outcome of one request.
type Recommendation struct {
	Intent  domain.IntentRecord
	Results []result.Result
	Stats   searchuc.Stats
}

// Recommend extracts intent from userText, flattens it into a query string
// and runs the similarity search. Intent extraction never fails the request;
// at worst the query degrades to the raw user text.
func (s *Service) Recommend(
	ctx context.Context, userText string, topN int, filters filter.Spec,
) (Recommendation, error) {
	intent := s.extractor.Extract(ctx, userText)

	req, err := request.New(intent.QueryText(), topN, filters)
	if err != nil {
		return Recommendation{}, fmt.Errorf("build search request: %w", err)
	}

	results, stats, err := s.searcher.Search(ctx, &req)
	if err != nil {
		return Recommendation{}, fmt.Errorf("search: %w", err)
	}

	return Recommendation{Intent: intent, Results: results, Stats: stats}, nil
}
