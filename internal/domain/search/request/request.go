package request

import (
	"fmt"

	"github.com/narralit/bookdex/internal/domain/search/filter"
)

// Search parameter limits.
const (
	// MaxQueryLength is the maximum allowed query text length.
	MaxQueryLength = 4096
	DefaultTopN    = 5
	MaxTopN        = 100
)

// Request is a validated similarity search query. The query text may be
// empty or entirely out of vocabulary; such queries score zero against every
// candidate and still return rows in catalog-order tie-break.
type Request struct {
	query   string
	topN    int
	filters filter.Spec
}

// New validates and normalizes search parameters.
// topN defaults to 5 and is clamped to 100.
func New(query string, topN int, filters filter.Spec) (Request, error) {
	if len(query) > MaxQueryLength {
		return Request{}, fmt.Errorf("query too long (max %d chars)", MaxQueryLength)
	}
	if topN <= 0 {
		topN = DefaultTopN
	}
	if topN > MaxTopN {
		topN = MaxTopN
	}
	return Request{query: query, topN: topN, filters: filters}, nil
}

// Query returns the query text.
func (r *Request) Query() string { return r.query }

// TopN returns the maximum number of results to return.
func (r *Request) TopN() int { return r.topN }

// Filters returns the secondary filters.
func (r *Request) Filters() filter.Spec { return r.filters }
