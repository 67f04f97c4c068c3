package recommend

import (
	"context"

	"github.com/narralit/bookdex/internal/domain/search/request"
	"github.com/narralit/bookdex/internal/domain/search/result"
	searchuc "github.com/narralit/bookdex/internal/usecase/search"
)

// Searcher ranks the catalog for a validated request.
type Searcher interface {
	Search(ctx context.Context, req *request.Request) ([]result.Result, searchuc.Stats, error)
}
