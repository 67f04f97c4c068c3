package search

import (
	"strings"

	"github.com/narralit/bookdex/internal/domain"
)

// dedupKey is the normalized identity used to collapse near-duplicate
// catalog entries (different editions of the same work).
type dedupKey struct {
	baseTitle    string
	authorTokens map[string]struct{}
}

// newDedupKey computes the base title (substring before the first '(' or ':'
// character, trimmed and lowercased) and the author token set (lowercased,
// whitespace-split).
func newDedupKey(book domain.Book) dedupKey {
	return dedupKey{
		baseTitle:    baseTitle(book.Title),
		authorTokens: authorTokens(book.Authors),
	}
}

// duplicates reports whether two keys describe the same work: equal base
// titles, and either both author sets empty or at least one shared token.
func (k dedupKey) duplicates(other dedupKey) bool {
	if k.baseTitle != other.baseTitle {
		return false
	}
	if len(k.authorTokens) == 0 && len(other.authorTokens) == 0 {
		return true
	}
	for t := range k.authorTokens {
		if _, ok := other.authorTokens[t]; ok {
			return true
		}
	}
	return false
}

func baseTitle(title string) string {
	if i := strings.IndexAny(title, "(:"); i >= 0 {
		title = title[:i]
	}
	return strings.ToLower(strings.TrimSpace(title))
}

func authorTokens(authors string) map[string]struct{} {
	tokens := strings.Fields(strings.ToLower(authors))
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}
