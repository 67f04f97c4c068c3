package filter

import (
	"fmt"
	"strconv"
	"strings"
)

// Spec holds the optional secondary filters a user can attach to a query.
type Spec struct {
	author string
}

// New creates a filter spec. An empty author means no author filter.
func New(author string) Spec {
	return Spec{author: strings.TrimSpace(author)}
}

// Author returns the raw author filter text.
func (s Spec) Author() string { return s.author }

// HasAuthor reports whether an author filter is set.
func (s Spec) HasAuthor() bool { return s.author != "" }

// NormalizedAuthor returns the author filter lowercased with all whitespace
// removed, the form used for substring matching against catalog rows.
func (s Spec) NormalizedAuthor() string {
	return NormalizeAuthor(s.author)
}

// NormalizeAuthor lowercases s and strips every whitespace run.
func NormalizeAuthor(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "")
}

// PageRange is a parsed page-count filter. The catalog carries no page data,
// so the range is parsed and reported but never applied.
type PageRange struct {
	Min int
	Max int
}

// ParsePages parses input of the form "100-300". A malformed value returns
// an error the caller reports as a warning; the filter is ignored either way.
func ParsePages(input string) (PageRange, error) {
	lo, hi, ok := strings.Cut(strings.TrimSpace(input), "-")
	if !ok {
		return PageRange{}, fmt.Errorf("page range must look like \"100-300\", got %q", input)
	}
	minPages, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return PageRange{}, fmt.Errorf("invalid page range %q: %w", input, err)
	}
	maxPages, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return PageRange{}, fmt.Errorf("invalid page range %q: %w", input, err)
	}
	if minPages < 0 || maxPages < minPages {
		return PageRange{}, fmt.Errorf("invalid page range %q", input)
	}
	return PageRange{Min: minPages, Max: maxPages}, nil
}
