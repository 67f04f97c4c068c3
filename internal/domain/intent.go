package domain

import (
	"context"
	"strings"
)

// IntentRecord is the structured search intent extracted from free text.
// Each field holds short normalized concepts (1-3 words).
//
// ExcludedGenres is part of the extraction schema but is not consumed by any
// filter downstream; it is carried for callers that want to display it.
type IntentRecord struct {
	Themes          []string `json:"themes"`
	Tone            []string `json:"tone"`
	PreferredGenres []string `json:"preferred_genres"`
	ExcludedGenres  []string `json:"excluded_genres"`
}

// QueryText flattens the intent into a single query string for vector search.
// ExcludedGenres is intentionally left out.
func (r IntentRecord) QueryText() string {
	terms := make([]string, 0, len(r.Themes)+len(r.Tone)+len(r.PreferredGenres))
	terms = append(terms, r.Themes...)
	terms = append(terms, r.Tone...)
	terms = append(terms, r.PreferredGenres...)
	return strings.Join(terms, " ")
}

// FallbackIntent seeds themes with the raw user text so search still runs
// when extraction fails.
func FallbackIntent(userText string) IntentRecord {
	return IntentRecord{
		Themes:          []string{userText},
		Tone:            []string{},
		PreferredGenres: []string{},
		ExcludedGenres:  []string{},
	}
}

// EmptyIntent is the no-credential record: every field empty.
func EmptyIntent() IntentRecord {
	return IntentRecord{
		Themes:          []string{},
		Tone:            []string{},
		PreferredGenres: []string{},
		ExcludedGenres:  []string{},
	}
}

// IntentExtractor is the shared intent extraction contract between layers.
// Implementations never return an error to the caller: any unrecoverable
// failure degrades to a fallback record.
type IntentExtractor interface {
	Extract(ctx context.Context, userText string) IntentRecord
}
