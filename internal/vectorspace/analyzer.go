package vectorspace

import (
	"strings"
	"unicode"
)

// tokenize splits text into lowercase letter/digit runs of length >= 2.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len([]rune(f)) < 2 {
			continue
		}
		tokens = append(tokens, strings.ToLower(f))
	}
	return tokens
}

// analyze produces the term sequence for one document: stopwords are dropped
// first, then unigrams and adjacent-pair bigrams are emitted over the
// filtered token stream (bigram parts joined with a single space).
func analyze(text string) []string {
	raw := tokenize(text)
	tokens := raw[:0]
	for _, t := range raw {
		if _, skip := vectorizerStopWords[t]; skip {
			continue
		}
		tokens = append(tokens, t)
	}

	terms := make([]string, 0, 2*len(tokens))
	terms = append(terms, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		terms = append(terms, tokens[i]+" "+tokens[i+1])
	}
	return terms
}
