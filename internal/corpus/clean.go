package corpus

import (
	"strings"
	"unicode"
)

// Cleaner normalizes raw description text into a space-joined token string.
type Cleaner interface {
	Clean(raw string) string
}

// StandardCleaner lowercases, strips punctuation, removes English stopwords
// while preserving negations, and lemmatizes each remaining token.
type StandardCleaner struct {
	stop map[string]struct{}
}

// NewStandardCleaner builds the cleaner with the negation-preserving
// stopword set.
func NewStandardCleaner() *StandardCleaner {
	stop := make(map[string]struct{}, len(englishStopWords))
	for _, w := range englishStopWords {
		if _, keep := negations[w]; keep {
			continue
		}
		stop[w] = struct{}{}
	}
	return &StandardCleaner{stop: stop}
}

// Clean implements Cleaner. Non-text input (empty string) yields "".
func (c *StandardCleaner) Clean(raw string) string {
	text := stripPunctuation(strings.ToLower(raw))

	var out []string
	for _, tok := range strings.Fields(text) {
		if _, skip := c.stop[tok]; skip {
			continue
		}
		out = append(out, lemmatize(tok))
	}
	return strings.Join(out, " ")
}

// stripPunctuation removes punctuation and symbol runes, keeping letters,
// digits and whitespace. Removed runes are dropped, not replaced by spaces,
// matching the corpus the vector space was defined over ("don't" -> "dont").
func stripPunctuation(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// lemmatize applies fixed noun-style suffix rules. It is a deliberately small
// stemmer: the only requirement is plural/singular symmetry between the
// corpus and query sides, both of which pass through this same function.
func lemmatize(w string) string {
	switch {
	case len(w) > 4 && strings.HasSuffix(w, "sses"):
		return w[:len(w)-2]
	case len(w) > 3 && strings.HasSuffix(w, "ies"):
		return w[:len(w)-3] + "y"
	case len(w) > 3 && (strings.HasSuffix(w, "xes") ||
		strings.HasSuffix(w, "ches") || strings.HasSuffix(w, "shes")):
		return w[:len(w)-2]
	case len(w) > 3 && strings.HasSuffix(w, "s") &&
		!strings.HasSuffix(w, "ss") && !strings.HasSuffix(w, "us") &&
		!strings.HasSuffix(w, "is") && !strings.HasSuffix(w, "os"):
		return w[:len(w)-1]
	default:
		return w
	}
}
