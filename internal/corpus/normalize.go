// Package corpus builds the per-book tag text the vector space is fit over.
package corpus

import (
	"strings"

	"github.com/narralit/bookdex/internal/domain"
)

// categorySeparator is the literal separator used in multi-category fields.
const categorySeparator = " | "

// TagText builds the normalized tags string for a single book:
// cleaned description + lowercase authors + lowercase categories + lowercase
// title, whitespace-collapsed. Missing fields contribute empty strings and
// never a literal null marker.
func TagText(b domain.Book, cleaner Cleaner) string {
	categories := strings.ReplaceAll(b.Categories, categorySeparator, " ")

	joined := cleaner.Clean(b.Description) + " " +
		strings.ToLower(b.Authors) + " " +
		strings.ToLower(categories) + " " +
		strings.ToLower(b.Title)

	return strings.Join(strings.Fields(joined), " ")
}

// TagTexts maps TagText over the whole catalog, preserving row order.
func TagTexts(catalog domain.Catalog, cleaner Cleaner) []string {
	texts := make([]string, len(catalog))
	for i, b := range catalog {
		texts[i] = TagText(b, cleaner)
	}
	return texts
}
