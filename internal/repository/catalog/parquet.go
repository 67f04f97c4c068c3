package catalog

import (
	"fmt"

	"github.com/parquet-go/parquet-go"

	"github.com/narralit/bookdex/internal/domain"
)

// bookRow mirrors the parquet catalog schema. Optional columns are pointers
// so null cells survive decoding.
type bookRow struct {
	Title       string   `parquet:"title"`
	Description *string  `parquet:"description,optional"`
	Authors     *string  `parquet:"author_names,optional"`
	Categories  *string  `parquet:"category_names,optional"`
	Rating      *float64 `parquet:"rating_avg,optional"`
}

// loadParquet reads a parquet catalog, preserving file row order.
func loadParquet(path string) (domain.Catalog, error) {
	rows, err := parquet.ReadFile[bookRow](path)
	if err != nil {
		return nil, fmt.Errorf("read parquet catalog: %w", err)
	}

	books := make(domain.Catalog, 0, len(rows))
	for _, row := range rows {
		if row.Title == "" {
			continue
		}
		books = append(books, domain.Book{
			Title:       row.Title,
			Description: deref(row.Description),
			Authors:     deref(row.Authors),
			Categories:  deref(row.Categories),
			Rating:      derefFloat(row.Rating),
		})
	}
	return books, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefFloat(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
