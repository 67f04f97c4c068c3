package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/narralit/bookdex/internal/domain"
)

// Recognized CSV header names.
const (
	colTitle       = "title"
	colDescription = "description"
	colAuthors     = "author_names"
	colCategories  = "category_names"
	colRating      = "rating-avg"
)

// loadCSV reads a header-mapped CSV catalog. Optional columns may be absent
// entirely; rows with an empty title are skipped.
func loadCSV(path string) (domain.Catalog, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read catalog header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(strings.ToLower(name))] = i
	}
	if _, ok := cols[colTitle]; !ok {
		return nil, fmt.Errorf("catalog %s has no %q column", path, colTitle)
	}

	var books domain.Catalog
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read catalog row %d: %w", len(books)+1, err)
		}

		title := field(record, cols, colTitle)
		if title == "" {
			continue
		}
		books = append(books, domain.Book{
			Title:       title,
			Description: field(record, cols, colDescription),
			Authors:     field(record, cols, colAuthors),
			Categories:  field(record, cols, colCategories),
			Rating:      ratingField(record, cols),
		})
	}
	return books, nil
}

func field(record []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(record) {
		return ""
	}
	return record[i]
}

// ratingField parses rating-avg, defaulting to 0 on absence or junk.
func ratingField(record []string, cols map[string]int) float64 {
	raw := strings.TrimSpace(field(record, cols, colRating))
	if raw == "" {
		return 0
	}
	rating, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return rating
}
