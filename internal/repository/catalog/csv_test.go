package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/narralit/bookdex/internal/domain"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "books.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_CSV(t *testing.T) {
	path := writeCatalog(t, `title,description,author_names,category_names,rating-avg
The Hobbit,"A hobbit leaves home.",J.R.R. Tolkien,Fantasy | Adventure,4.27
Dune,Desert planet politics.,Frank Herbert,Science Fiction,4.25
`)

	books, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(books) != 2 {
		t.Fatalf("Load() returned %d books, want 2", len(books))
	}

	want := domain.Book{
		Title:       "The Hobbit",
		Description: "A hobbit leaves home.",
		Authors:     "J.R.R. Tolkien",
		Categories:  "Fantasy | Adventure",
		Rating:      4.27,
	}
	if books[0] != want {
		t.Errorf("books[0] = %+v, want %+v", books[0], want)
	}
}

func TestLoad_CSVPreservesRowOrder(t *testing.T) {
	path := writeCatalog(t, `title
Zebra Book
Alpha Book
Middle Book
`)

	books, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := []string{"Zebra Book", "Alpha Book", "Middle Book"}
	for i, title := range want {
		if books[i].Title != title {
			t.Errorf("books[%d].Title = %q, want %q", i, books[i].Title, title)
		}
	}
}

func TestLoad_CSVSkipsEmptyTitles(t *testing.T) {
	path := writeCatalog(t, `title,description
Good Book,kept
,skipped
Another Book,kept
`)

	books, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(books) != 2 {
		t.Errorf("Load() returned %d books, want 2", len(books))
	}
}

func TestLoad_CSVMissingOptionalColumns(t *testing.T) {
	path := writeCatalog(t, `title
Bare Book
`)

	books, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	b := books[0]
	if b.Description != "" || b.Authors != "" || b.Categories != "" || b.Rating != 0 {
		t.Errorf("optional fields not zero-valued: %+v", b)
	}
}

func TestLoad_CSVJunkRating(t *testing.T) {
	path := writeCatalog(t, `title,rating-avg
Odd Book,not-a-number
`)

	books, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if books[0].Rating != 0 {
		t.Errorf("Rating = %g, want 0 for unparseable value", books[0].Rating)
	}
}

func TestLoad_CSVWithoutTitleColumn(t *testing.T) {
	path := writeCatalog(t, `name,description
X,Y
`)

	if _, err := Load(path); err == nil {
		t.Error("Load() succeeded for catalog without title column")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.csv"))
	if !errors.Is(err, domain.ErrCatalogNotFound) {
		t.Errorf("Load() error = %v, want ErrCatalogNotFound", err)
	}
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.xlsx")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() succeeded for unsupported format")
	}
}
