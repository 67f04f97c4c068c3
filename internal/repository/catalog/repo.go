// Package catalog loads the book catalog from tabular files. Row order in
// the file is preserved exactly; it defines the matrix row correspondence.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/narralit/bookdex/internal/domain"
)

// Load reads a catalog file, dispatching on extension (.csv or .parquet).
// A missing file yields domain.ErrCatalogNotFound.
func Load(path string) (domain.Catalog, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, domain.ErrCatalogNotFound)
		}
		return nil, fmt.Errorf("stat catalog %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return loadCSV(path)
	case ".parquet":
		return loadParquet(path)
	default:
		return nil, fmt.Errorf("unsupported catalog format %q (want .csv or .parquet)", filepath.Ext(path))
	}
}
