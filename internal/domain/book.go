package domain

// Book is a single catalog row. Field order in the catalog file defines the
// row index shared with the document-term matrix.
type Book struct {
	Title       string
	Description string
	Authors     string
	Categories  string
	Rating      float64
}

// Catalog is an ordered sequence of books. Row order is fixed at load time
// and must match the matrix produced at training time; changing it between
// the two invalidates every similarity score.
type Catalog []Book

// Titles returns the catalog titles in row order.
func (c Catalog) Titles() []string {
	titles := make([]string, len(c))
	for i, b := range c {
		titles[i] = b.Title
	}
	return titles
}
