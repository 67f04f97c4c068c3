package result

// DescriptionPreviewLen is the number of description characters carried on a
// result before the ellipsis marker.
const DescriptionPreviewLen = 100

// Result is a single ranked recommendation.
type Result struct {
	row         int
	title       string
	score       float64
	authors     string
	description string
	rating      float64
}

// New creates a ranked result. The description is truncated to its first 100
// characters with an appended ellipsis marker; the marker is appended even
// when the description is already shorter than the preview length.
func New(row int, title string, score float64, authors, description string, rating float64) Result {
	return Result{
		row:         row,
		title:       title,
		score:       score,
		authors:     authors,
		description: previewDescription(description),
		rating:      rating,
	}
}

// Row returns the catalog row index the result was drawn from.
func (r *Result) Row() int { return r.row }

// Title returns the book title.
func (r *Result) Title() string { return r.title }

// Score returns the cosine similarity score in [0,1].
func (r *Result) Score() float64 { return r.score }

// Authors returns the raw author names.
func (r *Result) Authors() string { return r.authors }

// Description returns the truncated description preview.
func (r *Result) Description() string { return r.description }

// Rating returns the average rating, 0 when absent from the catalog.
func (r *Result) Rating() float64 { return r.rating }

func previewDescription(s string) string {
	runes := []rune(s)
	if len(runes) > DescriptionPreviewLen {
		runes = runes[:DescriptionPreviewLen]
	}
	return string(runes) + "..."
}
