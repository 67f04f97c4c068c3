// Package vectorspace fits a TF-IDF weighting model over a text corpus and
// maps texts into sparse weight vectors over the fitted vocabulary.
package vectorspace

import (
	"fmt"
	"math"
	"sort"

	"github.com/narralit/bookdex/internal/domain"
)

// Default fitting parameters.
const (
	DefaultMaxFeatures = 20000
	DefaultMinDF       = 2
	DefaultMaxDFRatio  = 0.85
)

// Params control vocabulary selection and the matrix size budget.
type Params struct {
	// MaxFeatures caps the vocabulary at the highest-ranked terms by corpus
	// term count; ties at the selection boundary break lexicographically.
	MaxFeatures int
	// MinDF excludes terms appearing in fewer documents than this.
	MinDF int
	// MaxDFRatio excludes terms appearing in more than this fraction of
	// documents.
	MaxDFRatio float64
	// MaxMatrixEntries bounds the non-zero entries of the fitted matrix.
	// Fitting fails with domain.ErrResourceExhausted beyond it. 0 = unlimited.
	MaxMatrixEntries int
}

// DefaultParams returns the standard fitting parameters.
func DefaultParams() Params {
	return Params{
		MaxFeatures: DefaultMaxFeatures,
		MinDF:       DefaultMinDF,
		MaxDFRatio:  DefaultMaxDFRatio,
	}
}

func (p Params) withDefaults() Params {
	if p.MaxFeatures <= 0 {
		p.MaxFeatures = DefaultMaxFeatures
	}
	if p.MinDF <= 0 {
		p.MinDF = DefaultMinDF
	}
	if p.MaxDFRatio <= 0 || p.MaxDFRatio > 1 {
		p.MaxDFRatio = DefaultMaxDFRatio
	}
	return p
}

// Model is a fitted TF-IDF weighting function over a fixed vocabulary of
// unigrams and bigrams. Immutable once fit.
type Model struct {
	// Terms holds the vocabulary in column order (lexicographic).
	Terms []string
	// Vocab maps a term to its column index.
	Vocab map[string]int
	// IDF holds the inverse document frequency weight per column.
	IDF []float64
}

// Fit builds a model and document-term matrix from the corpus tag texts.
// Row i of the matrix describes texts[i]. Deterministic: an identical corpus
// yields an identical vocabulary, IDF and matrix.
func Fit(texts []string, p Params) (*Model, *Matrix, error) {
	p = p.withDefaults()
	n := len(texts)

	analyzed := make([][]string, n)
	df := make(map[string]int)
	corpusCount := make(map[string]int)
	for i, text := range texts {
		terms := analyze(text)
		analyzed[i] = terms
		seen := make(map[string]struct{}, len(terms))
		for _, t := range terms {
			corpusCount[t]++
			if _, dup := seen[t]; dup {
				continue
			}
			seen[t] = struct{}{}
			df[t]++
		}
	}

	model := buildVocabulary(df, corpusCount, n, p)

	matrix := &Matrix{Rows: make([]Vector, n), Cols: len(model.Terms)}
	var nnz int
	for i, terms := range analyzed {
		row := model.vectorize(terms)
		nnz += len(row.Indices)
		if p.MaxMatrixEntries > 0 && nnz > p.MaxMatrixEntries {
			return nil, nil, fmt.Errorf(
				"document matrix exceeds %d entries at row %d (reduce the vocabulary cap): %w",
				p.MaxMatrixEntries, i, domain.ErrResourceExhausted)
		}
		matrix.Rows[i] = row
	}

	return model, matrix, nil
}

// buildVocabulary selects terms by document-frequency bounds and the feature
// cap, then assigns lexicographic column order and computes smoothed IDF.
func buildVocabulary(df, corpusCount map[string]int, n int, p Params) *Model {
	maxDF := p.MaxDFRatio * float64(n)

	selected := make([]string, 0, len(df))
	for t, d := range df {
		if d < p.MinDF || float64(d) > maxDF {
			continue
		}
		selected = append(selected, t)
	}

	if len(selected) > p.MaxFeatures {
		sort.Slice(selected, func(i, j int) bool {
			ci, cj := corpusCount[selected[i]], corpusCount[selected[j]]
			if ci != cj {
				return ci > cj
			}
			return selected[i] < selected[j]
		})
		selected = selected[:p.MaxFeatures]
	}
	sort.Strings(selected)

	model := &Model{
		Terms: selected,
		Vocab: make(map[string]int, len(selected)),
		IDF:   make([]float64, len(selected)),
	}
	for col, t := range selected {
		model.Vocab[t] = col
		// Smoothed IDF: ln((1+N)/(1+df)) + 1.
		model.IDF[col] = math.Log(float64(1+n)/float64(1+df[t])) + 1
	}
	return model
}

// Transform maps a raw text into a unit-length sparse weight vector over the
// fitted vocabulary. Terms outside the vocabulary contribute zero weight; a
// fully out-of-vocabulary text yields the zero vector.
func (m *Model) Transform(text string) Vector {
	return m.vectorize(analyze(text))
}

func (m *Model) vectorize(terms []string) Vector {
	counts := make(map[int]float64)
	for _, t := range terms {
		if col, ok := m.Vocab[t]; ok {
			counts[col]++
		}
	}

	v := Vector{
		Indices: make([]int, 0, len(counts)),
		Values:  make([]float64, 0, len(counts)),
	}
	for col := range counts {
		v.Indices = append(v.Indices, col)
	}
	sort.Ints(v.Indices)
	for _, col := range v.Indices {
		v.Values = append(v.Values, counts[col]*m.IDF[col])
	}
	v.Normalize()
	return v
}
