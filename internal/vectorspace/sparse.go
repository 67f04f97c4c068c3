package vectorspace

import "math"

// Vector is a sparse weight vector. Indices are strictly increasing column
// positions; Values holds the weight at each position.
type Vector struct {
	Indices []int
	Values  []float64
}

// IsZero reports whether the vector has no non-zero entries.
func (v Vector) IsZero() bool { return len(v.Indices) == 0 }

// Norm returns the Euclidean norm.
func (v Vector) Norm() float64 {
	var sum float64
	for _, x := range v.Values {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// Normalize scales the vector to unit length in place.
// A zero vector is left unchanged.
func (v Vector) Normalize() {
	n := v.Norm()
	if n == 0 {
		return
	}
	for i := range v.Values {
		v.Values[i] /= n
	}
}

// Dot computes the dot product of two sparse vectors via a merge walk over
// their sorted indices. With unit-length inputs this is cosine similarity;
// a zero vector against anything yields 0.
func Dot(a, b Vector) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(a.Indices) && j < len(b.Indices) {
		switch {
		case a.Indices[i] == b.Indices[j]:
			sum += a.Values[i] * b.Values[j]
			i++
			j++
		case a.Indices[i] < b.Indices[j]:
			i++
		default:
			j++
		}
	}
	return sum
}

// Matrix is a row-major sparse document-term matrix. Row i holds the weight
// vector of catalog row i; the correspondence is positional and fixed.
type Matrix struct {
	Rows []Vector
	Cols int
}

// NumRows returns the number of document rows.
func (m *Matrix) NumRows() int { return len(m.Rows) }

// NNZ returns the number of stored non-zero entries.
func (m *Matrix) NNZ() int {
	var n int
	for _, r := range m.Rows {
		n += len(r.Indices)
	}
	return n
}
