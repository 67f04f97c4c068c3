package vectorspace

import (
	"math"
	"testing"
)

func TestDot(t *testing.T) {
	a := Vector{Indices: []int{0, 2, 5}, Values: []float64{1, 2, 3}}
	b := Vector{Indices: []int{2, 3, 5}, Values: []float64{4, 9, 1}}

	if got := Dot(a, b); got != 11 {
		t.Errorf("Dot() = %g, want 11", got)
	}
	// symmetric
	if got := Dot(b, a); got != 11 {
		t.Errorf("Dot() reversed = %g, want 11", got)
	}
}

func TestDot_ZeroVector(t *testing.T) {
	a := Vector{}
	b := Vector{Indices: []int{0}, Values: []float64{5}}

	if got := Dot(a, b); got != 0 {
		t.Errorf("Dot(zero, v) = %g, want 0", got)
	}
}

func TestNormalize(t *testing.T) {
	v := Vector{Indices: []int{1, 4}, Values: []float64{3, 4}}
	v.Normalize()

	if got := v.Norm(); math.Abs(got-1) > 1e-12 {
		t.Errorf("Norm() after Normalize = %g, want 1", got)
	}
	if math.Abs(v.Values[0]-0.6) > 1e-12 || math.Abs(v.Values[1]-0.8) > 1e-12 {
		t.Errorf("Normalize() = %v, want [0.6 0.8]", v.Values)
	}
}

func TestNormalize_ZeroVectorUnchanged(t *testing.T) {
	v := Vector{}
	v.Normalize()
	if !v.IsZero() {
		t.Error("zero vector changed by Normalize")
	}
}

func TestMatrixNNZ(t *testing.T) {
	m := Matrix{
		Rows: []Vector{
			{Indices: []int{0, 1}, Values: []float64{1, 1}},
			{},
			{Indices: []int{2}, Values: []float64{1}},
		},
		Cols: 3,
	}
	if got := m.NNZ(); got != 3 {
		t.Errorf("NNZ() = %d, want 3", got)
	}
	if got := m.NumRows(); got != 3 {
		t.Errorf("NumRows() = %d, want 3", got)
	}
}
