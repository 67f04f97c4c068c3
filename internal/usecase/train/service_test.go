package train

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/narralit/bookdex/internal/corpus"
	"github.com/narralit/bookdex/internal/domain"
	"github.com/narralit/bookdex/internal/vectorspace"
)

type captureWriter struct {
	model  *vectorspace.Model
	matrix *vectorspace.Matrix
	titles []string
	err    error
}

func (w *captureWriter) Save(model *vectorspace.Model, matrix *vectorspace.Matrix, titles []string) error {
	w.model, w.matrix, w.titles = model, matrix, titles
	return w.err
}

var trainCatalog = domain.Catalog{
	{Title: "Dragon Tales", Description: "dragons guard ancient treasure hoards", Authors: "A. Author", Categories: "Fantasy"},
	{Title: "Ocean Deep", Description: "dragons dive for sunken treasure ships", Authors: "B. Writer", Categories: "Adventure"},
}

func TestTrain_PublishesArtifacts(t *testing.T) {
	writer := &captureWriter{}
	svc := New(corpus.NewStandardCleaner(), writer, vectorspace.Params{MinDF: 1, MaxDFRatio: 1})

	if err := svc.Train(context.Background(), trainCatalog); err != nil {
		t.Fatalf("Train() error = %v", err)
	}

	if writer.model == nil || writer.matrix == nil {
		t.Fatal("Save() not called with fitted artifacts")
	}
	if got := writer.matrix.NumRows(); got != len(trainCatalog) {
		t.Errorf("matrix rows = %d, want %d", got, len(trainCatalog))
	}
	if want := []string{"Dragon Tales", "Ocean Deep"}; !reflect.DeepEqual(writer.titles, want) {
		t.Errorf("titles = %v, want %v", writer.titles, want)
	}
	if _, ok := writer.model.Vocab["treasure"]; !ok {
		t.Errorf("vocabulary %v missing a shared description term", writer.model.Terms)
	}
}

func TestTrain_ResourceExhaustionPropagates(t *testing.T) {
	writer := &captureWriter{}
	svc := New(corpus.NewStandardCleaner(), writer, vectorspace.Params{
		MinDF: 1, MaxDFRatio: 1, MaxMatrixEntries: 1,
	})

	err := svc.Train(context.Background(), trainCatalog)
	if !errors.Is(err, domain.ErrResourceExhausted) {
		t.Errorf("Train() error = %v, want ErrResourceExhausted", err)
	}
	if writer.model != nil {
		t.Error("Save() called despite a fitting failure")
	}
}

func TestTrain_WriteFailurePropagates(t *testing.T) {
	wantErr := errors.New("disk full")
	svc := New(corpus.NewStandardCleaner(), &captureWriter{err: wantErr}, vectorspace.Params{MinDF: 1, MaxDFRatio: 1})

	if err := svc.Train(context.Background(), trainCatalog); !errors.Is(err, wantErr) {
		t.Errorf("Train() error = %v, want wrapped %v", err, wantErr)
	}
}
