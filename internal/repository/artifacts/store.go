// Package artifacts persists and loads the fitted vector space model, the
// document-term matrix and the title index produced by training.
package artifacts

import (
	"encoding/gob"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/narralit/bookdex/internal/domain"
	"github.com/narralit/bookdex/internal/vectorspace"
)

// Artifact file names inside the store directory.
const (
	modelFile  = "vectorizer.gob"
	matrixFile = "book_vectors.gob"
	indexFile  = "title_index.json"
)

// Store reads and writes training artifacts under a single directory.
type Store struct {
	dir string
}

// New creates a store rooted at dir.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Save persists the model, matrix and title->row index. Each artifact is
// fully written to a temporary file and renamed into place, so a crash
// mid-save never publishes a torn artifact.
//
// Duplicate titles keep the last row index seen (last-write-wins). The index
// is a lossy convenience map; the ranking path never reads it.
func (s *Store) Save(model *vectorspace.Model, matrix *vectorspace.Matrix, titles []string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create artifacts dir: %w", err)
	}

	if err := s.writeGob(modelFile, model); err != nil {
		return fmt.Errorf("save model: %w", err)
	}
	if err := s.writeGob(matrixFile, matrix); err != nil {
		return fmt.Errorf("save matrix: %w", err)
	}

	index := make(map[string]int, len(titles))
	for i, title := range titles {
		index[title] = i
	}
	data, err := json.Marshal(index)
	if err != nil {
		return fmt.Errorf("encode title index: %w", err)
	}
	if err := s.publish(indexFile, data); err != nil {
		return fmt.Errorf("save title index: %w", err)
	}
	return nil
}

// Load reads the model and matrix back. Any absent or undecodable artifact
// (the title index included) yields domain.ErrArtifactsMissing; the caller
// treats that as fatal for the run and points the user at training.
func (s *Store) Load() (*vectorspace.Model, *vectorspace.Matrix, error) {
	var model vectorspace.Model
	if err := s.readGob(modelFile, &model); err != nil {
		return nil, nil, err
	}
	var matrix vectorspace.Matrix
	if err := s.readGob(matrixFile, &matrix); err != nil {
		return nil, nil, err
	}
	if _, err := s.LoadTitleIndex(); err != nil {
		return nil, nil, err
	}
	return &model, &matrix, nil
}

// LoadTitleIndex reads the title->row index.
func (s *Store) LoadTitleIndex() (map[string]int, error) {
	path := filepath.Join(s.dir, indexFile)
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read %s: %v: %w", indexFile, err, domain.ErrArtifactsMissing)
	}
	var index map[string]int
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, fmt.Errorf("decode %s: %v: %w", indexFile, err, domain.ErrArtifactsMissing)
	}
	return index, nil
}

func (s *Store) writeGob(name string, v any) error {
	tmp, err := os.CreateTemp(s.dir, name+".tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := gob.NewEncoder(tmp).Encode(v); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		return fmt.Errorf("publish %s: %w", name, err)
	}
	return nil
}

func (s *Store) publish(name string, data []byte) error {
	tmp, err := os.CreateTemp(s.dir, name+".tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		return fmt.Errorf("publish %s: %w", name, err)
	}
	return nil
}

func (s *Store) readGob(name string, v any) error {
	path := filepath.Join(s.dir, name)
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("read %s: %v: %w", name, err, domain.ErrArtifactsMissing)
	}
	defer func() { _ = f.Close() }()

	if err := gob.NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %v: %w", name, err, domain.ErrArtifactsMissing)
	}
	return nil
}
