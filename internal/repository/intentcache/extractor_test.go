package intentcache

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/narralit/bookdex/internal/db"
	"github.com/narralit/bookdex/internal/domain"
)

type fakeStore struct {
	data   map[string][]byte
	getErr error
	setErr error
	ttls   map[string]time.Duration
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (f *fakeStore) Get(_ context.Context, key string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	v, ok := f.data[key]
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	return v, nil
}

func (f *fakeStore) SetWithTTL(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.data[key] = value
	f.ttls[key] = ttl
	return nil
}

type countingExtractor struct {
	intent domain.IntentRecord
	calls  int
}

func (c *countingExtractor) Extract(context.Context, string) domain.IntentRecord {
	c.calls++
	return c.intent
}

func testIntent() domain.IntentRecord {
	return domain.IntentRecord{
		Themes:          []string{"heist"},
		Tone:            []string{"witty"},
		PreferredGenres: []string{"fantasy"},
		ExcludedGenres:  []string{},
	}
}

func TestExtract_MissThenHit(t *testing.T) {
	store := newFakeStore()
	inner := &countingExtractor{intent: testIntent()}
	cached := New(inner, store, time.Hour, nil, zap.NewNop())

	first := cached.Extract(context.Background(), "witty heist fantasy")
	if inner.calls != 1 {
		t.Fatalf("inner called %d times after miss, want 1", inner.calls)
	}

	second := cached.Extract(context.Background(), "witty heist fantasy")
	if inner.calls != 1 {
		t.Errorf("inner called %d times after hit, want still 1", inner.calls)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("cached record %+v differs from original %+v", second, first)
	}
}

func TestExtract_DistinctTextsDistinctKeys(t *testing.T) {
	store := newFakeStore()
	inner := &countingExtractor{intent: testIntent()}
	cached := New(inner, store, time.Hour, nil, zap.NewNop())

	cached.Extract(context.Background(), "first request")
	cached.Extract(context.Background(), "second request")

	if inner.calls != 2 {
		t.Errorf("inner called %d times, want 2 for distinct texts", inner.calls)
	}
	if len(store.data) != 2 {
		t.Errorf("store holds %d entries, want 2", len(store.data))
	}
}

func TestExtract_StoresWithConfiguredTTL(t *testing.T) {
	store := newFakeStore()
	cached := New(&countingExtractor{intent: testIntent()}, store, 30*time.Minute, nil, zap.NewNop())

	cached.Extract(context.Background(), "anything")

	for _, ttl := range store.ttls {
		if ttl != 30*time.Minute {
			t.Errorf("stored TTL = %v, want 30m", ttl)
		}
	}
	if len(store.ttls) != 1 {
		t.Fatalf("store holds %d entries, want 1", len(store.ttls))
	}
}

func TestExtract_GetErrorFallsThroughToInner(t *testing.T) {
	store := newFakeStore()
	store.getErr = errors.New("connection refused")
	inner := &countingExtractor{intent: testIntent()}
	cached := New(inner, store, time.Hour, nil, zap.NewNop())

	got := cached.Extract(context.Background(), "anything")
	if inner.calls != 1 {
		t.Errorf("inner called %d times, want 1", inner.calls)
	}
	if !reflect.DeepEqual(got, testIntent()) {
		t.Errorf("Extract() = %+v, want inner's record", got)
	}
}

func TestExtract_SetErrorIsSilent(t *testing.T) {
	store := newFakeStore()
	store.setErr = errors.New("connection refused")
	inner := &countingExtractor{intent: testIntent()}
	cached := New(inner, store, time.Hour, nil, zap.NewNop())

	got := cached.Extract(context.Background(), "anything")
	if !reflect.DeepEqual(got, testIntent()) {
		t.Errorf("Extract() = %+v, want inner's record despite store failure", got)
	}
}

func TestExtract_CorruptCacheEntryIsMiss(t *testing.T) {
	store := newFakeStore()
	inner := &countingExtractor{intent: testIntent()}
	cached := New(inner, store, time.Hour, nil, zap.NewNop())

	cached.Extract(context.Background(), "anything")
	for k := range store.data {
		store.data[k] = []byte("{corrupt")
	}

	got := cached.Extract(context.Background(), "anything")
	if inner.calls != 2 {
		t.Errorf("inner called %d times, want 2 (corrupt entry treated as miss)", inner.calls)
	}
	if !reflect.DeepEqual(got, testIntent()) {
		t.Errorf("Extract() = %+v, want inner's record", got)
	}
}
