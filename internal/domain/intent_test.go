package domain

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestIntentRecord_QueryText(t *testing.T) {
	r := IntentRecord{
		Themes:          []string{"found family", "redemption"},
		Tone:            []string{"hopeful"},
		PreferredGenres: []string{"fantasy"},
		ExcludedGenres:  []string{"horror"},
	}

	want := "found family redemption hopeful fantasy"
	if got := r.QueryText(); got != want {
		t.Errorf("QueryText() = %q, want %q (excluded genres left out)", got, want)
	}
}

func TestIntentRecord_QueryTextEmpty(t *testing.T) {
	if got := EmptyIntent().QueryText(); got != "" {
		t.Errorf("QueryText() = %q, want empty", got)
	}
}

func TestFallbackIntent(t *testing.T) {
	r := FallbackIntent("dark academic mysteries")

	if got := r.QueryText(); got != "dark academic mysteries" {
		t.Errorf("QueryText() = %q, want the raw user text", got)
	}
	if len(r.Tone) != 0 || len(r.PreferredGenres) != 0 || len(r.ExcludedGenres) != 0 {
		t.Errorf("FallbackIntent() = %+v, want only themes populated", r)
	}
}

func TestIntentRecord_JSONRoundTrip(t *testing.T) {
	in := `{"themes":["heist"],"tone":["witty"],"preferred_genres":["fantasy"],"excluded_genres":["grimdark"]}`

	var r IntentRecord
	if err := json.Unmarshal([]byte(in), &r); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	want := IntentRecord{
		Themes:          []string{"heist"},
		Tone:            []string{"witty"},
		PreferredGenres: []string{"fantasy"},
		ExcludedGenres:  []string{"grimdark"},
	}
	if !reflect.DeepEqual(r, want) {
		t.Errorf("Unmarshal() = %+v, want %+v", r, want)
	}
}
