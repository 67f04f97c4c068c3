package search

import (
	"testing"

	"github.com/narralit/bookdex/internal/domain"
)

func TestDedupKey_BaseTitle(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Dark Souls", "dark souls"},
		{"Dark Souls : Remastered", "dark souls"},
		{"Dark Souls (Deluxe Edition)", "dark souls"},
		{"The Hobbit: There and Back Again", "the hobbit"},
		{"  Spaced Out  ", "spaced out"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := baseTitle(tt.title); got != tt.want {
			t.Errorf("baseTitle(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestDedupKey_Duplicates(t *testing.T) {
	tests := []struct {
		name string
		a    domain.Book
		b    domain.Book
		want bool
	}{
		{
			name: "edition suffix with same author",
			a:    domain.Book{Title: "Dark Souls", Authors: "Hidetaka Miyazaki"},
			b:    domain.Book{Title: "Dark Souls : Remastered", Authors: "Hidetaka Miyazaki"},
			want: true,
		},
		{
			name: "shared author token is enough",
			a:    domain.Book{Title: "Good Omens", Authors: "Terry Pratchett"},
			b:    domain.Book{Title: "Good Omens (TV Tie-In)", Authors: "Neil Gaiman, Terry Pratchett"},
			want: true,
		},
		{
			name: "same base title different authors",
			a:    domain.Book{Title: "The Road", Authors: "Cormac McCarthy"},
			b:    domain.Book{Title: "The Road", Authors: "Jack London"},
			want: false,
		},
		{
			name: "different base titles",
			a:    domain.Book{Title: "Dark Souls", Authors: "Hidetaka Miyazaki"},
			b:    domain.Book{Title: "Dark Tides", Authors: "Hidetaka Miyazaki"},
			want: false,
		},
		{
			name: "both author fields empty",
			a:    domain.Book{Title: "Anonymous Tales"},
			b:    domain.Book{Title: "Anonymous Tales (Reprint)"},
			want: true,
		},
		{
			name: "one author field empty",
			a:    domain.Book{Title: "Anonymous Tales"},
			b:    domain.Book{Title: "Anonymous Tales", Authors: "Someone"},
			want: false,
		},
		{
			name: "author case ignored",
			a:    domain.Book{Title: "Dune", Authors: "FRANK HERBERT"},
			b:    domain.Book{Title: "Dune (Movie Edition)", Authors: "frank herbert"},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ka, kb := newDedupKey(tt.a), newDedupKey(tt.b)
			if got := ka.duplicates(kb); got != tt.want {
				t.Errorf("duplicates() = %v, want %v", got, tt.want)
			}
			if got := kb.duplicates(ka); got != tt.want {
				t.Errorf("duplicates() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}
