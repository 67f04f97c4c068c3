package filter

import "testing"

func TestNormalizeAuthor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Jane Austen", "janeausten"},
		{"  J.R.R.   Tolkien  ", "j.r.r.tolkien"},
		{"URSULA K. LE GUIN", "ursulak.leguin"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeAuthor(tt.in); got != tt.want {
			t.Errorf("NormalizeAuthor(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSpec_HasAuthor(t *testing.T) {
	if New("").HasAuthor() {
		t.Error("empty spec reports an author filter")
	}
	if New("   ").HasAuthor() {
		t.Error("whitespace-only spec reports an author filter")
	}
	if !New("herbert").HasAuthor() {
		t.Error("non-empty spec reports no author filter")
	}
}

func TestParsePages(t *testing.T) {
	tests := []struct {
		in      string
		want    PageRange
		wantErr bool
	}{
		{"100-300", PageRange{Min: 100, Max: 300}, false},
		{" 50 - 60 ", PageRange{Min: 50, Max: 60}, false},
		{"0-0", PageRange{Min: 0, Max: 0}, false},
		{"300-100", PageRange{}, true},
		{"-5-10", PageRange{}, true},
		{"lots", PageRange{}, true},
		{"100", PageRange{}, true},
		{"a-b", PageRange{}, true},
		{"", PageRange{}, true},
	}
	for _, tt := range tests {
		got, err := ParsePages(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParsePages(%q) succeeded, want error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePages(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePages(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}
