package texture

import "testing"

func TestMatchesReflexive(t *testing.T) {
	for _, ext := range []string{"jpg", "jpeg", "png", "tga", "ozj", "ozt"} {
		if !Matches(ext, ext) {
			t.Errorf("Matches(%q, %q) got=false want=true", ext, ext)
		}
	}
}

func TestMatchesTable(t *testing.T) {
	tests := []struct {
		wanted, candidate string
		want              bool
	}{
		{"jpg", "ozj", true},
		{"ozj", "jpg", true},
		{"jpeg", "ozj", true},
		{"png", "ozj", true},
		{"png", "ozt", true},
		{"ozj", "png", true}, // reverse direction of the png→ozj row
		{"tga", "ozt", true},
		{"ozt", "tga", true},
		{"tga", "png", true},
		{"jpg", "tga", false},
		{"jpg", "png", false},
		{"ozj", "ozt", false},
		{"jpeg", "tga", false},
	}
	for _, tt := range tests {
		if got := Matches(tt.wanted, tt.candidate); got != tt.want {
			t.Errorf("Matches(%q, %q) got=%v want=%v", tt.wanted, tt.candidate, got, tt.want)
		}
	}
}

func TestMatchesUnknownExtension(t *testing.T) {
	if !Matches("bmp", "bmp") {
		t.Error("unknown extension must still match itself")
	}
	if Matches("bmp", "png") {
		t.Error("unknown extension must not match anything else")
	}
}

func TestAlphaExt(t *testing.T) {
	for _, ext := range []string{"ozt", "tga"} {
		if !AlphaExt(ext) {
			t.Errorf("AlphaExt(%q) got=false want=true", ext)
		}
	}
	for _, ext := range []string{"jpg", "jpeg", "png", "ozj", ""} {
		if AlphaExt(ext) {
			t.Errorf("AlphaExt(%q) got=true want=false", ext)
		}
	}
}
