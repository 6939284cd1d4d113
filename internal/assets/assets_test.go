package assets

import (
	"strings"
	"testing"
)

func TestPath(t *testing.T) {
	if got := Path("thinking.png"); got != "/static/thinking.png" {
		t.Errorf("Path() = %s, want /static/thinking.png", got)
	}
	if got := Path("missing.gif"); got != "/static/missing.gif" {
		t.Errorf("Path() = %s, want /static/missing.gif", got)
	}
}

func TestID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/static/solve.png", "solve.png"},
		{"solve.png", "solve.png"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ID(tt.in); got != tt.want {
			t.Errorf("ID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestArt(t *testing.T) {
	for _, src := range []string{"/static/thinking.png", "solve.png", SecondaryIcon} {
		art, ok := Art(src)
		if !ok {
			t.Errorf("Art(%s) has no bundled art", src)
		}
		if art == "" || strings.HasSuffix(art, "\n") {
			t.Errorf("Art(%s) = %q, want trimmed non-empty art", src, art)
		}
	}
}

func TestArtPlaceholder(t *testing.T) {
	art, ok := Art("/static/unknown.png")
	if ok {
		t.Error("expected no bundled art for unknown.png")
	}
	if !strings.Contains(art, "[unknown.png]") {
		t.Errorf("placeholder = %q, want it to name the image", art)
	}
}

func TestAvailable(t *testing.T) {
	got := Available()
	want := []string{"bulb", "solve", "thinking"}
	if len(got) != len(want) {
		t.Fatalf("Available() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Available()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}
