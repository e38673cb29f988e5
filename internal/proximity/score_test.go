package proximity

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name      string
		reference string
		candidate string
		want      int
	}{
		{"identical", "bar/main.txt", "bar/main.txt", 2},
		{"sibling", "bar/main.txt", "bar/test.txt", 0},
		{"shallow miss", "bar/main.txt", "test.txt", -1},
		{"deep miss", "bar/main.txt", "misc/test.txt", -2},
		{"no shared segments", "null.txt", "a/x/1.txt", -3},
		{"extra candidate segments", "bar", "bar/baz/qux.txt", -1},
		{"shorter candidate", "bar/baz/qux.txt", "bar", 1},
		{"candidate current dir", "null.txt", "././second.txt", -1},
		{"reference current dir", "./bar/main.txt", "bar/main.txt", 2},
		{"current dir between segments", "bar/./main.txt", "bar/main.txt", 2},
		{"redundant separators", "bar/main.txt", "bar//main.txt", 2},
		{"trailing separator", "bar/main.txt", "bar/", 1},
		{"rooted candidate", "tmp/test.txt", "/tmp/test.txt", -3},
		{"rooted reference", "/tmp/test.txt", "tmp/test.txt", -3},
		{"both rooted", "/tmp/test.txt", "/tmp/main.txt", 0},
		{"bare root candidate", "tmp", "/", -1},
		{"empty candidate", "bar/main.txt", "", 0},
		{"empty reference", "", "a/b", -2},
		{"both empty", "", "", 0},
		{"byte-wise comparison", "Bar/main.txt", "bar/main.txt", -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := filepath.FromSlash(tt.reference)
			cand := filepath.FromSlash(tt.candidate)
			if got := Score(ref, cand); got != tt.want {
				t.Fatalf("Score(%q, %q)=%d want %d", ref, cand, got, tt.want)
			}
		})
	}
}

func TestScoreCurrentDirIsTransparent(t *testing.T) {
	ref := "null.txt"
	want := Score(ref, "third.txt")
	for _, cand := range []string{"./first.txt", "././second.txt"} {
		if got := Score(ref, filepath.FromSlash(cand)); got != want {
			t.Fatalf("Score(%q, %q)=%d want %d", ref, cand, got, want)
		}
	}
}

func TestScoreRedundantSeparatorsMatchCollapsed(t *testing.T) {
	ref := filepath.FromSlash("bar/main.txt")
	pairs := [][2]string{
		{"bar/main.txt", "bar//main.txt"},
		{"bar/test.txt", "bar///test.txt"},
		{"misc/x.txt", "misc//x.txt//"},
	}
	for _, pair := range pairs {
		plain, doubled := filepath.FromSlash(pair[0]), filepath.FromSlash(pair[1])
		if a, b := Score(ref, plain), Score(ref, doubled); a != b {
			t.Fatalf("expected %q and %q to score the same, got %d and %d", plain, doubled, a, b)
		}
	}
}

func TestSegments(t *testing.T) {
	got := Segments(filepath.FromSlash("/a//b/./c/"))
	want := []string{"a", "b", ".", "c"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Segments mismatch (-want +got):\n%s", diff)
	}
	if got := Segments(""); len(got) != 0 {
		t.Fatalf("expected no segments for empty path, got %q", got)
	}
}
