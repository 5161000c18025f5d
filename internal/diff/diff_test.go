package diff

import (
	"reflect"
	"strings"
	"testing"
)

func reconstruct(segs []Segment, include SegmentType) string {
	var b strings.Builder
	for _, s := range segs {
		if s.Type == Equal || s.Type == include {
			b.WriteString(s.Text)
		}
	}
	return b.String()
}

func TestDiff_Example(t *testing.T) {
	got := Diff("The quick fox", "The quick brown fox")
	want := []Segment{
		{Equal, "The quick "},
		{Added, "brown "},
		{Equal, "fox"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Diff() = %v, want %v", got, want)
	}
}

func TestDiff_RoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		original string
		modified string
	}{
		{"insertion", "The quick fox", "The quick brown fox"},
		{"deletion", "The quick brown fox", "The quick fox"},
		{"replacement", "results were significant", "results were inconclusive"},
		{"both empty", "", ""},
		{"original empty", "", "new text"},
		{"modified empty", "old text", ""},
		{"whitespace changes", "a  b\tc", "a b  c"},
		{"full rewrite", "alpha beta gamma", "one two three four"},
		{"unicode", "café naïve résumé", "café naive résumé"},
		{"trailing space", "word ", "word"},
		{"multiline", "line one\nline two", "line one\nline 2\nline three"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segs := Diff(tt.original, tt.modified)
			if got := reconstruct(segs, Removed); got != tt.original {
				t.Errorf("equal+removed = %q, want %q", got, tt.original)
			}
			if got := reconstruct(segs, Added); got != tt.modified {
				t.Errorf("equal+added = %q, want %q", got, tt.modified)
			}
		})
	}
}

func TestDiff_Coalesced(t *testing.T) {
	segs := Diff("a b c d", "a x y d")
	for i := 1; i < len(segs); i++ {
		if segs[i].Type == segs[i-1].Type {
			t.Errorf("adjacent segments %d and %d share type %s", i-1, i, segs[i].Type)
		}
	}
}

func TestDiff_Identical(t *testing.T) {
	for _, s := range []string{"hello world", "one", "a  b   c", "line\nbreak"} {
		segs := Diff(s, s)
		if len(segs) != 1 {
			t.Fatalf("Diff(%q, %q): got %d segments, want 1", s, s, len(segs))
		}
		if segs[0].Type != Equal || segs[0].Text != s {
			t.Errorf("Diff(%q, %q) = %v", s, s, segs)
		}
	}
}

func TestDiff_Empty(t *testing.T) {
	if segs := Diff("", ""); len(segs) != 0 {
		t.Errorf("Diff of empty strings: got %v, want none", segs)
	}
	segs := Diff("", "added")
	if len(segs) != 1 || segs[0].Type != Added || segs[0].Text != "added" {
		t.Errorf("all-added diff: got %v", segs)
	}
	segs = Diff("removed", "")
	if len(segs) != 1 || segs[0].Type != Removed || segs[0].Text != "removed" {
		t.Errorf("all-removed diff: got %v", segs)
	}
}

func TestDiff_Deterministic(t *testing.T) {
	a := "The method was applied to three datasets with mixed results"
	b := "The approach was applied across three datasets with promising results"
	first := Diff(a, b)
	for i := 0; i < 5; i++ {
		if got := Diff(a, b); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs: %v vs %v", i, got, first)
		}
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"one", []string{"one"}},
		{"a b", []string{"a", " ", "b"}},
		{"  lead", []string{"  ", "lead"}},
		{"tail  ", []string{"tail", "  "}},
		{"a\t b", []string{"a", "\t ", "b"}},
	}
	for _, tt := range tests {
		if got := tokenize(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("tokenize(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func BenchmarkDiff_Paragraph(b *testing.B) {
	orig := strings.Repeat("the quick brown fox jumps over the lazy dog ", 20)
	mod := strings.Repeat("the quick red fox leaps over the lazy dog ", 20)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Diff(orig, mod)
	}
}
