// Package diff produces word-level diffs between two versions of a text.
// Tokens are alternating runs of whitespace and non-whitespace, so the
// segments reassemble both inputs without inserting separators: the
// concatenation of equal+removed segments is the original string and the
// concatenation of equal+added segments is the modified string.
package diff

import (
	"strings"
	"unicode"
)

// SegmentType labels a run of text in a diff.
type SegmentType string

const (
	// Equal text appears in both versions.
	Equal SegmentType = "equal"
	// Added text appears only in the modified version.
	Added SegmentType = "added"
	// Removed text appears only in the original version.
	Removed SegmentType = "removed"
)

// Segment is a labeled run of text. Adjacent segments always differ in type.
type Segment struct {
	Type SegmentType `json:"type"`
	Text string      `json:"text"`
}

// Diff aligns original and modified by longest common subsequence over
// their tokens and returns the edit script as coalesced segments. When
// alignments tie, tokens are taken from the modified sequence first
// (reported as added), which keeps runs of new content contiguous; callers
// must not read further meaning into that ordering. Cost is O(m×n) in
// token counts, which is fine for paragraph-scale text.
func Diff(original, modified string) []Segment {
	a := tokenize(original)
	b := tokenize(modified)
	m, n := len(a), len(b)

	// table[i][j] holds the LCS length of a[i:] and b[j:], so the edit
	// script falls out of a forward walk from (0,0).
	table := make([][]int, m+1)
	for i := range table {
		table[i] = make([]int, n+1)
	}
	for i := m - 1; i >= 0; i-- {
		for j := n - 1; j >= 0; j-- {
			if a[i] == b[j] {
				table[i][j] = table[i+1][j+1] + 1
			} else if table[i][j+1] >= table[i+1][j] {
				table[i][j] = table[i][j+1]
			} else {
				table[i][j] = table[i+1][j]
			}
		}
	}

	var segs []Segment
	i, j := 0, 0
	for i < m && j < n {
		switch {
		case a[i] == b[j]:
			segs = appendRun(segs, Equal, a[i])
			i++
			j++
		case table[i][j+1] >= table[i+1][j]:
			segs = appendRun(segs, Added, b[j])
			j++
		default:
			segs = appendRun(segs, Removed, a[i])
			i++
		}
	}
	for ; i < m; i++ {
		segs = appendRun(segs, Removed, a[i])
	}
	for ; j < n; j++ {
		segs = appendRun(segs, Added, b[j])
	}
	return segs
}

// appendRun adds text to the last segment when the type matches, otherwise
// starts a new segment.
func appendRun(segs []Segment, t SegmentType, text string) []Segment {
	if k := len(segs) - 1; k >= 0 && segs[k].Type == t {
		segs[k].Text += text
		return segs
	}
	return append(segs, Segment{Type: t, Text: text})
}

// tokenize splits s into alternating runs of whitespace and non-whitespace.
// Concatenating the tokens reproduces s exactly.
func tokenize(s string) []string {
	var tokens []string
	var run strings.Builder
	inSpace := false
	for _, r := range s {
		space := unicode.IsSpace(r)
		if run.Len() > 0 && space != inSpace {
			tokens = append(tokens, run.String())
			run.Reset()
		}
		run.WriteRune(r)
		inSpace = space
	}
	if run.Len() > 0 {
		tokens = append(tokens, run.String())
	}
	return tokens
}
