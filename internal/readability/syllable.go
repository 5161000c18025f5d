package readability

import (
	"strings"
	"unicode"
)

// CountSyllables estimates the syllable count of a single word by counting
// transitions into vowel groups, treating y as a vowel. A trailing silent
// "e" is discounted unless the word ends in "le" (table, cycle). Every
// word with at least one letter counts as at least one syllable.
func CountSyllables(word string) int {
	var b strings.Builder
	for _, r := range word {
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	w := b.String()
	if w == "" {
		return 0
	}

	count := 0
	prevVowel := false
	for _, r := range w {
		v := isVowel(r)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}

	if strings.HasSuffix(w, "e") && !strings.HasSuffix(w, "le") && count > 1 {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}
