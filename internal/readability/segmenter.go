package readability

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// marker temporarily stands in for periods that must not be treated as
// sentence terminators (abbreviations, decimals, domain names). It is
// restored to "." after splitting. NUL cannot appear in sane input text.
const marker = "\x00"

// multiDotAbbrevs contains abbreviations with interior periods; these are
// replaced wholesale before the single-period abbreviation pass.
var multiDotAbbrevs = strings.NewReplacer(
	"e.g.", "e"+marker+"g"+marker,
	"i.e.", "i"+marker+"e"+marker,
	"et al.", "et al"+marker,
)

// abbrevRe matches common single-period abbreviations at a word boundary.
// Titles, scholarly shorthands, and month names all appear mid-sentence in
// academic prose and must not end a sentence.
var abbrevRe = regexp.MustCompile(`\b(Dr|Mr|Mrs|Ms|Prof|Sr|Jr|St|vs|cf|ca|al|etc|Fig|Figs|Eq|Eqs|Ref|Refs|No|Vol|pp|p|approx|Jan|Feb|Mar|Apr|Jun|Jul|Aug|Sep|Sept|Oct|Nov|Dec)\.`)

// decimalRe matches the period inside a decimal number (3.14, 0.05).
var decimalRe = regexp.MustCompile(`(\d)\.(\d)`)

// domainRe matches the dot before a common TLD (example.com, arxiv.org).
var domainRe = regexp.MustCompile(`\b([A-Za-z0-9-]+)\.(com|org|net|edu|gov|io|ai|co|uk|de)\b`)

// boundaryRe matches a candidate sentence boundary: terminal punctuation,
// optional closing quotes/brackets, then whitespace. Whether the boundary
// is real depends on what follows (checked separately, since RE2 has no
// lookahead).
var boundaryRe = regexp.MustCompile("[.!?][\"'”’)\\]]*[ \t\r\n]+")

// SplitSentences splits text into sentences using the protect-then-restore
// heuristic: known abbreviations, decimals, and domain-like tokens have
// their periods masked, the text is split on terminal punctuation followed
// by an uppercase letter or digit, and the masked periods are restored.
// This is a heuristic, not a grammar-complete boundary detector; occasional
// false splits or merges on unusual prose are expected.
func SplitSentences(text string) []string {
	protected := protect(text)
	var sentences []string
	start := 0
	for _, loc := range boundaryRe.FindAllStringIndex(protected, -1) {
		next, _ := utf8.DecodeRuneInString(protected[loc[1]:])
		if !unicode.IsUpper(next) && !unicode.IsDigit(next) {
			continue
		}
		if s := strings.TrimSpace(protected[start:loc[1]]); s != "" {
			sentences = append(sentences, restore(s))
		}
		start = loc[1]
	}
	if s := strings.TrimSpace(protected[start:]); s != "" {
		sentences = append(sentences, restore(s))
	}
	return sentences
}

func protect(text string) string {
	s := multiDotAbbrevs.Replace(text)
	s = abbrevRe.ReplaceAllString(s, "${1}"+marker)
	// Run twice so chains like "1.2.3" are fully masked.
	s = decimalRe.ReplaceAllString(s, "${1}"+marker+"${2}")
	s = decimalRe.ReplaceAllString(s, "${1}"+marker+"${2}")
	s = domainRe.ReplaceAllString(s, "${1}"+marker+"${2}")
	return s
}

func restore(s string) string {
	return strings.ReplaceAll(s, marker, ".")
}

// Words returns the alphabetic words of s: whitespace-delimited tokens
// containing at least one letter. Pure punctuation and bare numbers are
// excluded from word totals.
func Words(s string) []string {
	fields := strings.Fields(s)
	words := fields[:0:0]
	for _, f := range fields {
		if containsLetter(f) {
			words = append(words, f)
		}
	}
	return words
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
