package readability

import "regexp"

// passivePatterns is the fixed set of auxiliary + past-participle shapes
// used to flag a sentence as passive. Participles are approximated by an
// -ed/-en suffix, optionally preceded by one -ly adverb ("was carefully
// measured"). This is a heuristic approximation of grammatical passive
// voice, tuned to flag the constructions common in academic prose.
var passivePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:am|is|are|was|were)\s+(?:\w+ly\s+)?\w+(?:ed|en)\b`),
	regexp.MustCompile(`(?i)\b(?:has|have|had)\s+been\s+(?:\w+ly\s+)?\w+(?:ed|en)\b`),
	regexp.MustCompile(`(?i)\b(?:will|would|can|could|may|might|must|shall|should)\s+be\s+(?:\w+ly\s+)?\w+(?:ed|en)\b`),
	regexp.MustCompile(`(?i)\b(?:is|are|was|were)\s+being\s+(?:\w+ly\s+)?\w+(?:ed|en)\b`),
	regexp.MustCompile(`(?i)\bbeing\s+\w+(?:ed|en)\s+by\b`),
}

// IsPassive reports whether the sentence matches any passive-voice pattern.
func IsPassive(sentence string) bool {
	for _, p := range passivePatterns {
		if p.MatchString(sentence) {
			return true
		}
	}
	return false
}
