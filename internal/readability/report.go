// Package readability computes deterministic readability metrics for a
// piece of writing: Flesch Reading Ease, passive-voice share, and a list
// of over-long sentences. Everything here is pure and total — any input,
// including empty or non-alphabetic text, yields a well-formed report.
package readability

// GradeUnknown is the grade reported when the text has no countable
// sentences or words.
const GradeUnknown = "Unable to analyze"

// LongSentence records a sentence exceeding the long-sentence threshold.
type LongSentence struct {
	// Text is the sentence, truncated for display when very long.
	Text string `json:"text"`
	// WordCount is the number of alphabetic words in the sentence.
	WordCount int `json:"wordCount"`
	// Position is the 1-based index of the sentence in the input.
	Position int `json:"position"`
}

// Report is the result of analyzing a text. Averages and the score are
// rounded to one decimal; the passive percentage is a whole number.
type Report struct {
	FleschScore         float64        `json:"fleschScore"`
	FleschGrade         string         `json:"fleschGrade"`
	AvgSentenceLength   float64        `json:"avgSentenceLength"`
	AvgSyllablesPerWord float64        `json:"avgSyllablesPerWord"`
	PassiveVoicePercent int            `json:"passiveVoicePercent"`
	LongSentences       []LongSentence `json:"longSentences"`
	TotalSentences      int            `json:"totalSentences"`
	TotalWords          int            `json:"totalWords"`
}

// emptyReport returns the zeroed report used for unanalyzable input.
func emptyReport() *Report {
	return &Report{
		FleschGrade:   GradeUnknown,
		LongSentences: []LongSentence{},
	}
}
