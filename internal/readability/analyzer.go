package readability

import (
	"math"

	"github.com/quillworks/inkwell/pkg/utils"
	"go.uber.org/zap"
)

// Default thresholds for long-sentence extraction.
const (
	DefaultLongSentenceWords = 25
	DefaultMaxLongSentences  = 5
	DefaultDisplayLimit      = 150
)

// displayTruncateAt leaves room for the "..." suffix within DisplayLimit.
const displayTruncateAt = 147

// Analyzer computes readability reports. The zero thresholds are filled
// with defaults by New, so a single Analyzer can be shared freely across
// requests — Analyze holds no state between calls.
type Analyzer struct {
	longSentenceWords int
	maxLongSentences  int
	displayLimit      int
	logger            *zap.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLongSentenceThreshold overrides the word count above which a
// sentence is reported as long.
func WithLongSentenceThreshold(words int) Option {
	return func(a *Analyzer) {
		if words > 0 {
			a.longSentenceWords = words
		}
	}
}

// WithMaxLongSentences overrides how many long sentences are reported.
func WithMaxLongSentences(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.maxLongSentences = n
		}
	}
}

// New creates an Analyzer. logger may be nil; it is only used to flag
// segmentation anomalies (a raw Flesch score below zero).
func New(logger *zap.Logger, opts ...Option) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &Analyzer{
		longSentenceWords: DefaultLongSentenceWords,
		maxLongSentences:  DefaultMaxLongSentences,
		displayLimit:      DefaultDisplayLimit,
		logger:            logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze produces a readability report for text. It never fails: input
// with no sentences or no alphabetic words yields a zeroed report graded
// "Unable to analyze". Identical input always produces identical output.
func (a *Analyzer) Analyze(text string) *Report {
	sentences := SplitSentences(text)

	totalWords := 0
	totalSyllables := 0
	passiveCount := 0
	countedSentences := 0
	long := []LongSentence{}

	position := 0
	for _, sentence := range sentences {
		words := Words(sentence)
		if len(words) == 0 {
			continue
		}
		countedSentences++
		position++
		totalWords += len(words)
		for _, w := range words {
			totalSyllables += CountSyllables(w)
		}
		if IsPassive(sentence) {
			passiveCount++
		}
		if len(words) > a.longSentenceWords && len(long) < a.maxLongSentences {
			display := sentence
			if len(sentence) > a.displayLimit {
				display = utils.Truncate(sentence, displayTruncateAt)
			}
			long = append(long, LongSentence{
				Text:      display,
				WordCount: len(words),
				Position:  position,
			})
		}
	}

	if countedSentences == 0 || totalWords == 0 {
		return emptyReport()
	}

	avgSentenceLen := float64(totalWords) / float64(countedSentences)
	avgSyllables := float64(totalSyllables) / float64(totalWords)

	raw := 206.835 - 1.015*avgSentenceLen - 84.6*avgSyllables
	if raw < 0 {
		// Usually a sign of run-on text or systematic mis-splitting,
		// not an error: the clamped score is still reported.
		a.logger.Warn("raw flesch score below zero, probable segmentation anomaly",
			zap.Float64("raw_score", raw),
			zap.Int("sentences", countedSentences),
			zap.Int("words", totalWords))
	}
	score := math.Min(100, math.Max(0, raw))

	return &Report{
		FleschScore:         round1(score),
		FleschGrade:         gradeFor(score),
		AvgSentenceLength:   round1(avgSentenceLen),
		AvgSyllablesPerWord: round1(avgSyllables),
		PassiveVoicePercent: int(math.Round(float64(passiveCount) / float64(countedSentences) * 100)),
		LongSentences:       long,
		TotalSentences:      countedSentences,
		TotalWords:          totalWords,
	}
}

// gradeFor maps a clamped Flesch score to its qualitative band. Bands are
// contiguous and exhaustive over [0, 100].
func gradeFor(score float64) string {
	switch {
	case score >= 90:
		return "Very Easy"
	case score >= 80:
		return "Easy"
	case score >= 70:
		return "Fairly Easy"
	case score >= 60:
		return "Standard"
	case score >= 50:
		return "Fairly Difficult"
	case score >= 30:
		return "Difficult"
	case score >= 10:
		return "Very Difficult"
	default:
		return "Extremely Difficult"
	}
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
