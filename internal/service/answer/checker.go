// Package answer scores typed answers against expected vocabulary.
// All functions are pure and safe for concurrent use.
package answer

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Band is the similarity bucket an answer falls into.
type Band int

const (
	BandIncorrect Band = iota
	BandClose          // Near miss, not accepted.
	BandMinor          // Accepted with a small difference.
	BandPerfect        // Exact match after normalization.
)

var bandNames = [...]string{
	BandIncorrect: "incorrect",
	BandClose:     "close",
	BandMinor:     "minor",
	BandPerfect:   "perfect",
}

func (b Band) String() string {
	if b >= BandIncorrect && b <= BandPerfect {
		return bandNames[b]
	}
	return fmt.Sprintf("Band(%d)", int(b))
}

// Accepted reports whether answers in this band count as correct.
func (b Band) Accepted() bool {
	return b == BandPerfect || b == BandMinor
}

// Options control how strictly an answer is graded.
type Options struct {
	// Strict raises the Minor and Close thresholds by ten points.
	Strict bool
	// Listening grades audio dictation, where spelling from sound is harder.
	Listening bool
}

// Result is the outcome of checking one answer.
type Result struct {
	IsCorrect  bool
	Similarity float64
	Band       Band
	Feedback   string
	Article    ArticleStatus
}

type thresholds struct {
	minor float64
	close float64
}

// Threshold table. Strict values are spelled out rather than computed so the
// band edges are exact.
var (
	recallThresholds          = thresholds{minor: 0.85, close: 0.70}
	listeningThresholds       = thresholds{minor: 0.70, close: 0.55}
	strictRecallThresholds    = thresholds{minor: 0.95, close: 0.80}
	strictListeningThresholds = thresholds{minor: 0.80, close: 0.65}
)

func thresholdsFor(opts Options) thresholds {
	switch {
	case opts.Strict && opts.Listening:
		return strictListeningThresholds
	case opts.Strict:
		return strictRecallThresholds
	case opts.Listening:
		return listeningThresholds
	default:
		return recallThresholds
	}
}

// Similarity returns 1 - levenshtein(a, b) / max(len(a), len(b)) over runes,
// clamped to [0, 1]. Two empty strings are identical; an empty string against
// a non-empty one scores 0.
func Similarity(a, b string) float64 {
	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	if la == 0 && lb == 0 {
		return 1
	}
	if la == 0 || lb == 0 {
		return 0
	}
	if a == b {
		return 1
	}

	dist := levenshtein.ComputeDistance(a, b)
	return clamp01(1 - float64(dist)/float64(max(la, lb)))
}

// CheckAnswer normalizes both strings and grades the user's answer.
func CheckAnswer(userAnswer, correctAnswer string, opts Options) Result {
	return grade(Normalize(userAnswer), Normalize(correctAnswer), correctAnswer, opts)
}

// grade scores already-normalized strings. display is the expected answer as
// shown to the learner in feedback.
func grade(user, correct, display string, opts Options) Result {
	sim := Similarity(user, correct)
	band := bandFor(sim, thresholdsFor(opts))
	return Result{
		IsCorrect:  band.Accepted(),
		Similarity: sim,
		Band:       band,
		Feedback:   feedbackFor(band, display),
	}
}

func bandFor(sim float64, t thresholds) Band {
	switch {
	case sim >= 1:
		return BandPerfect
	case sim >= t.minor:
		return BandMinor
	case sim >= t.close:
		return BandClose
	default:
		return BandIncorrect
	}
}

func feedbackFor(band Band, display string) string {
	switch band {
	case BandPerfect:
		return "Perfect!"
	case BandMinor:
		return fmt.Sprintf("Correct! (minor difference) The answer is: %s", display)
	case BandClose:
		return fmt.Sprintf("Close! The correct answer is: %s", display)
	default:
		return fmt.Sprintf("Incorrect. The correct answer is: %s", display)
	}
}

// MultiResult is the best match among several acceptable answers.
type MultiResult struct {
	Result
	MatchedAnswer string
	MatchedIndex  int // -1 when no candidates were given.
}

// CheckAnswerMultiple grades the user's answer against every acceptable
// translation and returns the highest-scoring one. It stops at the first
// perfect match. Ties keep the earliest candidate.
func CheckAnswerMultiple(userAnswer string, acceptable []string, opts Options) MultiResult {
	best := MultiResult{
		Result: Result{
			Band:     BandIncorrect,
			Feedback: "Incorrect. No accepted answers are available.",
		},
		MatchedIndex: -1,
	}

	user := Normalize(userAnswer)
	for i, candidate := range acceptable {
		res := grade(user, Normalize(candidate), candidate, opts)
		if best.MatchedIndex == -1 || res.Similarity > best.Similarity {
			best = MultiResult{Result: res, MatchedAnswer: candidate, MatchedIndex: i}
		}
		if res.Band == BandPerfect {
			break
		}
	}
	return best
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Min(math.Max(v, 0), 1)
}
