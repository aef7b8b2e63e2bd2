package adaptive

import (
	"math"
	"time"

	"github.com/K-svg-lab/palabra-sub002/internal/domain"
)

const (
	// DefaultTargetRetention is the recall probability the optimal review date aims for.
	DefaultTargetRetention = 0.90
	// MaxForgettingCurvePoints bounds the stored retention samples per word.
	MaxForgettingCurvePoints = 50

	baseMemoryStrengthDays = 2.0
	minMemoryStrengthDays  = 1.0
	referenceEaseFactor    = 2.5
	defaultAccuracy        = 0.5
	recentPerformanceBonus = 0.5

	day = 24 * time.Hour
)

// RetentionProbability computes R(t) = e^(-t/S) for t days since the last
// review and memory strength S in days. It returns exactly 1 for t <= 0.
func RetentionProbability(daysSinceReview, memoryStrength float64) float64 {
	if daysSinceReview <= 0 || math.IsNaN(daysSinceReview) {
		return 1
	}
	if !(memoryStrength >= minMemoryStrengthDays) {
		memoryStrength = minMemoryStrengthDays
	}
	return clamp01(math.Exp(-daysSinceReview / memoryStrength))
}

// MemoryStrength estimates S in days from the review counters:
//
//	S = 2.0 * (EF/2.5) * (1 + ln(rep+1)*0.5) * (accuracy*2) + (recentCorrect/recentTotal)*0.5
//
// accuracy defaults to 0.5 before the first review; the recent-history bonus
// applies only when recent is non-empty. The result is at least 1 day.
func MemoryStrength(review domain.ReviewRecord, recent []domain.ReviewRating) float64 {
	ease := review.EaseFactor / referenceEaseFactor
	repetitionBonus := 1 + math.Log(float64(max(review.Repetition, 0))+1)*0.5
	accuracyFactor := review.Accuracy(defaultAccuracy) * 2

	strength := baseMemoryStrengthDays * ease * repetitionBonus * accuracyFactor

	if len(recent) > 0 {
		correct := 0
		for _, r := range recent {
			if r.IsCorrect() {
				correct++
			}
		}
		strength += float64(correct) / float64(len(recent)) * recentPerformanceBonus
	}

	if !(strength >= minMemoryStrengthDays) {
		return minMemoryStrengthDays
	}
	return strength
}

// PredictRetention returns the modeled recall probability at target.
// Words that were never reviewed are fully retained by definition.
func PredictRetention(review domain.ReviewRecord, target time.Time) float64 {
	if review.LastReviewDate == nil {
		return 1
	}
	elapsed := daysBetween(*review.LastReviewDate, target)
	return RetentionProbability(elapsed, MemoryStrength(review, nil))
}

// OptimalReviewDate solves e^(-t/S) = targetRetention for t, rounds to whole
// days (minimum 1) and adds that to the last review, or to now if the word was
// never reviewed. A target outside (0, 1) falls back to DefaultTargetRetention.
func OptimalReviewDate(review domain.ReviewRecord, targetRetention float64, now time.Time) time.Time {
	if !(targetRetention > 0 && targetRetention < 1) {
		targetRetention = DefaultTargetRetention
	}

	strength := MemoryStrength(review, nil)
	days := max(1, int(math.Round(-strength*math.Log(targetRetention))))

	base := now
	if review.LastReviewDate != nil {
		base = *review.LastReviewDate
	}
	return base.Add(time.Duration(days) * day)
}

// AddForgettingCurvePoint returns meta with a new binary retention sample
// (1 if recalled, 0 if not) keyed by days since the previous review. The curve
// keeps the newest MaxForgettingCurvePoints samples. Words without a previous
// review produce no sample.
func AddForgettingCurvePoint(meta domain.AdvancedSRMetadata, review domain.ReviewRecord, correct bool, now time.Time) domain.AdvancedSRMetadata {
	if review.LastReviewDate == nil {
		return meta.Clone()
	}

	retention := 0.0
	if correct {
		retention = 1
	}
	point := domain.ForgettingCurvePoint{
		DaysSinceReview:      max(0, daysBetween(*review.LastReviewDate, now)),
		RetentionProbability: retention,
		Timestamp:            now,
	}

	out := meta
	start := max(0, len(meta.ForgettingCurve)+1-MaxForgettingCurvePoints)
	kept := meta.ForgettingCurve[start:]
	out.ForgettingCurve = make([]domain.ForgettingCurvePoint, 0, len(kept)+1)
	out.ForgettingCurve = append(out.ForgettingCurve, kept...)
	out.ForgettingCurve = append(out.ForgettingCurve, point)
	return out
}

func daysBetween(from, to time.Time) float64 {
	return float64(to.Sub(from)) / float64(day)
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Min(math.Max(v, 0), 1)
}
