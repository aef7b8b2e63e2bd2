package adaptive

import (
	"cmp"
	"math"
	"slices"
	"time"

	"github.com/K-svg-lab/palabra-sub002/internal/domain"
)

const (
	overdueCapDays  = 7.0
	overdueWeight   = 0.4
	retentionWeight = 0.4
	accuracyWeight  = 0.2
)

// AdjustedInterval scales an SM-2 base interval by the word's difficulty
// multiplier. The result is never less than one day.
func AdjustedInterval(baseInterval int, meta domain.AdvancedSRMetadata) int {
	adj := clampDifficulty(meta.DifficultyAdjustment)
	return max(1, int(math.Round(float64(baseInterval)*adj)))
}

// ReviewPriority scores a word for queue ordering, lower means review sooner.
// The score is 0.4*overdue + 0.4*(1-predictedRetention) + 0.2*(1-accuracy),
// where overdue grows linearly up to one week past NextReviewDate.
func ReviewPriority(review domain.ReviewRecord, meta domain.AdvancedSRMetadata, now time.Time) float64 {
	overdueFactor := 0.0
	if !review.NextReviewDate.IsZero() {
		if overdue := daysBetween(review.NextReviewDate, now); overdue > 0 {
			overdueFactor = math.Min(1, overdue/overdueCapDays)
		}
	}

	retentionFactor := 1 - clamp01(meta.PredictedRetention)
	accuracyFactor := 1 - clamp01(review.Accuracy(defaultAccuracy))

	return clamp01(overdueWeight*overdueFactor + retentionWeight*retentionFactor + accuracyWeight*accuracyFactor)
}

// QueueItem is a due word with its scheduling state and computed priority.
type QueueItem struct {
	Record   domain.ReviewRecord
	Metadata domain.AdvancedSRMetadata
	Priority float64
}

// SortByPriority orders items by ascending priority in place.
// Items with equal priority keep their relative order.
func SortByPriority(items []QueueItem) {
	slices.SortStableFunc(items, func(a, b QueueItem) int {
		return cmp.Compare(a.Priority, b.Priority)
	})
}

// Params configures UpdateMetadata.
type Params struct {
	// TargetRetention is the recall probability used for OptimalReviewDate.
	TargetRetention float64
}

// DefaultParams returns Params with DefaultTargetRetention.
func DefaultParams() Params {
	return Params{TargetRetention: DefaultTargetRetention}
}

// UpdateMetadata applies one review to meta using DefaultParams.
func UpdateMetadata(meta domain.AdvancedSRMetadata, review domain.ReviewRecord, result domain.ReviewResult, now time.Time) domain.AdvancedSRMetadata {
	return DefaultParams().UpdateMetadata(meta, review, result, now)
}

// UpdateMetadata applies one review to meta and returns the new value.
// review is the record as it was before this review. The steps run in a fixed
// order, each reading the output of the previous one:
//
//  1. forgetting curve sample (correct unless the rating is forgot)
//  2. running mean of answer time over review.TotalReviews prior answers
//  3. running standard deviation with review.TotalReviews as denominator
//  4. difficulty adjustment
//  5. optimal review date
//  6. predicted retention at review.NextReviewDate
func (p Params) UpdateMetadata(meta domain.AdvancedSRMetadata, review domain.ReviewRecord, result domain.ReviewResult, now time.Time) domain.AdvancedSRMetadata {
	next := AddForgettingCurvePoint(meta, review, result.Rating.IsCorrect(), now)

	x := math.Max(0, float64(result.TimeSpent)/float64(time.Millisecond))
	n := float64(max(review.TotalReviews, 0))
	prevAvg := finiteOrZero(meta.AvgTimeToAnswerMs)
	prevStd := finiteOrZero(meta.StdDevTimeToAnswerMs)

	avg := (prevAvg*n + x) / (n + 1)
	next.AvgTimeToAnswerMs = avg

	// Running sample variance: StdDevTimeToAnswerMs holds the sample stddev of
	// the n prior answers, the update yields it over n+1.
	if n == 0 {
		next.StdDevTimeToAnswerMs = 0
	} else {
		variance := (prevStd*prevStd*(n-1) + (x-prevAvg)*(x-avg)) / n
		next.StdDevTimeToAnswerMs = math.Sqrt(math.Max(0, variance))
	}

	next.DifficultyAdjustment = DifficultyAdjustment(review, next)
	next.OptimalReviewDate = OptimalReviewDate(review, p.TargetRetention, now)
	next.PredictedRetention = PredictRetention(review, review.NextReviewDate)

	return next
}

func finiteOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
