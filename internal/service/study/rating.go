package study

import (
	"time"

	"github.com/K-svg-lab/palabra-sub002/internal/domain"
	"github.com/K-svg-lab/palabra-sub002/internal/service/answer"
)

// RatingFromAnswer derives a review rating from a graded typed answer.
// A perfect answer given faster than fastThreshold counts as easy.
func RatingFromAnswer(check answer.Result, timeSpent, fastThreshold time.Duration) domain.ReviewRating {
	switch {
	case !check.IsCorrect:
		return domain.ReviewRatingForgot
	case check.Band == answer.BandMinor:
		return domain.ReviewRatingHard
	case check.Band == answer.BandPerfect && fastThreshold > 0 && timeSpent < fastThreshold:
		return domain.ReviewRatingEasy
	default:
		return domain.ReviewRatingGood
	}
}
