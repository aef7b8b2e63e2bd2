package study

import (
	"math"

	"github.com/K-svg-lab/palabra-sub002/internal/domain"
)

const (
	fallbackMinEaseFactor = 1.3
	firstIntervalDays     = 1
	secondIntervalDays    = 6
	passingQuality        = 3
)

// SM2Input holds the SM-2 state before a review. Pure value, no side effects.
type SM2Input struct {
	EaseFactor      float64
	Repetition      int
	IntervalDays    int
	Rating          domain.ReviewRating
	MinEaseFactor   float64
	MaxIntervalDays int // 0 means uncapped.
}

// SM2Output is the SM-2 state after a review.
type SM2Output struct {
	EaseFactor   float64
	Repetition   int
	IntervalDays int
}

// NextSM2 computes the classic SM-2 step. The returned interval is the base
// interval that the adaptive layer scales; it is never below one day.
func NextSM2(input SM2Input) SM2Output {
	minEase := input.MinEaseFactor
	if minEase <= 0 {
		minEase = fallbackMinEaseFactor
	}

	q := float64(quality(input.Rating))
	ease := input.EaseFactor + (0.1 - (5-q)*(0.08+(5-q)*0.02))
	if math.IsNaN(ease) || ease < minEase {
		ease = minEase
	}

	if quality(input.Rating) < passingQuality {
		return SM2Output{EaseFactor: ease, Repetition: 0, IntervalDays: firstIntervalDays}
	}

	rep := max(input.Repetition, 0) + 1
	var interval int
	switch rep {
	case 1:
		interval = firstIntervalDays
	case 2:
		interval = secondIntervalDays
	default:
		interval = int(math.Round(float64(max(input.IntervalDays, 1)) * ease))
	}

	interval = max(interval, firstIntervalDays)
	if input.MaxIntervalDays > 0 {
		interval = min(interval, input.MaxIntervalDays)
	}

	return SM2Output{EaseFactor: ease, Repetition: rep, IntervalDays: interval}
}

// quality maps a rating onto the SM-2 0-5 response scale.
func quality(r domain.ReviewRating) int {
	switch r {
	case domain.ReviewRatingForgot:
		return 1
	case domain.ReviewRatingHard:
		return 3
	case domain.ReviewRatingEasy:
		return 5
	default:
		return 4
	}
}
