package study

import (
	"github.com/K-svg-lab/palabra-sub002/internal/domain"
	"github.com/K-svg-lab/palabra-sub002/internal/service/answer"
)

// ReviewOutcome is the scheduling state after a recorded review.
type ReviewOutcome struct {
	Record   domain.ReviewRecord
	Metadata domain.AdvancedSRMetadata
	Rating   domain.ReviewRating
	// BaseIntervalDays is the SM-2 interval before the difficulty multiplier.
	BaseIntervalDays     int
	AdjustedIntervalDays int
	MemoryStrengthDays   float64
}

// AnswerOutcome is a graded typed answer together with the review it produced.
type AnswerOutcome struct {
	Check         answer.Result
	MatchedAnswer string
	Review        ReviewOutcome
}
