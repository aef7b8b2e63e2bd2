package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReviewRecord holds the SM-2 scheduling state of one vocabulary item for one user.
type ReviewRecord struct {
	UserID         uuid.UUID
	VocabID        uuid.UUID
	EaseFactor     float64
	Repetition     int
	IntervalDays   int
	CorrectCount   int
	TotalReviews   int
	LastReviewDate *time.Time // nil until the first review.
	NextReviewDate time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Accuracy returns CorrectCount/TotalReviews, or fallback when there are no reviews.
func (r ReviewRecord) Accuracy(fallback float64) float64 {
	if r.TotalReviews <= 0 {
		return fallback
	}
	return float64(r.CorrectCount) / float64(r.TotalReviews)
}

// IsDue returns true if the word needs review at the given time.
// Words that were never reviewed are always due.
func (r ReviewRecord) IsDue(now time.Time) bool {
	if r.LastReviewDate == nil {
		return true
	}
	return !r.NextReviewDate.After(now)
}

// ForgettingCurvePoint is one observed retention sample.
type ForgettingCurvePoint struct {
	DaysSinceReview      float64   `json:"daysSinceReview"`
	RetentionProbability float64   `json:"retentionProbability"`
	Timestamp            time.Time `json:"timestamp"`
}

// AdvancedSRMetadata is the adaptive scheduling state kept next to a ReviewRecord.
// It is a value type: updates produce a new value, the curve slice is never shared.
type AdvancedSRMetadata struct {
	ForgettingCurve      []ForgettingCurvePoint
	PredictedRetention   float64
	OptimalReviewDate    time.Time
	DifficultyAdjustment float64
	AvgTimeToAnswerMs    float64
	StdDevTimeToAnswerMs float64
}

// Clone returns a copy that does not share the forgetting curve backing array.
func (m AdvancedSRMetadata) Clone() AdvancedSRMetadata {
	out := m
	if m.ForgettingCurve != nil {
		out.ForgettingCurve = make([]ForgettingCurvePoint, len(m.ForgettingCurve))
		copy(out.ForgettingCurve, m.ForgettingCurve)
	}
	return out
}

// ReviewResult is what a single review produced.
type ReviewResult struct {
	Rating    ReviewRating
	TimeSpent time.Duration
}

// ReviewLog records a single persisted review event.
type ReviewLog struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	VocabID     uuid.UUID
	Rating      ReviewRating
	TimeSpentMs int
	Similarity  *float64 // nil for self-assessed reviews.
	ReviewedAt  time.Time
}

// WordStats aggregates the scheduling state of one word.
type WordStats struct {
	Record             ReviewRecord
	Metadata           AdvancedSRMetadata
	RecentReviews      []ReviewLog
	RetentionNow       float64
	MemoryStrengthDays float64
	Priority           float64
}
