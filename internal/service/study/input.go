package study

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/K-svg-lab/palabra-sub002/internal/domain"
)

// MaxTimeSpent caps the answer time accepted for one review.
const MaxTimeSpent = 10 * time.Minute

const (
	maxAnswerLength    = 500
	maxAcceptedAnswers = 20
)

// SubmitAnswerInput holds a typed answer to grade and record.
type SubmitAnswerInput struct {
	VocabID uuid.UUID
	Answer  string
	// Accepted lists the acceptable answers; the first one is shown in feedback
	// when nothing matches.
	Accepted  []string
	Mode      domain.AnswerMode
	TimeSpent time.Duration
}

// Validate checks all fields and collects all errors.
func (i *SubmitAnswerInput) Validate() error {
	var errs []domain.FieldError

	if i.VocabID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "vocab_id", Message: "required"})
	}
	if len(i.Answer) > maxAnswerLength {
		errs = append(errs, domain.FieldError{Field: "answer", Message: "max 500 characters"})
	}
	switch {
	case len(i.Accepted) == 0:
		errs = append(errs, domain.FieldError{Field: "accepted", Message: "required"})
	case len(i.Accepted) > maxAcceptedAnswers:
		errs = append(errs, domain.FieldError{Field: "accepted", Message: "max 20 answers"})
	default:
		for _, a := range i.Accepted {
			if strings.TrimSpace(a) == "" {
				errs = append(errs, domain.FieldError{Field: "accepted", Message: "must not contain blank answers"})
				break
			}
		}
	}
	if !i.Mode.IsValid() {
		errs = append(errs, domain.FieldError{Field: "mode", Message: "must be recall or listening"})
	}
	errs = appendTimeSpentErrors(errs, i.TimeSpent)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RecordReviewInput holds a self-assessed or pre-graded review.
type RecordReviewInput struct {
	VocabID   uuid.UUID
	Rating    domain.ReviewRating
	TimeSpent time.Duration
	// Similarity is set when the rating came from a graded typed answer.
	Similarity *float64
}

// Validate checks all fields and collects all errors.
func (i *RecordReviewInput) Validate() error {
	var errs []domain.FieldError

	if i.VocabID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "vocab_id", Message: "required"})
	}
	if !i.Rating.IsValid() {
		errs = append(errs, domain.FieldError{Field: "rating", Message: "must be forgot, hard, good, or easy"})
	}
	errs = appendTimeSpentErrors(errs, i.TimeSpent)
	if i.Similarity != nil && (*i.Similarity < 0 || *i.Similarity > 1) {
		errs = append(errs, domain.FieldError{Field: "similarity", Message: "must be between 0 and 1"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// GetQueueInput holds the parameters for fetching the review queue.
// Zero Limit means the configured default.
type GetQueueInput struct {
	Limit int
}

// Validate checks the limit against the configured maximum.
func (i *GetQueueInput) Validate(maxLimit int) error {
	if i.Limit < 0 || (maxLimit > 0 && i.Limit > maxLimit) {
		return domain.NewValidationError("limit", "out of range")
	}
	return nil
}

func appendTimeSpentErrors(errs []domain.FieldError, d time.Duration) []domain.FieldError {
	if d < 0 {
		return append(errs, domain.FieldError{Field: "time_spent_ms", Message: "must be non-negative"})
	}
	if d > MaxTimeSpent {
		return append(errs, domain.FieldError{Field: "time_spent_ms", Message: "max 10 minutes"})
	}
	return errs
}
