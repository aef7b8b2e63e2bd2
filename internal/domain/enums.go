package domain

// ReviewRating is the outcome of a single review, either self-assessed or
// derived from a checked answer.
type ReviewRating string

const (
	ReviewRatingForgot ReviewRating = "forgot"
	ReviewRatingHard   ReviewRating = "hard"
	ReviewRatingGood   ReviewRating = "good"
	ReviewRatingEasy   ReviewRating = "easy"
)

func (r ReviewRating) String() string { return string(r) }

func (r ReviewRating) IsValid() bool {
	switch r {
	case ReviewRatingForgot, ReviewRatingHard, ReviewRatingGood, ReviewRatingEasy:
		return true
	}
	return false
}

// IsCorrect reports whether the rating counts as a successful recall.
func (r ReviewRating) IsCorrect() bool {
	return r != ReviewRatingForgot
}

// AnswerMode selects how a typed answer was produced.
type AnswerMode string

const (
	// AnswerModeRecall is text recall: the learner sees a prompt and types the word.
	AnswerModeRecall AnswerMode = "recall"
	// AnswerModeListening is audio dictation: the learner types what they hear.
	AnswerModeListening AnswerMode = "listening"
)

func (m AnswerMode) String() string { return string(m) }

func (m AnswerMode) IsValid() bool {
	switch m {
	case AnswerModeRecall, AnswerModeListening:
		return true
	}
	return false
}
