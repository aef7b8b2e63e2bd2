package study

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/K-svg-lab/palabra-sub002/internal/domain"
	"github.com/K-svg-lab/palabra-sub002/internal/service/answer"
	"github.com/K-svg-lab/palabra-sub002/internal/service/study/adaptive"
	"github.com/K-svg-lab/palabra-sub002/pkg/ctxutil"
)

const day = 24 * time.Hour

// SubmitAnswer grades a typed answer, derives a rating from the grade and the
// answer time, and records the review.
func (s *Service) SubmitAnswer(ctx context.Context, input SubmitAnswerInput) (*AnswerOutcome, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	check, matched := s.gradeAnswer(input)
	rating := RatingFromAnswer(check, input.TimeSpent, s.cfg.FastAnswerThreshold)
	similarity := check.Similarity

	review, err := s.RecordReview(ctx, RecordReviewInput{
		VocabID:    input.VocabID,
		Rating:     rating,
		TimeSpent:  input.TimeSpent,
		Similarity: &similarity,
	})
	if err != nil {
		return nil, err
	}

	return &AnswerOutcome{
		Check:         check,
		MatchedAnswer: matched,
		Review:        *review,
	}, nil
}

func (s *Service) gradeAnswer(input SubmitAnswerInput) (answer.Result, string) {
	opts := answer.Options{
		Strict:    s.answers.Strict,
		Listening: input.Mode == domain.AnswerModeListening,
	}

	if !s.answers.SpanishArticles {
		res := answer.CheckAnswerMultiple(input.Answer, input.Accepted, opts)
		return res.Result, res.MatchedAnswer
	}

	// Article-aware grading, best candidate wins and the first one keeps ties.
	best := answer.CheckSpanishAnswer(input.Answer, input.Accepted[0], opts)
	matched := input.Accepted[0]
	for _, candidate := range input.Accepted[1:] {
		if best.Band == answer.BandPerfect {
			break
		}
		if res := answer.CheckSpanishAnswer(input.Answer, candidate, opts); res.Similarity > best.Similarity {
			best, matched = res, candidate
		}
	}
	return best, matched
}

// RecordReview applies one review to a word: forgetting-curve and difficulty
// metadata first, then the SM-2 step scaled by the difficulty multiplier.
// All reads and writes for the word happen in one transaction with the record
// row locked, so concurrent reviews of the same word are serialized.
func (s *Service) RecordReview(ctx context.Context, input RecordReviewInput) (*ReviewOutcome, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	var out ReviewOutcome

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		record, err := s.records.GetForUpdateOrCreate(txCtx, userID, input.VocabID, s.cfg.DefaultEaseFactor, now)
		if err != nil {
			return fmt.Errorf("lock review record: %w", err)
		}

		meta, err := s.loadMetadata(txCtx, userID, input.VocabID)
		if err != nil {
			return err
		}

		recent, err := s.reviews.RecentRatings(txCtx, userID, input.VocabID, s.cfg.RecentHistorySize)
		if err != nil {
			return fmt.Errorf("load recent ratings: %w", err)
		}

		result := domain.ReviewResult{Rating: input.Rating, TimeSpent: input.TimeSpent}
		nextMeta := s.params.UpdateMetadata(meta, *record, result, now)

		sm := NextSM2(SM2Input{
			EaseFactor:      record.EaseFactor,
			Repetition:      record.Repetition,
			IntervalDays:    record.IntervalDays,
			Rating:          input.Rating,
			MinEaseFactor:   s.cfg.MinEaseFactor,
			MaxIntervalDays: s.cfg.MaxIntervalDays,
		})
		adjusted := adaptive.AdjustedInterval(sm.IntervalDays, nextMeta)
		if s.cfg.MaxIntervalDays > 0 {
			adjusted = min(adjusted, s.cfg.MaxIntervalDays)
		}

		next := *record
		next.EaseFactor = sm.EaseFactor
		next.Repetition = sm.Repetition
		next.IntervalDays = sm.IntervalDays
		next.TotalReviews++
		if input.Rating.IsCorrect() {
			next.CorrectCount++
		}
		next.LastReviewDate = &now
		next.NextReviewDate = now.Add(time.Duration(adjusted) * day)
		next.UpdatedAt = now

		saved, err := s.records.Update(txCtx, &next)
		if err != nil {
			return fmt.Errorf("update review record: %w", err)
		}

		if err := s.metadata.Upsert(txCtx, userID, input.VocabID, nextMeta); err != nil {
			return fmt.Errorf("save metadata: %w", err)
		}

		if _, err := s.reviews.Create(txCtx, &domain.ReviewLog{
			ID:          uuid.New(),
			UserID:      userID,
			VocabID:     input.VocabID,
			Rating:      input.Rating,
			TimeSpentMs: int(input.TimeSpent / time.Millisecond),
			Similarity:  input.Similarity,
			ReviewedAt:  now,
		}); err != nil {
			return fmt.Errorf("create review log: %w", err)
		}

		out = ReviewOutcome{
			Record:               *saved,
			Metadata:             nextMeta,
			Rating:               input.Rating,
			BaseIntervalDays:     sm.IntervalDays,
			AdjustedIntervalDays: adjusted,
			MemoryStrengthDays:   adaptive.MemoryStrength(*saved, append(recent, input.Rating)),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "review recorded",
		slog.String("user_id", userID.String()),
		slog.String("vocab_id", input.VocabID.String()),
		slog.String("rating", input.Rating.String()),
		slog.Int("base_interval_days", out.BaseIntervalDays),
		slog.Int("adjusted_interval_days", out.AdjustedIntervalDays),
		slog.Float64("difficulty", out.Metadata.DifficultyAdjustment),
		slog.Float64("predicted_retention", out.Metadata.PredictedRetention),
	)

	return &out, nil
}

// loadMetadata returns the stored metadata for a word, or fresh metadata for
// a word reviewed for the first time.
func (s *Service) loadMetadata(ctx context.Context, userID, vocabID uuid.UUID) (domain.AdvancedSRMetadata, error) {
	meta, err := s.metadata.Get(ctx, userID, vocabID)
	if errors.Is(err, domain.ErrNotFound) {
		return adaptive.NewMetadata(), nil
	}
	if err != nil {
		return domain.AdvancedSRMetadata{}, fmt.Errorf("load metadata: %w", err)
	}
	return *meta, nil
}
