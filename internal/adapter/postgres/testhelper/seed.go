package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/K-svg-lab/palabra-sub002/internal/domain"
)

// SeedReviewRecord inserts a never-reviewed record for a fresh user and word,
// due now. Returns the stored record.
func SeedReviewRecord(t *testing.T, pool *pgxpool.Pool) domain.ReviewRecord {
	t.Helper()
	return SeedReviewRecordFor(t, pool, uuid.New(), uuid.New(), time.Now())
}

// SeedReviewRecordFor inserts a never-reviewed record for the given user and
// word with its due date at next.
func SeedReviewRecordFor(t *testing.T, pool *pgxpool.Pool, userID, vocabID uuid.UUID, next time.Time) domain.ReviewRecord {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	rec := domain.ReviewRecord{
		UserID:         userID,
		VocabID:        vocabID,
		EaseFactor:     2.5,
		NextReviewDate: next.UTC().Truncate(time.Microsecond),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO review_records (user_id, vocab_id, ease_factor, next_review_date, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		rec.UserID, rec.VocabID, rec.EaseFactor, rec.NextReviewDate, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedReviewRecord insert: %v", err)
	}

	return rec
}

// MarkReviewed stamps a seeded record as reviewed at last and due at next.
func MarkReviewed(t *testing.T, pool *pgxpool.Pool, userID, vocabID uuid.UUID, last, next time.Time) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`UPDATE review_records
		 SET last_review_date = $3, next_review_date = $4, repetition = 1, interval_days = 1, total_reviews = 1, correct_count = 1
		 WHERE user_id = $1 AND vocab_id = $2`,
		userID, vocabID, last.UTC(), next.UTC(),
	)
	if err != nil {
		t.Fatalf("testhelper: MarkReviewed update: %v", err)
	}
}
