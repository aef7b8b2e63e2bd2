// Package reviewrecord implements the per-word SM-2 state repository using PostgreSQL.
package reviewrecord

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/K-svg-lab/palabra-sub002/internal/adapter/postgres"
	"github.com/K-svg-lab/palabra-sub002/internal/domain"
)

const (
	table  = "review_records"
	entity = "review_record"
)

var columns = []string{
	"user_id", "vocab_id", "ease_factor", "repetition", "interval_days",
	"correct_count", "total_reviews", "last_review_date", "next_review_date",
	"created_at", "updated_at",
}

// Repo provides review record persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new review record repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

type row struct {
	UserID         uuid.UUID  `db:"user_id"`
	VocabID        uuid.UUID  `db:"vocab_id"`
	EaseFactor     float64    `db:"ease_factor"`
	Repetition     int        `db:"repetition"`
	IntervalDays   int        `db:"interval_days"`
	CorrectCount   int        `db:"correct_count"`
	TotalReviews   int        `db:"total_reviews"`
	LastReviewDate *time.Time `db:"last_review_date"`
	NextReviewDate time.Time  `db:"next_review_date"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

func (r row) toDomain() *domain.ReviewRecord {
	return &domain.ReviewRecord{
		UserID:         r.UserID,
		VocabID:        r.VocabID,
		EaseFactor:     r.EaseFactor,
		Repetition:     r.Repetition,
		IntervalDays:   r.IntervalDays,
		CorrectCount:   r.CorrectCount,
		TotalReviews:   r.TotalReviews,
		LastReviewDate: r.LastReviewDate,
		NextReviewDate: r.NextReviewDate,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

// GetForUpdateOrCreate returns the record for a word, inserting a fresh one
// (never reviewed, due at now) if it does not exist yet. The row is locked
// with SELECT ... FOR UPDATE, so it must be called inside a transaction for
// the lock to outlive the statement.
func (r *Repo) GetForUpdateOrCreate(ctx context.Context, userID, vocabID uuid.UUID, easeFactor float64, now time.Time) (*domain.ReviewRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	key := postgres.WordKey(userID, vocabID)

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("user_id", "vocab_id", "ease_factor", "next_review_date", "created_at", "updated_at").
		Values(userID, vocabID, easeFactor, now, now, now).
		Suffix("ON CONFLICT (user_id, vocab_id) DO NOTHING").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert %s: %w", entity, err)
	}
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return nil, postgres.MapError(err, entity, key)
	}

	return r.get(ctx, q, userID, vocabID, true)
}

// Get returns the record for a word or domain.ErrNotFound.
func (r *Repo) Get(ctx context.Context, userID, vocabID uuid.UUID) (*domain.ReviewRecord, error) {
	return r.get(ctx, postgres.QuerierFromCtx(ctx, r.pool), userID, vocabID, false)
}

func (r *Repo) get(ctx context.Context, q postgres.Querier, userID, vocabID uuid.UUID, forUpdate bool) (*domain.ReviewRecord, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID, "vocab_id": vocabID})
	if forUpdate {
		query = query.Suffix("FOR UPDATE")
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select %s: %w", entity, err)
	}

	var rw row
	if err := pgxscan.Get(ctx, q, &rw, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("%s %s: %w", entity, postgres.WordKey(userID, vocabID), domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, entity, postgres.WordKey(userID, vocabID))
	}
	return rw.toDomain(), nil
}

// Update writes the scheduling fields of an existing record and returns the stored row.
func (r *Repo) Update(ctx context.Context, record *domain.ReviewRecord) (*domain.ReviewRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	key := postgres.WordKey(record.UserID, record.VocabID)

	sql, args, err := postgres.Builder().
		Update(table).
		SetMap(map[string]any{
			"ease_factor":      record.EaseFactor,
			"repetition":       record.Repetition,
			"interval_days":    record.IntervalDays,
			"correct_count":    record.CorrectCount,
			"total_reviews":    record.TotalReviews,
			"last_review_date": record.LastReviewDate,
			"next_review_date": record.NextReviewDate,
			"updated_at":       record.UpdatedAt,
		}).
		Where(sq.Eq{"user_id": record.UserID, "vocab_id": record.VocabID}).
		Suffix("RETURNING " + postgres.ColumnList(columns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update %s: %w", entity, err)
	}

	var rw row
	if err := pgxscan.Get(ctx, q, &rw, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("%s %s: %w", entity, key, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, entity, key)
	}
	return rw.toDomain(), nil
}

// ListDue returns the user's records that are due at now, oldest due date first.
// Words that were never reviewed are always due.
func (r *Repo) ListDue(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]*domain.ReviewRecord, error) {
	if limit <= 0 {
		return []*domain.ReviewRecord{}, nil
	}

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Or{
			sq.Eq{"last_review_date": nil},
			sq.LtOrEq{"next_review_date": now},
		}).
		OrderBy("next_review_date ASC", "vocab_id ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select due %s: %w", entity, err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "due review_records for user", userID.String())
	}

	out := make([]*domain.ReviewRecord, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}
