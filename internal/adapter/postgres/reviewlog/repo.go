// Package reviewlog implements the append-only review history repository using PostgreSQL.
package reviewlog

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
	table  = "review_logs"
	entity = "review_log"
)

var columns = []string{"id", "user_id", "vocab_id", "rating", "time_spent_ms", "similarity", "reviewed_at"}

// Repo provides review log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new review log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

type row struct {
	ID          uuid.UUID `db:"id"`
	UserID      uuid.UUID `db:"user_id"`
	VocabID     uuid.UUID `db:"vocab_id"`
	Rating      string    `db:"rating"`
	TimeSpentMs int       `db:"time_spent_ms"`
	Similarity  *float64  `db:"similarity"`
	ReviewedAt  time.Time `db:"reviewed_at"`
}

func (r row) toDomain() domain.ReviewLog {
	return domain.ReviewLog{
		ID:          r.ID,
		UserID:      r.UserID,
		VocabID:     r.VocabID,
		Rating:      domain.ReviewRating(r.Rating),
		TimeSpentMs: r.TimeSpentMs,
		Similarity:  r.Similarity,
		ReviewedAt:  r.ReviewedAt,
	}
}

// Create appends a review log entry and returns the stored row.
func (r *Repo) Create(ctx context.Context, log *domain.ReviewLog) (*domain.ReviewLog, error) {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(log.ID, log.UserID, log.VocabID, string(log.Rating), log.TimeSpentMs, log.Similarity, log.ReviewedAt).
		Suffix("RETURNING " + postgres.ColumnList(columns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert %s: %w", entity, err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rw, sql, args...); err != nil {
		return nil, postgres.MapError(err, entity, log.ID.String())
	}

	out := rw.toDomain()
	return &out, nil
}

// RecentRatings returns the ratings of the latest reviews of a word, newest first.
func (r *Repo) RecentRatings(ctx context.Context, userID, vocabID uuid.UUID, limit int) ([]domain.ReviewRating, error) {
	if limit <= 0 {
		return []domain.ReviewRating{}, nil
	}

	sql, args, err := r.recent(userID, vocabID, limit, "rating").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select recent ratings: %w", err)
	}

	var ratings []string
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &ratings, sql, args...); err != nil {
		return nil, postgres.MapError(err, "recent ratings", postgres.WordKey(userID, vocabID))
	}

	out := make([]domain.ReviewRating, len(ratings))
	for i, s := range ratings {
		out[i] = domain.ReviewRating(s)
	}
	return out, nil
}

// ListRecent returns the latest review log entries of a word, newest first.
func (r *Repo) ListRecent(ctx context.Context, userID, vocabID uuid.UUID, limit int) ([]domain.ReviewLog, error) {
	if limit <= 0 {
		return []domain.ReviewLog{}, nil
	}

	sql, args, err := r.recent(userID, vocabID, limit, columns...).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select recent %s: %w", entity, err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "recent review_logs", postgres.WordKey(userID, vocabID))
	}

	out := make([]domain.ReviewLog, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

func (r *Repo) recent(userID, vocabID uuid.UUID, limit int, cols ...string) sq.SelectBuilder {
	return postgres.Builder().
		Select(cols...).
		From(table).
		Where(sq.Eq{"user_id": userID, "vocab_id": vocabID}).
		OrderBy("reviewed_at DESC", "id DESC").
		Limit(uint64(limit))
}
