// Package srmetadata implements the adaptive scheduling metadata repository
// using PostgreSQL. The forgetting curve is stored as a JSONB array.
package srmetadata

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/K-svg-lab/palabra-sub002/internal/adapter/postgres"
	"github.com/K-svg-lab/palabra-sub002/internal/domain"
)

const (
	table  = "sr_metadata"
	entity = "sr_metadata"
)

var columns = []string{
	"user_id", "vocab_id", "forgetting_curve", "predicted_retention",
	"optimal_review_date", "difficulty_adjustment", "avg_time_to_answer_ms",
	"stddev_time_to_answer_ms",
}

var upsertColumns = append(slices.Clone(columns), "updated_at")

// Repo provides metadata persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new metadata repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

type row struct {
	UserID               uuid.UUID  `db:"user_id"`
	VocabID              uuid.UUID  `db:"vocab_id"`
	ForgettingCurve      []byte     `db:"forgetting_curve"`
	PredictedRetention   float64    `db:"predicted_retention"`
	OptimalReviewDate    *time.Time `db:"optimal_review_date"`
	DifficultyAdjustment float64    `db:"difficulty_adjustment"`
	AvgTimeToAnswerMs    float64    `db:"avg_time_to_answer_ms"`
	StdDevTimeToAnswerMs float64    `db:"stddev_time_to_answer_ms"`
}

func (r row) toDomain() (domain.AdvancedSRMetadata, error) {
	curve := []domain.ForgettingCurvePoint{}
	if len(r.ForgettingCurve) > 0 {
		if err := json.Unmarshal(r.ForgettingCurve, &curve); err != nil {
			return domain.AdvancedSRMetadata{}, fmt.Errorf("unmarshal forgetting curve: %w", err)
		}
		if curve == nil {
			curve = []domain.ForgettingCurvePoint{}
		}
	}

	meta := domain.AdvancedSRMetadata{
		ForgettingCurve:      curve,
		PredictedRetention:   r.PredictedRetention,
		DifficultyAdjustment: r.DifficultyAdjustment,
		AvgTimeToAnswerMs:    r.AvgTimeToAnswerMs,
		StdDevTimeToAnswerMs: r.StdDevTimeToAnswerMs,
	}
	if r.OptimalReviewDate != nil {
		meta.OptimalReviewDate = *r.OptimalReviewDate
	}
	return meta, nil
}

// Get returns the metadata for a word or domain.ErrNotFound.
func (r *Repo) Get(ctx context.Context, userID, vocabID uuid.UUID) (*domain.AdvancedSRMetadata, error) {
	key := postgres.WordKey(userID, vocabID)

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID, "vocab_id": vocabID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select %s: %w", entity, err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rw, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("%s %s: %w", entity, key, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, entity, key)
	}

	meta, err := rw.toDomain()
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", entity, key, err)
	}
	return &meta, nil
}

// GetByVocabIDs returns the metadata of the given words keyed by vocab ID.
// Words without metadata are absent from the map.
func (r *Repo) GetByVocabIDs(ctx context.Context, userID uuid.UUID, vocabIDs []uuid.UUID) (map[uuid.UUID]domain.AdvancedSRMetadata, error) {
	out := make(map[uuid.UUID]domain.AdvancedSRMetadata, len(vocabIDs))
	if len(vocabIDs) == 0 {
		return out, nil
	}

	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		Where("vocab_id = ANY(?::uuid[])", vocabIDs).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select %s batch: %w", entity, err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, entity+" batch for user", userID.String())
	}

	for _, rw := range rows {
		meta, err := rw.toDomain()
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", entity, postgres.WordKey(rw.UserID, rw.VocabID), err)
		}
		out[rw.VocabID] = meta
	}
	return out, nil
}

// Upsert stores the metadata for a word, replacing any previous value.
// The word's review record must already exist.
func (r *Repo) Upsert(ctx context.Context, userID, vocabID uuid.UUID, meta domain.AdvancedSRMetadata) error {
	key := postgres.WordKey(userID, vocabID)

	curve := meta.ForgettingCurve
	if curve == nil {
		curve = []domain.ForgettingCurvePoint{}
	}
	curveJSON, err := json.Marshal(curve)
	if err != nil {
		return fmt.Errorf("marshal forgetting curve: %w", err)
	}

	var optimal *time.Time
	if !meta.OptimalReviewDate.IsZero() {
		optimal = &meta.OptimalReviewDate
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(upsertColumns...).
		Values(
			userID, vocabID, curveJSON, meta.PredictedRetention,
			optimal, meta.DifficultyAdjustment, meta.AvgTimeToAnswerMs,
			meta.StdDevTimeToAnswerMs, sq.Expr("now()"),
		).
		Suffix(`ON CONFLICT (user_id, vocab_id) DO UPDATE SET
			forgetting_curve = EXCLUDED.forgetting_curve,
			predicted_retention = EXCLUDED.predicted_retention,
			optimal_review_date = EXCLUDED.optimal_review_date,
			difficulty_adjustment = EXCLUDED.difficulty_adjustment,
			avg_time_to_answer_ms = EXCLUDED.avg_time_to_answer_ms,
			stddev_time_to_answer_ms = EXCLUDED.stddev_time_to_answer_ms,
			updated_at = EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert %s: %w", entity, err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, entity, key)
	}
	return nil
}
