package study

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/K-svg-lab/palabra-sub002/internal/domain"
	"github.com/K-svg-lab/palabra-sub002/internal/service/study/adaptive"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type recordRepo interface {
	GetForUpdateOrCreate(ctx context.Context, userID, vocabID uuid.UUID, easeFactor float64, now time.Time) (*domain.ReviewRecord, error)
	Get(ctx context.Context, userID, vocabID uuid.UUID) (*domain.ReviewRecord, error)
	Update(ctx context.Context, record *domain.ReviewRecord) (*domain.ReviewRecord, error)
	ListDue(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]*domain.ReviewRecord, error)
}

type metadataRepo interface {
	Get(ctx context.Context, userID, vocabID uuid.UUID) (*domain.AdvancedSRMetadata, error)
	GetByVocabIDs(ctx context.Context, userID uuid.UUID, vocabIDs []uuid.UUID) (map[uuid.UUID]domain.AdvancedSRMetadata, error)
	Upsert(ctx context.Context, userID, vocabID uuid.UUID, meta domain.AdvancedSRMetadata) error
}

type reviewLogRepo interface {
	Create(ctx context.Context, log *domain.ReviewLog) (*domain.ReviewLog, error)
	RecentRatings(ctx context.Context, userID, vocabID uuid.UUID, limit int) ([]domain.ReviewRating, error)
	ListRecent(ctx context.Context, userID, vocabID uuid.UUID, limit int) ([]domain.ReviewLog, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements review submission and scheduling.
type Service struct {
	records  recordRepo
	metadata metadataRepo
	reviews  reviewLogRepo
	tx       txManager
	log      *slog.Logger
	cfg      domain.SRSConfig
	answers  domain.AnswerConfig
	params   adaptive.Params
	now      func() time.Time
}

// NewService creates a new Study service.
func NewService(
	log *slog.Logger,
	records recordRepo,
	metadata metadataRepo,
	reviews reviewLogRepo,
	tx txManager,
	cfg domain.SRSConfig,
	answers domain.AnswerConfig,
) *Service {
	params := adaptive.DefaultParams()
	if cfg.TargetRetention > 0 && cfg.TargetRetention < 1 {
		params.TargetRetention = cfg.TargetRetention
	}

	return &Service{
		records:  records,
		metadata: metadata,
		reviews:  reviews,
		tx:       tx,
		log:      log.With("service", "study"),
		cfg:      cfg,
		answers:  answers,
		params:   params,
		now:      time.Now,
	}
}
