package study

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/K-svg-lab/palabra-sub002/internal/domain"
	"github.com/K-svg-lab/palabra-sub002/internal/service/study/adaptive"
	"github.com/K-svg-lab/palabra-sub002/pkg/ctxutil"
)

// GetWordStats returns the scheduling state of one word with its retention
// right now, memory strength and queue priority.
func (s *Service) GetWordStats(ctx context.Context, vocabID uuid.UUID) (*domain.WordStats, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if vocabID == uuid.Nil {
		return nil, domain.NewValidationError("vocab_id", "required")
	}

	var (
		record *domain.ReviewRecord
		meta   domain.AdvancedSRMetadata
		logs   []domain.ReviewLog
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		record, err = s.records.Get(gctx, userID, vocabID)
		if err != nil {
			return fmt.Errorf("get review record: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		meta, err = s.loadMetadata(gctx, userID, vocabID)
		return err
	})
	g.Go(func() error {
		var err error
		logs, err = s.reviews.ListRecent(gctx, userID, vocabID, s.cfg.RecentHistorySize)
		if err != nil {
			return fmt.Errorf("list recent reviews: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ratings := make([]domain.ReviewRating, len(logs))
	for i, l := range logs {
		ratings[i] = l.Rating
	}

	now := s.now()
	return &domain.WordStats{
		Record:             *record,
		Metadata:           meta,
		RecentReviews:      logs,
		RetentionNow:       adaptive.PredictRetention(*record, now),
		MemoryStrengthDays: adaptive.MemoryStrength(*record, ratings),
		Priority:           adaptive.ReviewPriority(*record, meta, now),
	}, nil
}
