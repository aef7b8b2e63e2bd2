package study

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/K-svg-lab/palabra-sub002/internal/domain"
	"github.com/K-svg-lab/palabra-sub002/internal/service/study/adaptive"
	"github.com/K-svg-lab/palabra-sub002/pkg/ctxutil"
)

const defaultQueueLimit = 20

// GetReviewQueue returns due words ordered by review priority, most urgent first.
func (s *Service) GetReviewQueue(ctx context.Context, input GetQueueInput) ([]adaptive.QueueItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.cfg.QueueMaxLimit); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = s.cfg.QueueDefaultLimit
	}
	if limit <= 0 {
		limit = defaultQueueLimit
	}

	scan := max(s.cfg.QueueScanLimit, limit)
	now := s.now()

	due, err := s.records.ListDue(ctx, userID, now, scan)
	if err != nil {
		return nil, fmt.Errorf("list due records: %w", err)
	}
	if len(due) == 0 {
		return []adaptive.QueueItem{}, nil
	}

	ids := make([]uuid.UUID, len(due))
	for i, r := range due {
		ids[i] = r.VocabID
	}

	metas, err := s.metadata.GetByVocabIDs(ctx, userID, ids)
	if err != nil {
		return nil, fmt.Errorf("load metadata: %w", err)
	}

	items := make([]adaptive.QueueItem, 0, len(due))
	for _, r := range due {
		meta, ok := metas[r.VocabID]
		if !ok {
			meta = adaptive.NewMetadata()
		}
		items = append(items, adaptive.QueueItem{
			Record:   *r,
			Metadata: meta,
			Priority: adaptive.ReviewPriority(*r, meta, now),
		})
	}

	adaptive.SortByPriority(items)
	if len(items) > limit {
		items = items[:limit]
	}

	return items, nil
}
