package study

import (
	"context"
	"github.com/K-svg-lab/palabra-sub002/internal/domain"
	"github.com/google/uuid"
	"sync"
)

var _ reviewLogRepo = &reviewLogRepoMock{}

type reviewLogRepoMock struct {
	CreateFunc        func(ctx context.Context, log *domain.ReviewLog) (*domain.ReviewLog, error)
	ListRecentFunc    func(ctx context.Context, userID uuid.UUID, vocabID uuid.UUID, limit int) ([]domain.ReviewLog, error)
	RecentRatingsFunc func(ctx context.Context, userID uuid.UUID, vocabID uuid.UUID, limit int) ([]domain.ReviewRating, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Log *domain.ReviewLog
		}
		ListRecent []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			VocabID uuid.UUID
			Limit   int
		}
		RecentRatings []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			VocabID uuid.UUID
			Limit   int
		}
	}
	lockCreate        sync.RWMutex
	lockListRecent    sync.RWMutex
	lockRecentRatings sync.RWMutex
}

func (mock *reviewLogRepoMock) Create(ctx context.Context, log *domain.ReviewLog) (*domain.ReviewLog, error) {
	if mock.CreateFunc == nil {
		panic("reviewLogRepoMock.CreateFunc: method is nil but reviewLogRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Log *domain.ReviewLog
	}{
		Ctx: ctx,
		Log: log,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, log)
}

func (mock *reviewLogRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Log *domain.ReviewLog
} {
	var calls []struct {
		Ctx context.Context
		Log *domain.ReviewLog
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *reviewLogRepoMock) ListRecent(ctx context.Context, userID uuid.UUID, vocabID uuid.UUID, limit int) ([]domain.ReviewLog, error) {
	if mock.ListRecentFunc == nil {
		panic("reviewLogRepoMock.ListRecentFunc: method is nil but reviewLogRepo.ListRecent was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		VocabID uuid.UUID
		Limit   int
	}{
		Ctx:     ctx,
		UserID:  userID,
		VocabID: vocabID,
		Limit:   limit,
	}
	mock.lockListRecent.Lock()
	mock.calls.ListRecent = append(mock.calls.ListRecent, callInfo)
	mock.lockListRecent.Unlock()
	return mock.ListRecentFunc(ctx, userID, vocabID, limit)
}

func (mock *reviewLogRepoMock) ListRecentCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	VocabID uuid.UUID
	Limit   int
} {
	var calls []struct {
		Ctx     context.Context
		UserID  uuid.UUID
		VocabID uuid.UUID
		Limit   int
	}
	mock.lockListRecent.RLock()
	calls = mock.calls.ListRecent
	mock.lockListRecent.RUnlock()
	return calls
}

func (mock *reviewLogRepoMock) RecentRatings(ctx context.Context, userID uuid.UUID, vocabID uuid.UUID, limit int) ([]domain.ReviewRating, error) {
	if mock.RecentRatingsFunc == nil {
		panic("reviewLogRepoMock.RecentRatingsFunc: method is nil but reviewLogRepo.RecentRatings was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		VocabID uuid.UUID
		Limit   int
	}{
		Ctx:     ctx,
		UserID:  userID,
		VocabID: vocabID,
		Limit:   limit,
	}
	mock.lockRecentRatings.Lock()
	mock.calls.RecentRatings = append(mock.calls.RecentRatings, callInfo)
	mock.lockRecentRatings.Unlock()
	return mock.RecentRatingsFunc(ctx, userID, vocabID, limit)
}

func (mock *reviewLogRepoMock) RecentRatingsCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	VocabID uuid.UUID
	Limit   int
} {
	var calls []struct {
		Ctx     context.Context
		UserID  uuid.UUID
		VocabID uuid.UUID
		Limit   int
	}
	mock.lockRecentRatings.RLock()
	calls = mock.calls.RecentRatings
	mock.lockRecentRatings.RUnlock()
	return calls
}
