package study

import (
	"context"
	"github.com/K-svg-lab/palabra-sub002/internal/domain"
	"github.com/google/uuid"
	"sync"
	"time"
)

var _ recordRepo = &recordRepoMock{}

type recordRepoMock struct {
	GetFunc                  func(ctx context.Context, userID uuid.UUID, vocabID uuid.UUID) (*domain.ReviewRecord, error)
	GetForUpdateOrCreateFunc func(ctx context.Context, userID uuid.UUID, vocabID uuid.UUID, easeFactor float64, now time.Time) (*domain.ReviewRecord, error)
	ListDueFunc              func(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]*domain.ReviewRecord, error)
	UpdateFunc               func(ctx context.Context, record *domain.ReviewRecord) (*domain.ReviewRecord, error)

	calls struct {
		Get []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			VocabID uuid.UUID
		}
		GetForUpdateOrCreate []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			VocabID    uuid.UUID
			EaseFactor float64
			Now        time.Time
		}
		ListDue []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Now    time.Time
			Limit  int
		}
		Update []struct {
			Ctx    context.Context
			Record *domain.ReviewRecord
		}
	}
	lockGet                  sync.RWMutex
	lockGetForUpdateOrCreate sync.RWMutex
	lockListDue              sync.RWMutex
	lockUpdate               sync.RWMutex
}

func (mock *recordRepoMock) Get(ctx context.Context, userID uuid.UUID, vocabID uuid.UUID) (*domain.ReviewRecord, error) {
	if mock.GetFunc == nil {
		panic("recordRepoMock.GetFunc: method is nil but recordRepo.Get was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		VocabID uuid.UUID
	}{
		Ctx:     ctx,
		UserID:  userID,
		VocabID: vocabID,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, userID, vocabID)
}

func (mock *recordRepoMock) GetCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	VocabID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		UserID  uuid.UUID
		VocabID uuid.UUID
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *recordRepoMock) GetForUpdateOrCreate(ctx context.Context, userID uuid.UUID, vocabID uuid.UUID, easeFactor float64, now time.Time) (*domain.ReviewRecord, error) {
	if mock.GetForUpdateOrCreateFunc == nil {
		panic("recordRepoMock.GetForUpdateOrCreateFunc: method is nil but recordRepo.GetForUpdateOrCreate was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserID     uuid.UUID
		VocabID    uuid.UUID
		EaseFactor float64
		Now        time.Time
	}{
		Ctx:        ctx,
		UserID:     userID,
		VocabID:    vocabID,
		EaseFactor: easeFactor,
		Now:        now,
	}
	mock.lockGetForUpdateOrCreate.Lock()
	mock.calls.GetForUpdateOrCreate = append(mock.calls.GetForUpdateOrCreate, callInfo)
	mock.lockGetForUpdateOrCreate.Unlock()
	return mock.GetForUpdateOrCreateFunc(ctx, userID, vocabID, easeFactor, now)
}

func (mock *recordRepoMock) GetForUpdateOrCreateCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	VocabID    uuid.UUID
	EaseFactor float64
	Now        time.Time
} {
	var calls []struct {
		Ctx        context.Context
		UserID     uuid.UUID
		VocabID    uuid.UUID
		EaseFactor float64
		Now        time.Time
	}
	mock.lockGetForUpdateOrCreate.RLock()
	calls = mock.calls.GetForUpdateOrCreate
	mock.lockGetForUpdateOrCreate.RUnlock()
	return calls
}

func (mock *recordRepoMock) ListDue(ctx context.Context, userID uuid.UUID, now time.Time, limit int) ([]*domain.ReviewRecord, error) {
	if mock.ListDueFunc == nil {
		panic("recordRepoMock.ListDueFunc: method is nil but recordRepo.ListDue was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Now    time.Time
		Limit  int
	}{
		Ctx:    ctx,
		UserID: userID,
		Now:    now,
		Limit:  limit,
	}
	mock.lockListDue.Lock()
	mock.calls.ListDue = append(mock.calls.ListDue, callInfo)
	mock.lockListDue.Unlock()
	return mock.ListDueFunc(ctx, userID, now, limit)
}

func (mock *recordRepoMock) ListDueCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Now    time.Time
	Limit  int
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Now    time.Time
		Limit  int
	}
	mock.lockListDue.RLock()
	calls = mock.calls.ListDue
	mock.lockListDue.RUnlock()
	return calls
}

func (mock *recordRepoMock) Update(ctx context.Context, record *domain.ReviewRecord) (*domain.ReviewRecord, error) {
	if mock.UpdateFunc == nil {
		panic("recordRepoMock.UpdateFunc: method is nil but recordRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Record *domain.ReviewRecord
	}{
		Ctx:    ctx,
		Record: record,
	}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, record)
}

func (mock *recordRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	Record *domain.ReviewRecord
} {
	var calls []struct {
		Ctx    context.Context
		Record *domain.ReviewRecord
	}
	mock.lockUpdate.RLock()
	calls = mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
