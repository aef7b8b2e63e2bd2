package study

import (
	"context"
	"github.com/K-svg-lab/palabra-sub002/internal/domain"
	"github.com/google/uuid"
	"sync"
)

var _ metadataRepo = &metadataRepoMock{}

type metadataRepoMock struct {
	GetFunc           func(ctx context.Context, userID uuid.UUID, vocabID uuid.UUID) (*domain.AdvancedSRMetadata, error)
	GetByVocabIDsFunc func(ctx context.Context, userID uuid.UUID, vocabIDs []uuid.UUID) (map[uuid.UUID]domain.AdvancedSRMetadata, error)
	UpsertFunc        func(ctx context.Context, userID uuid.UUID, vocabID uuid.UUID, meta domain.AdvancedSRMetadata) error

	calls struct {
		Get []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			VocabID uuid.UUID
		}
		GetByVocabIDs []struct {
			Ctx      context.Context
			UserID   uuid.UUID
			VocabIDs []uuid.UUID
		}
		Upsert []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			VocabID uuid.UUID
			Meta    domain.AdvancedSRMetadata
		}
	}
	lockGet           sync.RWMutex
	lockGetByVocabIDs sync.RWMutex
	lockUpsert        sync.RWMutex
}

func (mock *metadataRepoMock) Get(ctx context.Context, userID uuid.UUID, vocabID uuid.UUID) (*domain.AdvancedSRMetadata, error) {
	if mock.GetFunc == nil {
		panic("metadataRepoMock.GetFunc: method is nil but metadataRepo.Get was just called")
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

func (mock *metadataRepoMock) GetCalls() []struct {
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

func (mock *metadataRepoMock) GetByVocabIDs(ctx context.Context, userID uuid.UUID, vocabIDs []uuid.UUID) (map[uuid.UUID]domain.AdvancedSRMetadata, error) {
	if mock.GetByVocabIDsFunc == nil {
		panic("metadataRepoMock.GetByVocabIDsFunc: method is nil but metadataRepo.GetByVocabIDs was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   uuid.UUID
		VocabIDs []uuid.UUID
	}{
		Ctx:      ctx,
		UserID:   userID,
		VocabIDs: vocabIDs,
	}
	mock.lockGetByVocabIDs.Lock()
	mock.calls.GetByVocabIDs = append(mock.calls.GetByVocabIDs, callInfo)
	mock.lockGetByVocabIDs.Unlock()
	return mock.GetByVocabIDsFunc(ctx, userID, vocabIDs)
}

func (mock *metadataRepoMock) GetByVocabIDsCalls() []struct {
	Ctx      context.Context
	UserID   uuid.UUID
	VocabIDs []uuid.UUID
} {
	var calls []struct {
		Ctx      context.Context
		UserID   uuid.UUID
		VocabIDs []uuid.UUID
	}
	mock.lockGetByVocabIDs.RLock()
	calls = mock.calls.GetByVocabIDs
	mock.lockGetByVocabIDs.RUnlock()
	return calls
}

func (mock *metadataRepoMock) Upsert(ctx context.Context, userID uuid.UUID, vocabID uuid.UUID, meta domain.AdvancedSRMetadata) error {
	if mock.UpsertFunc == nil {
		panic("metadataRepoMock.UpsertFunc: method is nil but metadataRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		VocabID uuid.UUID
		Meta    domain.AdvancedSRMetadata
	}{
		Ctx:     ctx,
		UserID:  userID,
		VocabID: vocabID,
		Meta:    meta,
	}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, userID, vocabID, meta)
}

func (mock *metadataRepoMock) UpsertCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	VocabID uuid.UUID
	Meta    domain.AdvancedSRMetadata
} {
	var calls []struct {
		Ctx     context.Context
		UserID  uuid.UUID
		VocabID uuid.UUID
		Meta    domain.AdvancedSRMetadata
	}
	mock.lockUpsert.RLock()
	calls = mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}
