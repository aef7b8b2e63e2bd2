package rest

import (
	"context"
	"github.com/K-svg-lab/palabra-sub002/internal/domain"
	"github.com/K-svg-lab/palabra-sub002/internal/service/study"
	"github.com/K-svg-lab/palabra-sub002/internal/service/study/adaptive"
	"github.com/google/uuid"
	"sync"
)

var _ studyService = &studyServiceMock{}

type studyServiceMock struct {
	GetReviewQueueFunc func(ctx context.Context, input study.GetQueueInput) ([]adaptive.QueueItem, error)
	GetWordStatsFunc   func(ctx context.Context, vocabID uuid.UUID) (*domain.WordStats, error)
	RecordReviewFunc   func(ctx context.Context, input study.RecordReviewInput) (*study.ReviewOutcome, error)
	SubmitAnswerFunc   func(ctx context.Context, input study.SubmitAnswerInput) (*study.AnswerOutcome, error)

	calls struct {
		GetReviewQueue []struct {
			Ctx   context.Context
			Input study.GetQueueInput
		}
		GetWordStats []struct {
			Ctx     context.Context
			VocabID uuid.UUID
		}
		RecordReview []struct {
			Ctx   context.Context
			Input study.RecordReviewInput
		}
		SubmitAnswer []struct {
			Ctx   context.Context
			Input study.SubmitAnswerInput
		}
	}
	lockGetReviewQueue sync.RWMutex
	lockGetWordStats   sync.RWMutex
	lockRecordReview   sync.RWMutex
	lockSubmitAnswer   sync.RWMutex
}

func (mock *studyServiceMock) GetReviewQueue(ctx context.Context, input study.GetQueueInput) ([]adaptive.QueueItem, error) {
	if mock.GetReviewQueueFunc == nil {
		panic("studyServiceMock.GetReviewQueueFunc: method is nil but studyService.GetReviewQueue was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input study.GetQueueInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockGetReviewQueue.Lock()
	mock.calls.GetReviewQueue = append(mock.calls.GetReviewQueue, callInfo)
	mock.lockGetReviewQueue.Unlock()
	return mock.GetReviewQueueFunc(ctx, input)
}

func (mock *studyServiceMock) GetReviewQueueCalls() []struct {
	Ctx   context.Context
	Input study.GetQueueInput
} {
	var calls []struct {
		Ctx   context.Context
		Input study.GetQueueInput
	}
	mock.lockGetReviewQueue.RLock()
	calls = mock.calls.GetReviewQueue
	mock.lockGetReviewQueue.RUnlock()
	return calls
}

func (mock *studyServiceMock) GetWordStats(ctx context.Context, vocabID uuid.UUID) (*domain.WordStats, error) {
	if mock.GetWordStatsFunc == nil {
		panic("studyServiceMock.GetWordStatsFunc: method is nil but studyService.GetWordStats was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		VocabID uuid.UUID
	}{
		Ctx:     ctx,
		VocabID: vocabID,
	}
	mock.lockGetWordStats.Lock()
	mock.calls.GetWordStats = append(mock.calls.GetWordStats, callInfo)
	mock.lockGetWordStats.Unlock()
	return mock.GetWordStatsFunc(ctx, vocabID)
}

func (mock *studyServiceMock) GetWordStatsCalls() []struct {
	Ctx     context.Context
	VocabID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		VocabID uuid.UUID
	}
	mock.lockGetWordStats.RLock()
	calls = mock.calls.GetWordStats
	mock.lockGetWordStats.RUnlock()
	return calls
}

func (mock *studyServiceMock) RecordReview(ctx context.Context, input study.RecordReviewInput) (*study.ReviewOutcome, error) {
	if mock.RecordReviewFunc == nil {
		panic("studyServiceMock.RecordReviewFunc: method is nil but studyService.RecordReview was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input study.RecordReviewInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockRecordReview.Lock()
	mock.calls.RecordReview = append(mock.calls.RecordReview, callInfo)
	mock.lockRecordReview.Unlock()
	return mock.RecordReviewFunc(ctx, input)
}

func (mock *studyServiceMock) RecordReviewCalls() []struct {
	Ctx   context.Context
	Input study.RecordReviewInput
} {
	var calls []struct {
		Ctx   context.Context
		Input study.RecordReviewInput
	}
	mock.lockRecordReview.RLock()
	calls = mock.calls.RecordReview
	mock.lockRecordReview.RUnlock()
	return calls
}

func (mock *studyServiceMock) SubmitAnswer(ctx context.Context, input study.SubmitAnswerInput) (*study.AnswerOutcome, error) {
	if mock.SubmitAnswerFunc == nil {
		panic("studyServiceMock.SubmitAnswerFunc: method is nil but studyService.SubmitAnswer was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input study.SubmitAnswerInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockSubmitAnswer.Lock()
	mock.calls.SubmitAnswer = append(mock.calls.SubmitAnswer, callInfo)
	mock.lockSubmitAnswer.Unlock()
	return mock.SubmitAnswerFunc(ctx, input)
}

func (mock *studyServiceMock) SubmitAnswerCalls() []struct {
	Ctx   context.Context
	Input study.SubmitAnswerInput
} {
	var calls []struct {
		Ctx   context.Context
		Input study.SubmitAnswerInput
	}
	mock.lockSubmitAnswer.RLock()
	calls = mock.calls.SubmitAnswer
	mock.lockSubmitAnswer.RUnlock()
	return calls
}
