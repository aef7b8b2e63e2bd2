package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/K-svg-lab/palabra-sub002/internal/domain"
	"github.com/K-svg-lab/palabra-sub002/internal/service/study"
	"github.com/K-svg-lab/palabra-sub002/internal/service/study/adaptive"
)

type studyService interface {
	SubmitAnswer(ctx context.Context, input study.SubmitAnswerInput) (*study.AnswerOutcome, error)
	RecordReview(ctx context.Context, input study.RecordReviewInput) (*study.ReviewOutcome, error)
	GetReviewQueue(ctx context.Context, input study.GetQueueInput) ([]adaptive.QueueItem, error)
	GetWordStats(ctx context.Context, vocabID uuid.UUID) (*domain.WordStats, error)
}

// ReviewHandler serves the review and scheduling endpoints.
type ReviewHandler struct {
	svc studyService
	log *slog.Logger
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(svc studyService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{svc: svc, log: logger.With("handler", "review")}
}

// Register mounts the handler's routes on mux.
func (h *ReviewHandler) Register(mux *http.ServeMux, submit func(http.Handler) http.Handler) {
	if submit == nil {
		submit = func(next http.Handler) http.Handler { return next }
	}
	mux.Handle("POST /api/v1/reviews/answer", submit(http.HandlerFunc(h.SubmitAnswer)))
	mux.Handle("POST /api/v1/reviews", submit(http.HandlerFunc(h.RecordReview)))
	mux.HandleFunc("GET /api/v1/queue", h.Queue)
	mux.HandleFunc("GET /api/v1/words/{vocabID}/stats", h.WordStats)
}

type submitAnswerRequest struct {
	VocabID     uuid.UUID `json:"vocabId"`
	Answer      string    `json:"answer"`
	Accepted    []string  `json:"accepted"`
	Mode        string    `json:"mode"`
	TimeSpentMs int64     `json:"timeSpentMs"`
}

type recordReviewRequest struct {
	VocabID     uuid.UUID `json:"vocabId"`
	Rating      string    `json:"rating"`
	TimeSpentMs int64     `json:"timeSpentMs"`
}

type checkResponse struct {
	IsCorrect     bool    `json:"isCorrect"`
	Similarity    float64 `json:"similarity"`
	Band          string  `json:"band"`
	Feedback      string  `json:"feedback"`
	Article       string  `json:"article"`
	MatchedAnswer string  `json:"matchedAnswer,omitempty"`
}

type answerResponse struct {
	Check  checkResponse  `json:"check"`
	Review reviewResponse `json:"review"`
}

type reviewResponse struct {
	Rating               string           `json:"rating"`
	BaseIntervalDays     int              `json:"baseIntervalDays"`
	AdjustedIntervalDays int              `json:"adjustedIntervalDays"`
	MemoryStrengthDays   float64          `json:"memoryStrengthDays"`
	Record               recordResponse   `json:"record"`
	Metadata             metadataResponse `json:"metadata"`
}

type recordResponse struct {
	VocabID        string     `json:"vocabId"`
	EaseFactor     float64    `json:"easeFactor"`
	Repetition     int        `json:"repetition"`
	IntervalDays   int        `json:"intervalDays"`
	CorrectCount   int        `json:"correctCount"`
	TotalReviews   int        `json:"totalReviews"`
	LastReviewDate *time.Time `json:"lastReviewDate,omitempty"`
	NextReviewDate time.Time  `json:"nextReviewDate"`
}

type metadataResponse struct {
	ForgettingCurve      []curvePointResponse `json:"forgettingCurve"`
	PredictedRetention   float64              `json:"predictedRetention"`
	OptimalReviewDate    *time.Time           `json:"optimalReviewDate,omitempty"`
	DifficultyAdjustment float64              `json:"difficultyAdjustment"`
	AvgTimeToAnswerMs    float64              `json:"avgTimeToAnswerMs"`
	StdDevTimeToAnswerMs float64              `json:"stdDevTimeToAnswerMs"`
}

type curvePointResponse struct {
	DaysSinceReview      float64   `json:"daysSinceReview"`
	RetentionProbability float64   `json:"retentionProbability"`
	Timestamp            time.Time `json:"timestamp"`
}

type queueItemResponse struct {
	Priority float64          `json:"priority"`
	Record   recordResponse   `json:"record"`
	Metadata metadataResponse `json:"metadata"`
}

type queueResponse struct {
	Items []queueItemResponse `json:"items"`
}

type reviewLogResponse struct {
	Rating      string    `json:"rating"`
	TimeSpentMs int       `json:"timeSpentMs"`
	Similarity  *float64  `json:"similarity,omitempty"`
	ReviewedAt  time.Time `json:"reviewedAt"`
}

type wordStatsResponse struct {
	Record             recordResponse      `json:"record"`
	Metadata           metadataResponse    `json:"metadata"`
	RecentReviews      []reviewLogResponse `json:"recentReviews"`
	RetentionNow       float64             `json:"retentionNow"`
	MemoryStrengthDays float64             `json:"memoryStrengthDays"`
	Priority           float64             `json:"priority"`
}

// SubmitAnswer handles POST /api/v1/reviews/answer.
func (h *ReviewHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	var req submitAnswerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	timeSpent, err := timeSpentFromMs(req.TimeSpentMs)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	mode := domain.AnswerMode(req.Mode)
	if req.Mode == "" {
		mode = domain.AnswerModeRecall
	}

	out, err := h.svc.SubmitAnswer(r.Context(), study.SubmitAnswerInput{
		VocabID:   req.VocabID,
		Answer:    req.Answer,
		Accepted:  req.Accepted,
		Mode:      mode,
		TimeSpent: timeSpent,
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, answerResponse{
		Check: checkResponse{
			IsCorrect:     out.Check.IsCorrect,
			Similarity:    out.Check.Similarity,
			Band:          out.Check.Band.String(),
			Feedback:      out.Check.Feedback,
			Article:       out.Check.Article.String(),
			MatchedAnswer: out.MatchedAnswer,
		},
		Review: toReviewResponse(out.Review),
	})
}

// RecordReview handles POST /api/v1/reviews (self-assessed rating).
func (h *ReviewHandler) RecordReview(w http.ResponseWriter, r *http.Request) {
	var req recordReviewRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	timeSpent, err := timeSpentFromMs(req.TimeSpentMs)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	out, err := h.svc.RecordReview(r.Context(), study.RecordReviewInput{
		VocabID:   req.VocabID,
		Rating:    domain.ReviewRating(req.Rating),
		TimeSpent: timeSpent,
	})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toReviewResponse(*out))
}

// Queue handles GET /api/v1/queue?limit=N.
func (h *ReviewHandler) Queue(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = n
	}

	items, err := h.svc.GetReviewQueue(r.Context(), study.GetQueueInput{Limit: limit})
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	resp := queueResponse{Items: make([]queueItemResponse, len(items))}
	for i, it := range items {
		resp.Items[i] = queueItemResponse{
			Priority: it.Priority,
			Record:   toRecordResponse(it.Record),
			Metadata: toMetadataResponse(it.Metadata),
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// WordStats handles GET /api/v1/words/{vocabID}/stats.
func (h *ReviewHandler) WordStats(w http.ResponseWriter, r *http.Request) {
	vocabID, err := uuid.Parse(r.PathValue("vocabID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid vocab id")
		return
	}

	stats, err := h.svc.GetWordStats(r.Context(), vocabID)
	if err != nil {
		handleError(r.Context(), h.log, w, err)
		return
	}

	recent := make([]reviewLogResponse, len(stats.RecentReviews))
	for i, l := range stats.RecentReviews {
		recent[i] = reviewLogResponse{
			Rating:      l.Rating.String(),
			TimeSpentMs: l.TimeSpentMs,
			Similarity:  l.Similarity,
			ReviewedAt:  l.ReviewedAt,
		}
	}

	writeJSON(w, http.StatusOK, wordStatsResponse{
		Record:             toRecordResponse(stats.Record),
		Metadata:           toMetadataResponse(stats.Metadata),
		RecentReviews:      recent,
		RetentionNow:       stats.RetentionNow,
		MemoryStrengthDays: stats.MemoryStrengthDays,
		Priority:           stats.Priority,
	})
}

// timeSpentFromMs bounds the client value before the Duration multiplication
// can overflow.
func timeSpentFromMs(ms int64) (time.Duration, error) {
	if ms < 0 {
		return 0, domain.NewValidationError("time_spent_ms", "must be non-negative")
	}
	if ms > study.MaxTimeSpent.Milliseconds() {
		return 0, domain.NewValidationError("time_spent_ms", "max 10 minutes")
	}
	return time.Duration(ms) * time.Millisecond, nil
}

func toReviewResponse(o study.ReviewOutcome) reviewResponse {
	return reviewResponse{
		Rating:               o.Rating.String(),
		BaseIntervalDays:     o.BaseIntervalDays,
		AdjustedIntervalDays: o.AdjustedIntervalDays,
		MemoryStrengthDays:   o.MemoryStrengthDays,
		Record:               toRecordResponse(o.Record),
		Metadata:             toMetadataResponse(o.Metadata),
	}
}

func toRecordResponse(r domain.ReviewRecord) recordResponse {
	return recordResponse{
		VocabID:        r.VocabID.String(),
		EaseFactor:     r.EaseFactor,
		Repetition:     r.Repetition,
		IntervalDays:   r.IntervalDays,
		CorrectCount:   r.CorrectCount,
		TotalReviews:   r.TotalReviews,
		LastReviewDate: r.LastReviewDate,
		NextReviewDate: r.NextReviewDate,
	}
}

func toMetadataResponse(m domain.AdvancedSRMetadata) metadataResponse {
	curve := make([]curvePointResponse, len(m.ForgettingCurve))
	for i, p := range m.ForgettingCurve {
		curve[i] = curvePointResponse(p)
	}

	resp := metadataResponse{
		ForgettingCurve:      curve,
		PredictedRetention:   m.PredictedRetention,
		DifficultyAdjustment: m.DifficultyAdjustment,
		AvgTimeToAnswerMs:    m.AvgTimeToAnswerMs,
		StdDevTimeToAnswerMs: m.StdDevTimeToAnswerMs,
	}
	if !m.OptimalReviewDate.IsZero() {
		t := m.OptimalReviewDate
		resp.OptimalReviewDate = &t
	}
	return resp
}
