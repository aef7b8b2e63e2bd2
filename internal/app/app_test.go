package app

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/K-svg-lab/palabra-sub002/internal/adapter/postgres/testhelper"
	"github.com/K-svg-lab/palabra-sub002/internal/config"
	"github.com/K-svg-lab/palabra-sub002/internal/transport/middleware"
)

type testServer struct {
	t   *testing.T
	srv *httptest.Server
}

func setupServer(t *testing.T, submitRate int) *testServer {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	pool := testhelper.SetupTestDB(t)

	cfg := &config.Config{
		Server: config.ServerConfig{SubmitRatePerMinute: submitRate},
		SRS: config.SRSConfig{
			DefaultEaseFactor:   2.5,
			MinEaseFactor:       1.3,
			MaxIntervalDays:     365,
			TargetRetention:     0.9,
			RecentHistorySize:   10,
			FastAnswerThreshold: 5 * time.Second,
			QueueDefaultLimit:   20,
			QueueMaxLimit:       200,
			QueueScanLimit:      500,
		},
		Answer: config.AnswerConfig{SpanishArticles: true},
	}

	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := httptest.NewServer(newHandler(pool, cfg, logger, limiter))
	t.Cleanup(srv.Close)

	return &testServer{t: t, srv: srv}
}

func (s *testServer) do(method, path string, userID uuid.UUID, body any, out any) int {
	s.t.Helper()

	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		r = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, s.srv.URL+path, r)
	require.NoError(s.t, err)
	if userID != uuid.Nil {
		req.Header.Set(middleware.UserIDHeader, userID.String())
	}

	resp, err := s.srv.Client().Do(req)
	require.NoError(s.t, err)
	defer resp.Body.Close()

	assert.NotEmpty(s.t, resp.Header.Get(middleware.RequestIDHeader))
	if out != nil && resp.StatusCode == http.StatusOK {
		require.NoError(s.t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestServer_Health(t *testing.T) {
	s := setupServer(t, 0)

	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/live", uuid.Nil, nil, nil))
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/ready", uuid.Nil, nil, nil))

	var health struct {
		Status     string `json:"status"`
		Components map[string]struct {
			Status string `json:"status"`
		} `json:"components"`
	}
	require.Equal(t, http.StatusOK, s.do(http.MethodGet, "/health", uuid.Nil, nil, &health))
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "ok", health.Components["postgres"].Status)
}

func TestServer_ReviewFlow(t *testing.T) {
	s := setupServer(t, 0)
	userID, vocabID := uuid.New(), uuid.New()

	var answer struct {
		Check struct {
			IsCorrect bool   `json:"isCorrect"`
			Band      string `json:"band"`
		} `json:"check"`
		Review struct {
			Rating string `json:"rating"`
			Record struct {
				Repetition   int `json:"repetition"`
				IntervalDays int `json:"intervalDays"`
				TotalReviews int `json:"totalReviews"`
			} `json:"record"`
		} `json:"review"`
	}
	code := s.do(http.MethodPost, "/api/v1/reviews/answer", userID, map[string]any{
		"vocabId":     vocabID,
		"answer":      "el gato",
		"accepted":    []string{"el gato"},
		"timeSpentMs": 2000,
	}, &answer)
	require.Equal(t, http.StatusOK, code)

	assert.True(t, answer.Check.IsCorrect)
	assert.Equal(t, "perfect", answer.Check.Band)
	assert.Equal(t, "easy", answer.Review.Rating, "fast perfect answer rates easy")
	assert.Equal(t, 1, answer.Review.Record.Repetition)
	assert.Equal(t, 1, answer.Review.Record.TotalReviews)

	var stats struct {
		Record struct {
			TotalReviews int `json:"totalReviews"`
		} `json:"record"`
		RecentReviews []struct {
			Rating string `json:"rating"`
		} `json:"recentReviews"`
	}
	require.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/v1/words/"+vocabID.String()+"/stats", userID, nil, &stats))
	assert.Equal(t, 1, stats.Record.TotalReviews)
	require.Len(t, stats.RecentReviews, 1)
	assert.Equal(t, "easy", stats.RecentReviews[0].Rating)

	// Reviewed words are not due until tomorrow.
	var queue struct {
		Items []json.RawMessage `json:"items"`
	}
	require.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/v1/queue", userID, nil, &queue))
	assert.Empty(t, queue.Items)

	// Another learner sees nothing of it.
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/api/v1/words/"+vocabID.String()+"/stats", uuid.New(), nil, nil))
}

func TestServer_QueueReturnsDueWords(t *testing.T) {
	s := setupServer(t, 0)
	pool := testhelper.SetupTestDB(t)
	userID := uuid.New()

	now := time.Now().UTC()
	overdue, dueToday := uuid.New(), uuid.New()
	testhelper.SeedReviewRecordFor(t, pool, userID, overdue, now.Add(-72*time.Hour))
	testhelper.SeedReviewRecordFor(t, pool, userID, dueToday, now.Add(-time.Minute))
	testhelper.SeedReviewRecordFor(t, pool, userID, uuid.New(), now.Add(48*time.Hour))

	var queue struct {
		Items []struct {
			Record struct {
				VocabID string `json:"vocabId"`
			} `json:"record"`
		} `json:"items"`
	}
	require.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/v1/queue?limit=10", userID, nil, &queue))
	require.Len(t, queue.Items, 2)

	got := []string{queue.Items[0].Record.VocabID, queue.Items[1].Record.VocabID}
	assert.ElementsMatch(t, []string{overdue.String(), dueToday.String()}, got)
}

func TestServer_Errors(t *testing.T) {
	s := setupServer(t, 0)

	assert.Equal(t, http.StatusUnauthorized,
		s.do(http.MethodGet, "/api/v1/queue", uuid.Nil, nil, nil), "anonymous request")
	assert.Equal(t, http.StatusBadRequest,
		s.do(http.MethodPost, "/api/v1/reviews", uuid.New(), map[string]any{"vocabId": uuid.New(), "rating": "meh"}, nil))
	assert.Equal(t, http.StatusBadRequest,
		s.do(http.MethodGet, "/api/v1/queue?limit=100000", uuid.New(), nil, nil))
}

func TestServer_SubmitRateLimit(t *testing.T) {
	s := setupServer(t, 1)
	userID := uuid.New()
	body := map[string]any{"vocabId": uuid.New(), "rating": "good"}

	require.Equal(t, http.StatusOK, s.do(http.MethodPost, "/api/v1/reviews", userID, body, nil))
	assert.Equal(t, http.StatusTooManyRequests, s.do(http.MethodPost, "/api/v1/reviews", userID, body, nil))

	// Reads are not throttled, and other learners have their own bucket.
	assert.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/v1/queue", userID, nil, nil))
	assert.Equal(t, http.StatusOK, s.do(http.MethodPost, "/api/v1/reviews", uuid.New(), body, nil))
}
