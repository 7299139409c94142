// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package api

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"google.golang.org/genai"

	"github.com/tomtom215/cinetrack/internal/config"
	"github.com/tomtom215/cinetrack/internal/gateway"
	"github.com/tomtom215/cinetrack/internal/logging"
	"github.com/tomtom215/cinetrack/internal/models"
	"github.com/tomtom215/cinetrack/internal/stats"
	"github.com/tomtom215/cinetrack/internal/store"
	ws "github.com/tomtom215/cinetrack/internal/websocket"
)

//nolint:gochecknoinits // quiet logs for every test in the package
func init() {
	logging.Init(logging.Config{Level: "error", Output: io.Discard})
}

// stubGenerator answers every prompt with fixed text.
type stubGenerator struct {
	json string
	text string
	err  error
}

func (s stubGenerator) GenerateJSON(context.Context, string, *genai.Schema) (string, error) {
	return s.json, s.err
}

func (s stubGenerator) GenerateText(context.Context, string) (string, error) {
	return s.text, s.err
}

// pingFailStore reports itself unusable.
type pingFailStore struct {
	*store.MemoryStore
}

func (pingFailStore) Ping(context.Context) error { return errors.New("disk gone") }

type testEnv struct {
	store   store.Store
	handler *Handler
	router  http.Handler
	hub     *ws.Hub
}

type envOption func(*testEnv, *config.Config)

func withGenerator(gen gateway.Generator) envOption {
	return func(e *testEnv, cfg *config.Config) {
		e.handler.gateway.Close()
		e.handler.gateway = gateway.New(cfg.Gemini, gen)
	}
}

func withStore(s store.Store) envOption {
	return func(e *testEnv, _ *config.Config) {
		e.store = s
		e.handler.store = s
	}
}

func withHub(hub *ws.Hub) envOption {
	return func(e *testEnv, _ *config.Config) {
		e.hub = hub
		e.handler.wsHub = hub
	}
}

func withRateLimit(n int) envOption {
	return func(_ *testEnv, cfg *config.Config) {
		cfg.Security.RateLimitDisabled = false
		cfg.Security.RateLimitReqs = n
		cfg.Security.RateLimitWindow = time.Minute
	}
}

func testAppConfig() *config.Config {
	return &config.Config{
		Stats: config.StatsConfig{ReportLimit: 3, ReportMode: "full", SummaryLimit: 5, SummaryMode: "primary"},
		Gemini: config.GeminiConfig{
			Timeout:             time.Second,
			TrendingCacheTTL:    time.Hour,
			DetailsCacheTTL:     time.Hour,
			BreakerMinRequests:  100,
			BreakerFailureRatio: 0.9,
			BreakerOpenTimeout:  time.Minute,
		},
		Security: config.SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitDisabled: true,
		},
	}
}

func newTestEnv(t *testing.T, initial []models.MovieEntry, opts ...envOption) *testEnv {
	t.Helper()
	cfg := testAppConfig()
	s := store.NewMemoryStore(initial...)
	gw := gateway.New(cfg.Gemini, nil)
	env := &testEnv{
		store:   s,
		handler: NewHandler(s, stats.NewEngine(stats.DefaultOptions()), gw, nil, cfg),
	}
	for _, opt := range opts {
		opt(env, cfg)
	}
	t.Cleanup(env.handler.gateway.Close)
	env.router = NewRouter(env.handler, NewChiMiddleware(NewChiMiddlewareConfig(cfg.Security))).SetupChi()
	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder, data interface{}) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v\nbody: %s", err, rec.Body.String())
	}
	if data != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, data); err != nil {
			t.Fatalf("decode data: %v\nbody: %s", err, env.Data)
		}
	}
	return env
}

func expectStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status = %d, want %d\nbody: %s", rec.Code, want, rec.Body.String())
	}
}

func demoLog() []models.MovieEntry {
	return []models.MovieEntry{
		{ID: "1", Title: "星际穿越", Director: "克里斯托弗·诺兰", Genre: "科幻,剧情", WatchedDate: "2023-03-01", Rating: 5},
		{ID: "2", Title: "沙丘", Director: "丹尼斯·维伦纽瓦", Genre: "科幻", WatchedDate: "2023-07-12", Rating: 4},
		{ID: "3", Title: "热辣滚烫", Director: "贾玲", Genre: "喜剧", WatchedDate: "2024-01-05", Rating: 3},
	}
}

func TestHealthLive(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil)
	rec := env.do(t, http.MethodGet, "/api/v1/health/live", nil)
	expectStatus(t, rec, http.StatusOK)

	var data map[string]interface{}
	decodeEnvelope(t, rec, &data)
	if data["alive"] != true {
		t.Errorf("alive = %v", data["alive"])
	}
	if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("missing security headers")
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("missing request id header")
	}
}

func TestHealthReady(t *testing.T) {
	t.Parallel()

	t.Run("ready", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t, nil)
		rec := env.do(t, http.MethodGet, "/api/v1/health/ready", nil)
		expectStatus(t, rec, http.StatusOK)

		var data map[string]interface{}
		decodeEnvelope(t, rec, &data)
		if data["ai_enabled"] != false || data["ai_circuit"] != "closed" {
			t.Errorf("unexpected gateway status %v", data)
		}
	})

	t.Run("cache counters", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t, nil)
		expectStatus(t, env.do(t, http.MethodGet, "/api/v1/recommend/trending", nil), http.StatusOK)
		expectStatus(t, env.do(t, http.MethodGet, "/api/v1/recommend/trending", nil), http.StatusOK)
		rec := env.do(t, http.MethodGet, "/api/v1/health/ready", nil)
		expectStatus(t, rec, http.StatusOK)

		var data struct {
			AICache map[string]gateway.CacheReport `json:"ai_cache"`
		}
		decodeEnvelope(t, rec, &data)
		tests := []struct {
			cache      string
			wantMisses int64
		}{
			{"trending", 2},
			{"details", 0},
		}
		for _, tt := range tests {
			got, ok := data.AICache[tt.cache]
			if !ok {
				t.Errorf("ai_cache missing %q: %+v", tt.cache, data.AICache)
				continue
			}
			if got.Misses != tt.wantMisses || got.Hits != 0 || got.HitRate != 0 {
				t.Errorf("%s cache = %+v, want %d misses and no hits", tt.cache, got, tt.wantMisses)
			}
			if got.LastCleanup.IsZero() {
				t.Errorf("%s cache has no last cleanup time", tt.cache)
			}
		}
	})

	t.Run("store down", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(t, nil, withStore(pingFailStore{store.NewMemoryStore()}))
		rec := env.do(t, http.MethodGet, "/api/v1/health/ready", nil)
		expectStatus(t, rec, http.StatusServiceUnavailable)
		if got := decodeEnvelope(t, rec, nil).Status; got != "not_ready" {
			t.Errorf("status = %q, want not_ready", got)
		}
	})
}

func TestUnknownRoute(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil)
	rec := env.do(t, http.MethodGet, "/api/v1/nope", nil)
	expectStatus(t, rec, http.StatusNotFound)
	if e := decodeEnvelope(t, rec, nil).Error; e == nil || e.Code != ErrCodeNotFound {
		t.Errorf("error = %+v", e)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil)
	env.do(t, http.MethodGet, "/api/v1/entries", nil)
	rec := env.do(t, http.MethodGet, "/metrics", nil)
	expectStatus(t, rec, http.StatusOK)
	if !bytes.Contains(rec.Body.Bytes(), []byte("cinetrack_api_requests_total")) {
		t.Error("metrics output missing API request counter")
	}
}

func TestRateLimit(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t, nil, withRateLimit(2))
	for i := 0; i < 2; i++ {
		expectStatus(t, env.do(t, http.MethodGet, "/api/v1/entries", nil), http.StatusOK)
	}
	rec := env.do(t, http.MethodGet, "/api/v1/entries", nil)
	expectStatus(t, rec, http.StatusTooManyRequests)

	// Probes stay reachable.
	expectStatus(t, env.do(t, http.MethodGet, "/api/v1/health/live", nil), http.StatusOK)
}

func TestSanitizeLogValue(t *testing.T) {
	t.Parallel()

	if got := sanitizeLogValue("a\nb\tc"); got != `a\x0ab\x09c` {
		t.Errorf("sanitizeLogValue = %q", got)
	}
	if got := sanitizeLogValue("沙丘"); got != "沙丘" {
		t.Errorf("sanitizeLogValue altered printable text: %q", got)
	}
}
