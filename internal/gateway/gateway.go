// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

// Package gateway turns the AI provider into a source of optional
// enrichment: movie details, a personalized pick, trending lists and a
// yearly recap. Every operation returns a usable value. Provider failures,
// timeouts, an open circuit or a missing credential all degrade to a fixed
// or locally computed fallback that is flagged in the Result.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"google.golang.org/genai"

	"github.com/tomtom215/cinetrack/internal/cache"
	"github.com/tomtom215/cinetrack/internal/config"
	"github.com/tomtom215/cinetrack/internal/logging"
	"github.com/tomtom215/cinetrack/internal/metrics"
	"github.com/tomtom215/cinetrack/internal/models"
	"github.com/tomtom215/cinetrack/internal/stats"
)

const (
	opDetails  = "details"
	opPick     = "pick"
	opTrending = "trending"
	opRecap    = "recap"

	trendingCacheKey = "trending"
	cacheJanitor     = 10 * time.Minute
)

// Gateway answers recommendation requests. It is safe for concurrent use.
//
// Each operation walks the same ladder and stops at the first rung that
// yields a value:
//
//  1. The response cache (trending lists and title details only)
//  2. The provider, behind the circuit breaker and the per-call timeout
//  3. A fallback: a canned value or one computed from the watch log
//
// The Result says which rung answered and, for a fallback, why the provider
// was skipped. Only live answers are cached, so a fallback never hides a
// recovered provider for a whole TTL.
//
// The breaker counts provider errors and the gateway's own timeouts. A caller
// that cancels or hits its own deadline is left out, so a burst of abandoned
// HTTP requests cannot open the circuit.
//
// Example usage:
//
//	gw, err := gateway.NewFromConfig(ctx, cfg.Gemini)
//	if err != nil {
//		gw = gateway.New(cfg.Gemini, nil) // fallbacks only
//	}
//	defer gw.Close()
//
//	res := gw.PersonalizedPick(ctx, entries)
//	if res.IsFallback() {
//		logging.Warn().Err(res.Err).Msg("Serving canned pick")
//	}
type Gateway struct {
	gen      Generator
	enabled  bool
	timeout  time.Duration
	breaker  *breaker
	trending *cache.TTL[models.TrendingContent]
	details  *cache.TTL[*models.MovieDetails]
}

// New builds a gateway. A nil gen means no credential is configured and every
// operation answers with its fallback.
func New(cfg config.GeminiConfig, gen Generator) *Gateway {
	g := &Gateway{
		gen:     gen,
		enabled: gen != nil,
		timeout: cfg.Timeout,
		breaker: newBreaker("ai_provider", BreakerSettings{
			MinRequests:  cfg.BreakerMinRequests,
			FailureRatio: cfg.BreakerFailureRatio,
			OpenTimeout:  cfg.BreakerOpenTimeout,
		}),
		trending: cache.New[models.TrendingContent]("trending", cfg.TrendingCacheTTL, cacheJanitor),
		details:  cache.New[*models.MovieDetails]("details", cfg.DetailsCacheTTL, cacheJanitor),
	}
	if gen == nil {
		g.gen = disabledGenerator{}
	}
	return g
}

// NewFromConfig creates a Gemini-backed gateway, or a disabled one when no
// API key is set.
func NewFromConfig(ctx context.Context, cfg config.GeminiConfig) (*Gateway, error) {
	if !cfg.Enabled() {
		logging.Warn().Msg("No AI provider API key configured; recommendations will use fallbacks")
		return New(cfg, nil), nil
	}
	gen, err := NewGeminiGenerator(ctx, cfg.APIKey, cfg.Model)
	if err != nil {
		return nil, err
	}
	return New(cfg, gen), nil
}

// Enabled reports whether a provider credential is configured.
func (g *Gateway) Enabled() bool {
	return g.enabled
}

// BreakerState is "closed", "half-open" or "open".
func (g *Gateway) BreakerState() string {
	return g.breaker.state()
}

// CacheReport summarizes one response cache for health reporting.
type CacheReport struct {
	Keys        int64     `json:"keys"`
	Hits        int64     `json:"hits"`
	Misses      int64     `json:"misses"`
	Evictions   int64     `json:"evictions"`
	HitRate     float64   `json:"hit_rate"`
	LastCleanup time.Time `json:"last_cleanup"`
}

// CacheStats reports the trending and details caches.
func (g *Gateway) CacheStats() map[string]CacheReport {
	return map[string]CacheReport{
		"trending": newCacheReport(g.trending.Stats(), g.trending.HitRate()),
		"details":  newCacheReport(g.details.Stats(), g.details.HitRate()),
	}
}

func newCacheReport(s cache.Stats, hitRate float64) CacheReport {
	return CacheReport{
		Keys:        s.TotalKeys,
		Hits:        s.Hits,
		Misses:      s.Misses,
		Evictions:   s.Evictions,
		HitRate:     hitRate,
		LastCleanup: s.LastCleanup,
	}
}

// Close stops the cache janitors.
func (g *Gateway) Close() {
	g.trending.Close()
	g.details.Close()
}

// call runs one provider request behind the breaker and the per-call timeout.
// A credential error never reaches the breaker so that a keyless deployment
// does not open the circuit. Neither does a caller that cancels or times out:
// a done context is returned before the breaker, and a provider error seen
// after the caller's context ended is excluded from the breaker counts. Only
// the gateway's own per-call timeout counts as a provider failure.
func (g *Gateway) call(ctx context.Context, fn func(context.Context) (string, error)) (string, error) {
	if !g.enabled {
		return "", ErrNoCredential
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	callCtx := ctx
	if g.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}
	return g.breaker.execute(func() (string, error) {
		out, err := fn(callCtx)
		if err != nil && ctx.Err() != nil {
			return "", fmt.Errorf("%w: %w", errCallerGone, err)
		}
		return out, err
	})
}

func (g *Gateway) callJSON(ctx context.Context, prompt string, schema *genai.Schema, out interface{}) error {
	text, err := g.call(ctx, func(ctx context.Context) (string, error) {
		return g.gen.GenerateJSON(ctx, prompt, schema)
	})
	if err != nil {
		return err
	}
	text = stripCodeFence(text)
	if text == "" {
		return ErrEmptyResponse
	}
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return fmt.Errorf("decode provider response: %w", err)
	}
	return nil
}

func record[T any](ctx context.Context, op string, start time.Time, r Result[T]) Result[T] {
	metrics.RecordGatewayCall(op, string(r.Source), time.Since(start))
	if r.IsFallback() && !errors.Is(r.Err, ErrNoCredential) {
		logging.Ctx(ctx).Warn().Err(r.Err).Str("operation", op).Msg("AI provider call failed, serving fallback")
	}
	return r
}

// DetailsFor looks up a title. On failure Value is nil.
func (g *Gateway) DetailsFor(ctx context.Context, title, director string) Result[*models.MovieDetails] {
	start := time.Now()
	title, director = strings.TrimSpace(title), strings.TrimSpace(director)
	if title == "" {
		return record(ctx, opDetails, start, fallback[*models.MovieDetails](nil, errors.New("title is required")))
	}

	key := cache.GenerateKey(opDetails, []string{title, director})
	if d, ok := g.details.Get(key); ok {
		return record(ctx, opDetails, start, cached(d))
	}

	var d models.MovieDetails
	if err := g.callJSON(ctx, detailsPrompt(title, director), detailsSchema, &d); err != nil {
		return record(ctx, opDetails, start, fallback[*models.MovieDetails](nil, err))
	}
	g.details.Set(key, &d)
	return record(ctx, opDetails, start, live(&d))
}

// PersonalizedPick recommends one title the user has probably not seen,
// seeded by their highest-rated entries.
func (g *Gateway) PersonalizedPick(ctx context.Context, history []models.MovieEntry) Result[models.FeaturedRecommendation] {
	start := time.Now()
	var rec models.FeaturedRecommendation
	if err := g.callJSON(ctx, pickPrompt(history), pickSchema, &rec); err != nil {
		return record(ctx, opPick, start, fallback(FallbackPick(), err))
	}
	if strings.TrimSpace(rec.Title) == "" {
		return record(ctx, opPick, start, fallback(FallbackPick(), ErrEmptyResponse))
	}
	return record(ctx, opPick, start, live(rec))
}

// Trending returns the latest and upcoming lists, at most ten items each.
func (g *Gateway) Trending(ctx context.Context) Result[models.TrendingContent] {
	start := time.Now()
	if tc, ok := g.trending.Get(trendingCacheKey); ok {
		return record(ctx, opTrending, start, cached(tc))
	}

	var tc models.TrendingContent
	if err := g.callJSON(ctx, trendingPrompt, trendingSchema, &tc); err != nil {
		return record(ctx, opTrending, start, fallback(FallbackTrending(), err))
	}
	tc.Latest = capItems(tc.Latest)
	tc.Upcoming = capItems(tc.Upcoming)
	g.trending.Set(trendingCacheKey, tc)
	return record(ctx, opTrending, start, live(tc))
}

func capItems(items []models.TrendingItem) []models.TrendingItem {
	if items == nil {
		return []models.TrendingItem{}
	}
	if len(items) > trendingListMax {
		return items[:trendingListMax]
	}
	return items
}

// YearlyRecap writes a short summary of the entries watched in year. entries
// may span several years; only those in year are considered.
func (g *Gateway) YearlyRecap(ctx context.Context, entries []models.MovieEntry, year int) Result[string] {
	start := time.Now()
	inYear := stats.FilterYear(entries, year)
	if len(inYear) == 0 {
		return record(ctx, opRecap, start, live(recapNoEntries(year)))
	}

	prompt := recapPrompt(inYear, year)
	text, err := g.call(ctx, func(ctx context.Context) (string, error) {
		return g.gen.GenerateText(ctx, prompt)
	})
	if err != nil {
		return record(ctx, opRecap, start, fallback(recapFallback(year, len(inYear)), err))
	}
	if text = strings.TrimSpace(text); text == "" {
		return record(ctx, opRecap, start, live(recapEmptyResponse))
	}
	return record(ctx, opRecap, start, live(text))
}
