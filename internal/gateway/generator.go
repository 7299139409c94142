// CineTrack - Personal Watch Log and Viewing Statistics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinetrack

package gateway

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

var (
	// ErrNoCredential means no API key is configured.
	ErrNoCredential = errors.New("AI provider credential not configured")
	// ErrEmptyResponse means the provider answered with no text.
	ErrEmptyResponse = errors.New("AI provider returned an empty response")
)

// Generator produces text from a prompt.
type Generator interface {
	// GenerateJSON asks for a JSON document matching schema.
	GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error)
	// GenerateText asks for free-form text.
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// GeminiGenerator calls the Gemini API through google.golang.org/genai.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator builds a client for apiKey. An empty key yields
// ErrNoCredential.
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, ErrNoCredential
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiGenerator{client: client, model: model}, nil
}

// GenerateJSON implements Generator.
func (g *GeminiGenerator) GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	return g.generate(ctx, prompt, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	})
}

// GenerateText implements Generator.
func (g *GeminiGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	return g.generate(ctx, prompt, nil)
}

func (g *GeminiGenerator) generate(ctx context.Context, prompt string, cfg *genai.GenerateContentConfig) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}
	return resp.Text(), nil
}

// disabledGenerator stands in when no credential is configured.
type disabledGenerator struct{}

func (disabledGenerator) GenerateJSON(context.Context, string, *genai.Schema) (string, error) {
	return "", ErrNoCredential
}

func (disabledGenerator) GenerateText(context.Context, string) (string, error) {
	return "", ErrNoCredential
}
