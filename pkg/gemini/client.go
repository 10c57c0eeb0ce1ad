// Copyright (c) 2025, SE401 Design Pattern Advisor Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package gemini adapts the Google Gemini API (google.golang.org/genai) to
// the single-prompt, single-text-answer contract used by the advisor.
package gemini

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"google.golang.org/genai"
	"k8s.io/utils/ptr"

	"github.com/se401/advisor/pkg/config"
	apperrors "github.com/se401/advisor/pkg/errors"
)

// Client generates text for a prompt using one fixed model and fixed
// generation parameters. It is safe for concurrent use.
type Client struct {
	client     *genai.Client
	model      string
	genConfig  *genai.GenerateContentConfig
	httpClient *http.Client
	baseURL    string
}

// Option configures a [Client].
type Option func(*Client)

// WithBaseURL points the client at a different API endpoint.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// New creates a Client bound to cfg. It fails with ErrCodeNotConfigured when
// cfg carries no API key; the process environment is never consulted.
func New(ctx context.Context, cfg config.ProviderConfig, opts ...Option) (*Client, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, apperrors.New(apperrors.ErrCodeNotConfigured, "GEMINI_API_KEY is not configured")
	}

	c := &Client{
		model:      cfg.Model,
		genConfig:  generationConfig(cfg),
		httpClient: newHTTPClient(),
	}
	for _, o := range opts {
		o(c)
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  c.httpClient,
		HTTPOptions: genai.HTTPOptions{BaseURL: c.baseURL},
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to create gemini client", err)
	}
	c.client = gc

	slog.Debug("gemini client created", "provider", cfg)
	return c, nil
}

func generationConfig(cfg config.ProviderConfig) *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Temperature:     ptr.To(cfg.Temperature),
		TopK:            ptr.To(cfg.TopK),
		TopP:            ptr.To(cfg.TopP),
		MaxOutputTokens: cfg.MaxOutputTokens,
	}
}

// Model returns the model identifier used for every call.
func (c *Client) Model() string {
	return c.model
}

// Generate sends prompt as a single user turn and returns the concatenated
// text of the first candidate. Responses without text are errors.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), c.genConfig)
	if err != nil {
		return "", mapError(err)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"prompt was blocked: "+string(resp.PromptFeedback.BlockReason),
			map[string]any{"blockReason": string(resp.PromptFeedback.BlockReason)})
	}

	text := resp.Text()
	if text == "" {
		details := map[string]any{"candidates": len(resp.Candidates)}
		if len(resp.Candidates) > 0 && resp.Candidates[0] != nil {
			details["finishReason"] = string(resp.Candidates[0].FinishReason)
		}
		return "", apperrors.NewWithContext(apperrors.ErrCodeInternal, "provider returned no text", details)
	}
	return text, nil
}
