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

package recommendation_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/se401/advisor/pkg/errors"
	"github.com/se401/advisor/pkg/recommendation"
)

// fakeGenerator records prompts and delegates to GenerateFn.
type fakeGenerator struct {
	mu         sync.Mutex
	prompts    []string
	GenerateFn func(ctx context.Context, prompt string) (string, error)
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()
	return f.GenerateFn(ctx, prompt)
}

func (f *fakeGenerator) calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.prompts...)
}

func post(t *testing.T, h *recommendation.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/get-recommendation", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	return got
}

func TestHandle_Success(t *testing.T) {
	gen := &fakeGenerator{GenerateFn: func(_ context.Context, prompt string) (string, error) {
		return "Consider the Strategy pattern for " + prompt, nil
	}}
	h := recommendation.NewHandler(gen)

	rec := post(t, h, `{"prompt":"pluggable pricing rules"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"recommendation":"Consider the Strategy pattern for pluggable pricing rules"}`, rec.Body.String())
	assert.Equal(t, []string{"pluggable pricing rules"}, gen.calls())
}

func TestHandle_PromptForwardedUnmodified(t *testing.T) {
	gen := &fakeGenerator{GenerateFn: func(context.Context, string) (string, error) { return "ok", nil }}
	h := recommendation.NewHandler(gen)

	prompt := "  Tell me a joke\n with \"quotes\" "
	body, err := json.Marshal(map[string]string{"prompt": prompt})
	require.NoError(t, err)

	rec := post(t, h, string(body))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{prompt}, gen.calls())
}

func TestHandle_SamePromptTwiceCallsProviderTwice(t *testing.T) {
	gen := &fakeGenerator{GenerateFn: func(context.Context, string) (string, error) { return "joke", nil }}
	h := recommendation.NewHandler(gen)

	for range 2 {
		rec := post(t, h, `{"prompt":"Tell me a joke"}`)
		require.Equal(t, http.StatusOK, rec.Code)
	}
	assert.Len(t, gen.calls(), 2)
}

func TestHandle_RequestContextPassedThrough(t *testing.T) {
	type ctxKey struct{}
	gen := &fakeGenerator{GenerateFn: func(ctx context.Context, _ string) (string, error) {
		if ctx.Value(ctxKey{}) != "marker" {
			return "", errors.New("request context not propagated")
		}
		return "ok", nil
	}}
	h := recommendation.NewHandler(gen)

	req := httptest.NewRequest(http.MethodPost, "/api/get-recommendation", strings.NewReader(`{"prompt":"x"}`))
	req = req.WithContext(context.WithValue(req.Context(), ctxKey{}, "marker"))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandle_Failures(t *testing.T) {
	tests := []struct {
		name           string
		locale         string
		err            error
		wantError      string
		wantDetails    string
		wantStatus     any
		wantMissingKey bool
	}{
		{
			name:           "missing key",
			err:            apperrors.New(apperrors.ErrCodeNotConfigured, "GEMINI_API_KEY is not configured"),
			wantError:      "The Google Gemini API key is not configured. Please contact the administrator.",
			wantDetails:    "GEMINI_API_KEY is not configured",
			wantStatus:     "unknown",
			wantMissingKey: true,
		},
		{
			name:           "missing key vietnamese",
			locale:         "vi",
			err:            apperrors.New(apperrors.ErrCodeNotConfigured, "GEMINI_API_KEY is not configured"),
			wantError:      "Chưa cấu hình API key cho Google Gemini AI. Vui lòng liên hệ quản trị viên.",
			wantDetails:    "GEMINI_API_KEY is not configured",
			wantStatus:     "unknown",
			wantMissingKey: true,
		},
		{
			name:        "quota substring in plain error",
			err:         errors.New("Resource has been exhausted (e.g. check quota)."),
			wantError:   "The Google AI API quota has been exceeded. Please try again later.",
			wantDetails: "Resource has been exhausted (e.g. check quota).",
			wantStatus:  "unknown",
		},
		{
			name: "rate limit code with provider status",
			err: apperrors.WrapWithContext(apperrors.ErrCodeRateLimitExceeded, "gemini request failed",
				errors.New("Too Many Requests"), map[string]any{apperrors.ContextKeyStatus: 429}),
			wantError:   "The Google AI API quota has been exceeded. Please try again later.",
			wantDetails: "Too Many Requests",
			wantStatus:  float64(429),
		},
		{
			name:        "generic",
			err:         errors.New("connection reset by peer"),
			wantError:   "Failed to generate a recommendation from the AI.",
			wantDetails: "connection reset by peer",
			wantStatus:  "unknown",
		},
		{
			name:        "generic vietnamese",
			locale:      "vi-VN",
			err:         errors.New("boom"),
			wantError:   "Lỗi khi tạo đề xuất từ AI.",
			wantDetails: "boom",
			wantStatus:  "unknown",
		},
		{
			name: "generic with provider status",
			err: apperrors.WrapWithContext(apperrors.ErrCodeUnavailable, "gemini request failed",
				errors.New("The model is overloaded."), map[string]any{apperrors.ContextKeyStatus: 503}),
			wantError:   "Failed to generate a recommendation from the AI.",
			wantDetails: "The model is overloaded.",
			wantStatus:  float64(503),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &fakeGenerator{GenerateFn: func(context.Context, string) (string, error) { return "", tt.err }}
			h := recommendation.NewHandler(gen, recommendation.WithLocale(tt.locale))

			rec := post(t, h, `{"prompt":"Tell me a joke"}`)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			got := decodeError(t, rec)
			assert.Equal(t, tt.wantError, got["error"])
			assert.Equal(t, tt.wantDetails, got["details"])
			assert.Equal(t, tt.wantStatus, got["status"])
			assert.Equal(t, tt.wantMissingKey, got["missingKey"])
		})
	}
}

func TestHandle_InvalidRequests(t *testing.T) {
	bodies := map[string]string{
		"empty body":      "",
		"not json":        "prompt=hello",
		"json array":      `["hello"]`,
		"missing prompt":  `{"question":"hello"}`,
		"null prompt":     `{"prompt":null}`,
		"numeric prompt":  `{"prompt":42}`,
		"object prompt":   `{"prompt":{"text":"hi"}}`,
		"blank prompt":    `{"prompt":"   "}`,
		"truncated input": `{"prompt":"hel`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			gen := &fakeGenerator{GenerateFn: func(context.Context, string) (string, error) { return "unused", nil }}
			h := recommendation.NewHandler(gen)

			rec := post(t, h, body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			got := decodeError(t, rec)
			assert.Contains(t, got["error"], "prompt")
			assert.NotEmpty(t, got["details"])
			assert.Equal(t, float64(http.StatusBadRequest), got["status"])
			assert.Equal(t, false, got["missingKey"])
			assert.Empty(t, gen.calls(), "provider must not be called")
		})
	}
}

func TestHandle_BodyTooLarge(t *testing.T) {
	gen := &fakeGenerator{GenerateFn: func(context.Context, string) (string, error) { return "unused", nil }}
	h := recommendation.NewHandler(gen, recommendation.WithMaxBodyBytes(32))

	rec := post(t, h, `{"prompt":"`+strings.Repeat("a", 64)+`"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "request body too large", decodeError(t, rec)["details"])
	assert.Empty(t, gen.calls())
}

func TestHandle_MethodNotAllowed(t *testing.T) {
	gen := &fakeGenerator{GenerateFn: func(context.Context, string) (string, error) { return "unused", nil }}
	h := recommendation.NewHandler(gen)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			req := httptest.NewRequest(method, "/api/get-recommendation", nil)
			rec := httptest.NewRecorder()
			h.Handle(rec, req)

			assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
			assert.Equal(t, http.MethodPost, rec.Header().Get("Allow"))
			assert.Equal(t, float64(http.StatusMethodNotAllowed), decodeError(t, rec)["status"])
		})
	}
	assert.Empty(t, gen.calls())
}

func TestGeneratorFunc(t *testing.T) {
	var g recommendation.Generator = recommendation.GeneratorFunc(func(_ context.Context, p string) (string, error) {
		return strings.ToUpper(p), nil
	})
	got, err := g.Generate(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "ABC", got)
}
