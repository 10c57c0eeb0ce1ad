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

package recommendation

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/se401/advisor/pkg/serializer"
)

// Handler serves the recommendation endpoint.
type Handler struct {
	generator    Generator
	messages     *Messages
	maxBodyBytes int64
}

// Option configures a Handler.
type Option func(*Handler)

// WithLocale selects the language of user-facing error messages.
func WithLocale(locale string) Option {
	return func(h *Handler) {
		h.messages = NewMessages(locale)
	}
}

// WithMaxBodyBytes bounds the accepted request body size.
func WithMaxBodyBytes(n int64) Option {
	return func(h *Handler) {
		if n > 0 {
			h.maxBodyBytes = n
		}
	}
}

// NewHandler returns a Handler forwarding prompts to g.
func NewHandler(g Generator, opts ...Option) *Handler {
	h := &Handler{
		generator:    g,
		messages:     NewMessages(""),
		maxBodyBytes: DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Handle answers POST requests carrying {"prompt": "..."} with
// {"recommendation": "..."}. Every call reaches the generator; nothing is cached.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		slog.Debug("method not allowed", "method", r.Method, "path", r.URL.Path)
		w.Header().Set("Allow", http.MethodPost)
		serializer.RespondJSON(w, http.StatusMethodNotAllowed, ErrorResponse{
			Error:   h.messages.Text(MsgMethodNotAllowed),
			Details: "method " + r.Method + " is not allowed",
			Status:  http.StatusMethodNotAllowed,
		})
		return
	}

	req, err := ParseRequest(r, h.maxBodyBytes)
	if err != nil {
		invalidRequestsTotal.Inc()
		slog.Warn("invalid recommendation request", "error", err)
		serializer.RespondJSON(w, http.StatusBadRequest, newInvalidRequestResponse(err, h.messages))
		return
	}

	slog.Debug("received prompt", "length", len(req.Prompt))

	start := time.Now()
	text, err := h.generator.Generate(r.Context(), req.Prompt)
	elapsed := time.Since(start)

	if err != nil {
		kind, body := newErrorResponse(err, h.messages)
		generationsTotal.WithLabelValues(kind).Inc()
		generationDuration.WithLabelValues(kind).Observe(elapsed.Seconds())

		slog.Error("failed to generate recommendation",
			"kind", kind,
			"status", body.Status,
			"duration", elapsed,
			"error", err,
		)
		serializer.RespondJSON(w, http.StatusInternalServerError, body)
		return
	}

	generationsTotal.WithLabelValues(outcomeSuccess).Inc()
	generationDuration.WithLabelValues(outcomeSuccess).Observe(elapsed.Seconds())
	slog.Debug("recommendation generated", "duration", elapsed, "length", len(text))

	serializer.RespondJSON(w, http.StatusOK, Response{Recommendation: text})
}
