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
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	apperrors "github.com/se401/advisor/pkg/errors"
)

// DefaultMaxBodyBytes bounds the request body.
const DefaultMaxBodyBytes int64 = 1 << 20

// ParseRequest decodes and validates the prompt request body. The prompt
// must be a non-blank JSON string; it is returned unmodified.
func ParseRequest(r *http.Request, maxBytes int64) (*PromptRequest, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBodyBytes
	}
	body := io.LimitReader(r.Body, maxBytes+1)

	var raw struct {
		Prompt json.RawMessage `json:"prompt"`
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "failed to read request body", err)
	}
	if int64(len(data)) > maxBytes {
		return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"request body too large", map[string]any{"limit": maxBytes})
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest, "request body is empty")
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "request body is not a valid JSON object", err)
	}
	if len(raw.Prompt) == 0 || string(raw.Prompt) == "null" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest, "prompt is required")
	}

	var prompt string
	if err := json.Unmarshal(raw.Prompt, &prompt); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
				"prompt must be a string", map[string]any{"type": typeErr.Value})
		}
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "prompt must be a string", err)
	}
	if strings.TrimSpace(prompt) == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest, "prompt must not be blank")
	}

	return &PromptRequest{Prompt: prompt}, nil
}
