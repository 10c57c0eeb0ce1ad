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

package gemini

import (
	"context"
	"errors"
	"net/http"

	"google.golang.org/genai"

	apperrors "github.com/se401/advisor/pkg/errors"
)

const statusResourceExhausted = "RESOURCE_EXHAUSTED"

// mapError converts a genai failure into a StructuredError. The genai
// error stays the cause so its message survives as the error details.
func mapError(err error) error {
	if apiErr, ok := asAPIError(err); ok {
		code := codeFromHTTPStatus(apiErr.Code)
		if apiErr.Status == statusResourceExhausted {
			code = apperrors.ErrCodeRateLimitExceeded
		}
		return apperrors.WrapWithContext(code, "gemini request failed", err, map[string]any{
			apperrors.ContextKeyStatus: apiErr.Code,
			"providerStatus":           apiErr.Status,
		})
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return apperrors.Wrap(apperrors.ErrCodeTimeout, "gemini request timed out", err)
	case errors.Is(err, context.Canceled):
		return apperrors.Wrap(apperrors.ErrCodeUnavailable, "gemini request canceled", err)
	default:
		return apperrors.Wrap(apperrors.ErrCodeUnavailable, "gemini request failed", err)
	}
}

// asAPIError handles both the value form genai returns and a pointer form.
func asAPIError(err error) (genai.APIError, bool) {
	var v genai.APIError
	if errors.As(err, &v) {
		return v, true
	}
	var p *genai.APIError
	if errors.As(err, &p) && p != nil {
		return *p, true
	}
	return genai.APIError{}, false
}

func codeFromHTTPStatus(status int) apperrors.ErrorCode {
	switch status {
	case http.StatusBadRequest:
		return apperrors.ErrCodeInvalidRequest
	case http.StatusUnauthorized, http.StatusForbidden:
		return apperrors.ErrCodeUnauthorized
	case http.StatusNotFound:
		return apperrors.ErrCodeNotFound
	case http.StatusTooManyRequests:
		return apperrors.ErrCodeRateLimitExceeded
	case http.StatusRequestTimeout, http.StatusGatewayTimeout:
		return apperrors.ErrCodeTimeout
	case http.StatusBadGateway, http.StatusServiceUnavailable:
		return apperrors.ErrCodeUnavailable
	default:
		return apperrors.ErrCodeInternal
	}
}

// StatusOf returns the provider HTTP status carried by err, if any.
func StatusOf(err error) (int, bool) {
	v, ok := apperrors.ContextValue(err, apperrors.ContextKeyStatus)
	if !ok {
		return 0, false
	}
	status, ok := v.(int)
	return status, ok
}
