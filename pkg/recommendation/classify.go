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
	"net/http"
	"strings"

	apperrors "github.com/se401/advisor/pkg/errors"
)

// Failure kinds, also used as metric label values.
const (
	KindMissingKey     = "missing_key"
	KindQuota          = "quota"
	KindGeneric        = "generic"
	KindInvalidRequest = "invalid_request"
)

const quotaMarker = "quota"

// Classify maps a generation error to its failure kind. The checks are
// best-effort; anything unrecognized is KindGeneric.
func Classify(err error) string {
	switch {
	case apperrors.HasCode(err, apperrors.ErrCodeNotConfigured):
		return KindMissingKey
	case apperrors.HasCode(err, apperrors.ErrCodeRateLimitExceeded),
		strings.Contains(details(err), quotaMarker):
		return KindQuota
	default:
		return KindGeneric
	}
}

// newErrorResponse builds the failure body for a generation error.
func newErrorResponse(err error, msgs *Messages) (string, ErrorResponse) {
	kind := Classify(err)

	key := MsgGeneric
	switch kind {
	case KindMissingKey:
		key = MsgMissingKey
	case KindQuota:
		key = MsgQuota
	}

	return kind, ErrorResponse{
		Error:      msgs.Text(key),
		Details:    details(err),
		Status:     providerStatus(err),
		MissingKey: kind == KindMissingKey,
	}
}

func newInvalidRequestResponse(err error, msgs *Messages) ErrorResponse {
	return ErrorResponse{
		Error:   msgs.Text(MsgInvalidRequest),
		Details: details(err),
		Status:  http.StatusBadRequest,
	}
}

// details is the innermost error message, which for provider failures is
// the provider's own text.
func details(err error) string {
	if root := apperrors.RootCause(err); root != nil {
		if se, ok := root.(*apperrors.StructuredError); ok {
			return se.Message
		}
		return root.Error()
	}
	return ""
}

func providerStatus(err error) any {
	if v, ok := apperrors.ContextValue(err, apperrors.ContextKeyStatus); ok {
		if status, ok := v.(int); ok && status > 0 {
			return status
		}
	}
	return StatusUnknown
}
