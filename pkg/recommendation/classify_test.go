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
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/se401/advisor/pkg/errors"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not configured", apperrors.New(apperrors.ErrCodeNotConfigured, "no key"), KindMissingKey},
		{
			"not configured wins over quota text",
			apperrors.New(apperrors.ErrCodeNotConfigured, "quota unknown without key"),
			KindMissingKey,
		},
		{"rate limit code", apperrors.New(apperrors.ErrCodeRateLimitExceeded, "slow down"), KindQuota},
		{"quota substring", fmt.Errorf("gemini: %w", errors.New("exceeded your current quota")), KindQuota},
		{"quota is case sensitive", errors.New("QUOTA"), KindGeneric},
		{"wrapped generic", apperrors.Wrap(apperrors.ErrCodeUnavailable, "failed", errors.New("eof")), KindGeneric},
		{"plain", errors.New("boom"), KindGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestDetails(t *testing.T) {
	root := errors.New("provider said no")
	assert.Equal(t, "provider said no", details(apperrors.Wrap(apperrors.ErrCodeInternal, "outer", root)))
	assert.Equal(t, "bare", details(apperrors.New(apperrors.ErrCodeInternal, "bare")))
	assert.Empty(t, details(nil))
}

func TestProviderStatus(t *testing.T) {
	withStatus := apperrors.NewWithContext(apperrors.ErrCodeInternal, "x", map[string]any{apperrors.ContextKeyStatus: 500})
	assert.Equal(t, 500, providerStatus(withStatus))

	zero := apperrors.NewWithContext(apperrors.ErrCodeInternal, "x", map[string]any{apperrors.ContextKeyStatus: 0})
	assert.Equal(t, StatusUnknown, providerStatus(zero))

	wrongType := apperrors.NewWithContext(apperrors.ErrCodeInternal, "x", map[string]any{apperrors.ContextKeyStatus: "429"})
	assert.Equal(t, StatusUnknown, providerStatus(wrongType))

	assert.Equal(t, StatusUnknown, providerStatus(errors.New("plain")))
}
