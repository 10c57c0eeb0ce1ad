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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMessages(t *testing.T) {
	tests := []struct {
		locale string
		want   string
	}{
		{"", "Failed to generate a recommendation from the AI."},
		{"en", "Failed to generate a recommendation from the AI."},
		{"en-GB", "Failed to generate a recommendation from the AI."},
		{"vi", "Lỗi khi tạo đề xuất từ AI."},
		{"vi-VN", "Lỗi khi tạo đề xuất từ AI."},
		{"fr", "Failed to generate a recommendation from the AI."},
		{"not a locale!", "Failed to generate a recommendation from the AI."},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			assert.Equal(t, tt.want, NewMessages(tt.locale).Text(MsgGeneric))
		})
	}
}

func TestTranslationsComplete(t *testing.T) {
	keys := []string{MsgGeneric, MsgMissingKey, MsgQuota, MsgInvalidRequest, MsgMethodNotAllowed}
	for tag, msgs := range translations {
		for _, k := range keys {
			assert.NotEmpty(t, msgs[k], "%s missing %s", tag, k)
		}
		assert.Len(t, msgs, len(keys), "%s has unexpected keys", tag)
	}
}

func TestQuotaMessageMentionsRetry(t *testing.T) {
	assert.Contains(t, NewMessages("en").Text(MsgQuota), "try again later")
	assert.Contains(t, NewMessages("vi").Text(MsgQuota), "thử lại sau")
}
