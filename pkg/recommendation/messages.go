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
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys for user-facing error text.
const (
	MsgGeneric          = "recommendation.generic"
	MsgMissingKey       = "recommendation.missing_key"
	MsgQuota            = "recommendation.quota"
	MsgInvalidRequest   = "recommendation.invalid_request"
	MsgMethodNotAllowed = "recommendation.method_not_allowed"
)

var translations = map[language.Tag]map[string]string{
	language.English: {
		MsgGeneric:          "Failed to generate a recommendation from the AI.",
		MsgMissingKey:       "The Google Gemini API key is not configured. Please contact the administrator.",
		MsgQuota:            "The Google AI API quota has been exceeded. Please try again later.",
		MsgInvalidRequest:   "The request body must be a JSON object with a non-empty \"prompt\" string.",
		MsgMethodNotAllowed: "Only POST is supported on this endpoint.",
	},
	language.Vietnamese: {
		MsgGeneric:          "Lỗi khi tạo đề xuất từ AI.",
		MsgMissingKey:       "Chưa cấu hình API key cho Google Gemini AI. Vui lòng liên hệ quản trị viên.",
		MsgQuota:            "Đã vượt quá giới hạn quota của Google AI API. Vui lòng thử lại sau.",
		MsgInvalidRequest:   "Yêu cầu phải là đối tượng JSON có trường \"prompt\" là chuỗi không rỗng.",
		MsgMethodNotAllowed: "Endpoint này chỉ hỗ trợ phương thức POST.",
	},
}

var (
	messageCatalog = mustBuildCatalog()
	localeMatcher  = language.NewMatcher([]language.Tag{language.English, language.Vietnamese})
)

func mustBuildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, msgs := range translations {
		for key, msg := range msgs {
			if err := b.SetString(tag, key, msg); err != nil {
				panic("invalid message " + key + ": " + err.Error())
			}
		}
	}
	return b
}

// Messages renders user-facing text in one locale.
type Messages struct {
	printer *message.Printer
}

// NewMessages returns messages for the closest supported match of locale.
// Unknown or empty locales fall back to English.
func NewMessages(locale string) *Messages {
	tag := language.English
	if t, err := language.Parse(locale); err == nil {
		tag, _, _ = localeMatcher.Match(t)
	}
	return &Messages{printer: message.NewPrinter(tag, message.Catalog(messageCatalog))}
}

// Text returns the message for key.
func (m *Messages) Text(key string) string {
	return m.printer.Sprintf(key)
}
