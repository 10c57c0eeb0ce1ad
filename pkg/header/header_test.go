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

package header

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	h := New(KindCheckResult, "v1.2.3", WithMetadata("model", "gemini-1.5-flash"))

	assert.Equal(t, KindCheckResult, h.Kind)
	assert.Equal(t, APIVersion, h.APIVersion)
	assert.Equal(t, "v1.2.3", h.Metadata["version"])
	assert.Equal(t, "gemini-1.5-flash", h.Metadata["model"])

	ts, err := time.Parse(time.RFC3339, h.Metadata["timestamp"])
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), ts, time.Minute)
}

func TestNew_SkipsEmptyMetadata(t *testing.T) {
	h := New(KindCheckResult, "", WithMetadata("model", ""))
	assert.NotContains(t, h.Metadata, "version")
	assert.NotContains(t, h.Metadata, "model")
}

func TestKind(t *testing.T) {
	assert.True(t, KindCheckResult.IsValid())
	assert.False(t, Kind("Report").IsValid())
	assert.Equal(t, "CheckResult", KindCheckResult.String())
}
