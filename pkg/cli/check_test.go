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

package cli

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/se401/advisor/pkg/config"
	"github.com/se401/advisor/pkg/defaults"
	"github.com/se401/advisor/pkg/header"
)

func fakeProvider(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func isolate(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv(config.EnvConfigFile, "")
	t.Setenv(config.EnvModel, "")
	t.Setenv(config.EnvMode, "")
	t.Setenv(config.EnvLocale, "")
}

func TestCheckCommand(t *testing.T) {
	isolate(t)
	t.Setenv(config.EnvAPIKey, "test-key")

	var gotPrompt string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if len(req.Contents) > 0 && len(req.Contents[0].Parts) > 0 {
			gotPrompt = req.Contents[0].Parts[0].Text
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":"A joke."}]},"finishReason":"STOP"}]}`)
	}))
	defer srv.Close()

	out, err := run(t, "check", "--endpoint", srv.URL+"/", "--format", "json")
	require.NoError(t, err)

	var result CheckResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, header.KindCheckResult, result.Kind)
	assert.Equal(t, header.APIVersion, result.APIVersion)
	assert.Equal(t, defaults.ProviderModel, result.Model)
	assert.Equal(t, "test...", result.APIKey)
	assert.Equal(t, defaults.CheckPrompt, result.Prompt)
	assert.Equal(t, "A joke.", result.Text)
	assert.NotEmpty(t, result.Elapsed)
	assert.Equal(t, defaults.CheckPrompt, gotPrompt)
}

func TestCheckCommand_OutputFile(t *testing.T) {
	isolate(t)
	t.Setenv(config.EnvAPIKey, "test-key")
	srv := fakeProvider(t, http.StatusOK,
		`{"candidates":[{"content":{"role":"model","parts":[{"text":"ok"}]}}]}`)

	path := filepath.Join(t.TempDir(), "check.yaml")
	out, err := run(t, "check", "--endpoint", srv.URL+"/", "--format", "yaml", "--output", path, "--prompt", "ping")
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "kind: CheckResult")
	assert.Contains(t, string(data), "prompt: ping")
	assert.Contains(t, string(data), "text: ok")
}

func TestCheckCommand_Failures(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		isolate(t)
		t.Setenv(config.EnvAPIKey, "")

		_, err := run(t, "check")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "GEMINI_API_KEY is not configured")
	})

	t.Run("rejected key", func(t *testing.T) {
		isolate(t)
		t.Setenv(config.EnvAPIKey, "bad-key")
		srv := fakeProvider(t, http.StatusBadRequest,
			`{"error":{"code":400,"message":"API key not valid. Please pass a valid API key.","status":"INVALID_ARGUMENT"}}`)

		_, err := run(t, "check", "--endpoint", srv.URL+"/")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 400")
	})

	t.Run("unknown format", func(t *testing.T) {
		isolate(t)
		_, err := run(t, "check", "--format", "xml")
		assert.Error(t, err)
	})
}
