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
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveStale(t *testing.T) {
	t.Run("removes directory tree", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "node_modules", "backend")
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "lib"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "lib", "index.js"), []byte("x"), 0o600))

		var buf bytes.Buffer
		require.NoError(t, removeStale(&buf, dir))

		_, err := os.Stat(dir)
		assert.True(t, os.IsNotExist(err))
		assert.Contains(t, buf.String(), "Removed stale directory")
	})

	t.Run("missing is not an error", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, removeStale(&buf, filepath.Join(t.TempDir(), "absent")))
		assert.Contains(t, buf.String(), "nothing to do")
	})

	t.Run("file is rejected", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "backend")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))
		assert.Error(t, removeStale(&bytes.Buffer{}, file))
		assert.FileExists(t, file)
	})

	t.Run("refuses working directory", func(t *testing.T) {
		assert.Error(t, removeStale(&bytes.Buffer{}, "."))
		assert.Error(t, removeStale(&bytes.Buffer{}, "./"))
	})
}

func TestCleanCommand(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "stale")
	require.NoError(t, os.Mkdir(dir, 0o755))

	out, err := run(t, "clean", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, dir)
	assert.NoDirExists(t, dir)
}
