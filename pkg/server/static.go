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

package server

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	apperrors "github.com/se401/advisor/pkg/errors"
)

const (
	apiPathPrefix = "/api/"
	indexFile     = "index.html"
)

// newSPAHandler serves a built single-page frontend from dir. Existing files
// are served as-is; any other GET outside /api/ receives index.html so the
// client-side router can resolve it.
func newSPAHandler(dir string) http.HandlerFunc {
	files := http.FileServer(http.Dir(dir))

	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, apiPathPrefix) {
			WriteError(w, r, http.StatusNotFound, apperrors.ErrCodeNotFound,
				"Route not found", false, map[string]any{"path": r.URL.Path})
			return
		}
		if !allowGet(w, r) {
			return
		}

		clean := path.Clean("/" + r.URL.Path)
		if clean != "/" {
			info, err := os.Stat(filepath.Join(dir, filepath.FromSlash(clean)))
			if err == nil && !info.IsDir() {
				files.ServeHTTP(w, r)
				return
			}
		}

		index := filepath.Join(dir, indexFile)
		if _, err := os.Stat(index); err != nil {
			WriteErrorFromErr(w, r,
				apperrors.WrapWithContext(apperrors.ErrCodeNotFound, "Frontend bundle not found", err,
					map[string]any{"dir": dir}),
				"Frontend bundle not available", nil)
			return
		}
		http.ServeFile(w, r, index)
	}
}
