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
	"log/slog"
	"net/http"

	"github.com/se401/advisor/pkg/cors"
	apperrors "github.com/se401/advisor/pkg/errors"
)

// corsMiddleware enforces the origin gate. Rejected origins get a 403
// without Access-Control-Allow-Origin, so browsers cannot read the body.
// Preflight requests from allowed origins are answered here.
func (s *Server) corsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	if s.originGate == nil {
		return next
	}
	return func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get(cors.HeaderOrigin)
		if !s.originGate.Allow(origin) {
			corsRejects.Inc()
			slog.Warn("blocked by CORS",
				"origin", origin,
				"method", r.Method,
				"path", r.URL.Path,
				"requestID", r.Context().Value(contextKeyRequestID),
			)
			WriteError(w, r, http.StatusForbidden, apperrors.ErrCodeForbidden,
				"Origin not allowed by CORS", false, map[string]any{"origin": origin})
			return
		}

		s.originGate.SetHeaders(w.Header(), origin)

		if cors.IsPreflight(r) {
			s.originGate.SetPreflightHeaders(w.Header(), r)
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	}
}
