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

// Package api wires configuration, the Gemini client and the recommendation
// handler into pkg/server.
//
// # Endpoints
//
//	POST /api/get-recommendation  {"prompt": "..."} -> {"recommendation": "..."}
//	GET  /health                  plaintext "Server is running"
//	GET  /ready                   readiness
//	GET  /metrics                 Prometheus metrics
//	GET  /test                    development mode only
//
// In production mode with STATIC_DIR set, all other GET paths serve the
// frontend bundle.
//
// Provider failures are answered with HTTP 500:
//
//	{"error":"...","details":"...","status":429,"missingKey":false}
//
// # Configuration
//
// Serve reads everything from the environment and the .env file in the
// working directory; Run accepts an explicit configuration file and log level.
// See pkg/config. GEMINI_API_KEY, FRONTEND_URL, APP_ENV, PORT, LOG_LEVEL and
// ADVISOR_CONFIG are the common knobs, and the .env file can set any of them.
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/se401/advisor/pkg/api.version=1.0.0'"
package api
