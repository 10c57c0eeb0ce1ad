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

// Package server is the HTTP server shared by the advisor binaries.
//
// Application handlers passed with WithHandler run behind a middleware chain:
// metrics, API version negotiation, request IDs, panic recovery, the CORS
// origin gate, rate limiting and debug request logging. System endpoints
// bypass the chain:
//
//	GET /health   plaintext "Server is running", always 200
//	GET /ready    JSON readiness, 503 before Start and during shutdown
//	GET /metrics  Prometheus exposition
//
// GET /test is added when Config.EnableTestRoute is set. When
// Config.StaticDir is set the root handler serves a single-page frontend.
//
// # Usage
//
//	s := server.New(
//	    server.WithName("advisord"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/api/get-recommendation": h.Handle,
//	    }),
//	    server.WithOriginGate(cors.NewGate(origins, suffixes)),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// # Configuration
//
// NewConfig reads PORT (default 5000), SHUTDOWN_TIMEOUT_SECONDS, RATE_LIMIT
// (requests per second, unlimited by default) and RATE_LIMIT_BURST.
// NewConfigFromEnv reads the same variables through another source, such as
// config.Config.Getenv, which also sees the .env file.
//
// # Errors
//
// Infrastructure failures are written by WriteError and WriteErrorFromErr
// as ErrorResponse bodies:
//
//	{"code":"FORBIDDEN","message":"Origin not allowed by CORS",
//	 "details":{"origin":"https://evil.example"},
//	 "requestId":"...","timestamp":"...","retryable":false}
//
// When NOTIFY_SOCKET is set, READY=1 is sent once listening and STOPPING=1
// when shutdown begins.
package server
