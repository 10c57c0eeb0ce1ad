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

// Package defaults provides centralized configuration constants for the advisor.
//
// This package defines timeout values, provider generation parameters, and the
// out-of-the-box CORS allow-list. Centralizing these values keeps the daemon,
// the CLI, and the tests in agreement.
//
// # Categories
//
//   - Server timeouts: For HTTP server configuration
//   - CLI timeouts: For the API key smoke test
//   - Provider defaults: Model and generation parameters
//   - CORS defaults: Allowed origins and hosting-provider suffixes
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/se401/advisor/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.CLICheckTimeout)
//	defer cancel()
//
// # Timeout Guidelines
//
//   - The write timeout bounds the provider call, so it stays well above
//     typical generation latency
//   - Server shutdown: 30s for graceful shutdown
package defaults
