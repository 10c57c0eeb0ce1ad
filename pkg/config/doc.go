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

// Package config assembles the process-wide, read-only configuration of the
// advisor: the provider settings, the CORS origin allow-list, the run mode and
// the locale of user-facing messages.
//
// Values are layered in this order, later layers winning:
//
//  1. compiled-in defaults (pkg/defaults)
//  2. an optional YAML file (ADVISOR_CONFIG or an explicit path)
//  3. a .env file in the working directory
//  4. the process environment
//
// Any APP_ENV other than production runs as development. The result is
// validated once and never mutated afterwards. Config.Getenv exposes the
// merged environment to packages with their own variables, such as PORT.
//
//	cfg, err := config.Load("")
//	if err != nil {
//		return err
//	}
//	if !cfg.KeyConfigured() {
//		slog.Error("GEMINI_API_KEY is not set")
//	}
package config
