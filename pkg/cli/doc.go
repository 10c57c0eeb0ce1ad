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

// Package cli implements the advisor operator command-line tool.
//
// # Commands
//
//	advisor serve [--config FILE]
//
// Runs the recommendation API server, identical to advisord.
//
//	advisor check [--prompt TEXT] [--timeout 60s] [--format table|json|yaml] [--output FILE]
//
// Sends one prompt to Gemini with the configured key and prints the model,
// the masked key, the generated text and the elapsed time. Exits 1 on any
// provider failure.
//
//	advisor env [--file .env] [--mode production]
//
// Writes APP_ENV, PORT, FRONTEND_URL and GEMINI_API_KEY to a dotenv file.
// Fails when GEMINI_API_KEY is not exported.
//
//	advisor clean [--dir node_modules/backend]
//
// Removes a stale directory if present.
//
// # Global Flags
//
//	--log-level   debug, info, warn, error (env LOG_LEVEL)
//	--help, -h    Show command help
//	--version, -v Show version information
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/se401/advisor/pkg/cli.version=1.0.0'"
package cli
