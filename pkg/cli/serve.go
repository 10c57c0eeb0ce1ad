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
	"context"

	"github.com/urfave/cli/v3"

	"github.com/se401/advisor/pkg/api"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the recommendation API server",
		Description: `Run the HTTP server that proxies prompts to Google Gemini.

The server listens on PORT (default 5000) and reads GEMINI_API_KEY,
FRONTEND_URL, APP_ENV and the other settings from the environment or a
.env file in the working directory; the environment wins. Without an API key the server still starts and every
recommendation request fails with "missingKey": true.`,
		Flags: []cli.Flag{
			configFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			// An unset level lets LOG_LEVEL from .env apply.
			var level string
			if cmd.IsSet("log-level") {
				level = cmd.String("log-level")
			}
			return api.Run(ctx, api.Options{
				ConfigPath: cmd.String("config"),
				LogLevel:   level,
			})
		},
	}
}
