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
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/se401/advisor/pkg/config"
	"github.com/se401/advisor/pkg/defaults"
	"github.com/se401/advisor/pkg/logging"
)

const (
	envPort            = "PORT"
	defaultFrontendURL = "http://localhost:3000"
)

var errMissingAPIKey = errors.New(config.EnvAPIKey + " is not set, export it before running env")

func envCmd() *cli.Command {
	return &cli.Command{
		Name:  "env",
		Usage: "Write a .env file for deployment",
		Description: `Write APP_ENV, PORT, FRONTEND_URL and GEMINI_API_KEY to a dotenv file.

PORT and FRONTEND_URL are taken from the environment when set. The command
fails without writing anything when GEMINI_API_KEY is not set.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Value:   config.DefaultEnvFile,
				Usage:   "dotenv file to write",
			},
			&cli.StringFlag{
				Name:  "mode",
				Value: string(config.ModeProduction),
				Usage: "value written to APP_ENV (production, development)",
			},
		},
		Action: runEnv,
	}
}

func runEnv(_ context.Context, cmd *cli.Command) error {
	values, err := buildEnv(cmd.String("mode"), os.LookupEnv)
	if err != nil {
		return err
	}

	path := cmd.String("file")
	if err := godotenv.Write(values, path); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}

	w := stdout(cmd)
	fmt.Fprintf(w, "Environment variables written to %s\n", path)
	fmt.Fprintf(w, "API key: %s\n", logging.MaskSecret(values[config.EnvAPIKey]))
	return nil
}

// buildEnv collects the dotenv values from lookup.
func buildEnv(mode string, lookup func(string) (string, bool)) (map[string]string, error) {
	get := func(key, fallback string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return fallback
	}

	switch m := config.Mode(mode); m {
	case config.ModeProduction, config.ModeDevelopment:
	default:
		return nil, fmt.Errorf("invalid mode %q, must be %q or %q", mode, config.ModeProduction, config.ModeDevelopment)
	}

	key := get(config.EnvAPIKey, "")
	if key == "" {
		return nil, errMissingAPIKey
	}

	return map[string]string{
		config.EnvMode:        mode,
		envPort:               get(envPort, strconv.Itoa(defaults.ServerPort)),
		config.EnvFrontendURL: get(config.EnvFrontendURL, defaultFrontendURL),
		config.EnvAPIKey:      key,
	}, nil
}
