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
	"fmt"
	"log/slog"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/se401/advisor/pkg/config"
	"github.com/se401/advisor/pkg/defaults"
	"github.com/se401/advisor/pkg/gemini"
	"github.com/se401/advisor/pkg/header"
	"github.com/se401/advisor/pkg/logging"
	"github.com/se401/advisor/pkg/serializer"
)

// CheckResult is the outcome of a successful API key check.
type CheckResult struct {
	header.Header `yaml:",inline"`

	Model   string `json:"model" yaml:"model"`
	APIKey  string `json:"apiKey" yaml:"apiKey"`
	Prompt  string `json:"prompt" yaml:"prompt"`
	Text    string `json:"text" yaml:"text"`
	Elapsed string `json:"elapsed" yaml:"elapsed"`
}

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Verify the Gemini API key with a single test prompt",
		Description: `Send one prompt through the same client the server uses and print
the model, the generated text and the elapsed time.

Exits non-zero when the key is missing, rejected, out of quota, or the
provider returns no text.`,
		Flags: []cli.Flag{
			configFlag(),
			&cli.StringFlag{
				Name:    "prompt",
				Aliases: []string{"p"},
				Value:   defaults.CheckPrompt,
				Usage:   "prompt to send",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: defaults.CLICheckTimeout,
				Usage: "maximum time to wait for the provider",
			},
			&cli.StringFlag{
				Name:  "endpoint",
				Usage: "override the Gemini API base URL",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: runCheck,
	}
}

func runCheck(ctx context.Context, cmd *cli.Command) error {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	slog.Debug("checking provider", "provider", cfg.Provider)

	var opts []gemini.Option
	if endpoint := cmd.String("endpoint"); endpoint != "" {
		opts = append(opts, gemini.WithBaseURL(endpoint))
	}

	ctx, cancel := context.WithTimeout(ctx, cmd.Duration("timeout"))
	defer cancel()

	client, err := gemini.New(ctx, cfg.Provider, opts...)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	prompt := cmd.String("prompt")
	start := time.Now()
	text, err := client.Generate(ctx, prompt)
	if err != nil {
		status := "unknown"
		if code, ok := gemini.StatusOf(err); ok {
			status = fmt.Sprint(code)
		}
		return fmt.Errorf("check failed (status %s): %w", status, err)
	}

	out, closeOut, err := openOutput(cmd)
	if err != nil {
		return err
	}
	defer closeOut()

	return serializer.NewWriter(outFormat, out).Serialize(ctx, CheckResult{
		Header:  header.New(header.KindCheckResult, version),
		Model:   client.Model(),
		APIKey:  logging.MaskSecret(cfg.Provider.APIKey),
		Prompt:  prompt,
		Text:    text,
		Elapsed: time.Since(start).Round(time.Millisecond).String(),
	})
}
