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

package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/se401/advisor/pkg/config"
	"github.com/se401/advisor/pkg/cors"
	apperrors "github.com/se401/advisor/pkg/errors"
	"github.com/se401/advisor/pkg/gemini"
	"github.com/se401/advisor/pkg/logging"
	"github.com/se401/advisor/pkg/recommendation"
	"github.com/se401/advisor/pkg/server"
)

const (
	name           = "advisord"
	versionDefault = "dev"

	// RecommendationPath is the route of the recommendation endpoint.
	RecommendationPath = "/api/get-recommendation"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/se401/advisor/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Options control Run.
type Options struct {
	// ConfigPath is an optional YAML configuration file. Empty falls back
	// to ADVISOR_CONFIG from the environment or the dotenv file.
	ConfigPath string
	// LogLevel overrides LOG_LEVEL when set.
	LogLevel string
}

// Serve runs the server with options taken from the environment and the
// dotenv file. It blocks until SIGINT or SIGTERM.
func Serve() error {
	return Run(context.Background(), Options{})
}

// Run loads configuration, builds the provider client and runs the server
// until ctx is done or a termination signal arrives. A missing API key does
// not prevent startup: the server runs and every recommendation fails with
// missingKey set.
func Run(ctx context.Context, opts Options) error {
	logging.SetDefaultStructuredLoggerWithLevel(name, version, opts.LogLevel)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		slog.Error("failed to load configuration", "error", err, "code", apperrors.CodeOf(err))
		return err
	}

	// LOG_LEVEL may live in the dotenv file only.
	if opts.LogLevel == "" {
		if level := cfg.Getenv(logging.EnvLogLevel); level != "" {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, level)
		}
	}

	slog.Info("configuration loaded",
		"mode", cfg.Mode,
		"locale", cfg.Locale,
		"provider", cfg.Provider,
		"origins", len(cfg.CORS.AllowedOrigins),
	)

	gen, err := newGenerator(ctx, cfg)
	if err != nil {
		slog.Error("failed to create generator", "error", err, "code", apperrors.CodeOf(err))
		return err
	}

	if err := newServer(cfg, gen).Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// newGenerator returns the Gemini client, or a generator that reports
// ErrCodeNotConfigured on every call when no API key is set.
func newGenerator(ctx context.Context, cfg *config.Config, opts ...gemini.Option) (recommendation.Generator, error) {
	client, err := gemini.New(ctx, cfg.Provider, opts...)
	if err == nil {
		return client, nil
	}
	if !apperrors.HasCode(err, apperrors.ErrCodeNotConfigured) {
		return nil, err
	}

	slog.Error("GEMINI_API_KEY is not set, recommendations will fail until it is configured",
		"env", config.EnvAPIKey)
	return recommendation.GeneratorFunc(func(context.Context, string) (string, error) {
		return "", err
	}), nil
}

// newServer assembles the HTTP server for cfg around gen.
func newServer(cfg *config.Config, gen recommendation.Generator) *server.Server {
	hopts := []recommendation.Option{recommendation.WithLocale(cfg.Locale)}
	if cfg.MaxBodyBytes > 0 {
		hopts = append(hopts, recommendation.WithMaxBodyBytes(cfg.MaxBodyBytes))
	}
	h := recommendation.NewHandler(gen, hopts...)

	sc := server.NewConfigFromEnv(cfg.Getenv)
	sc.EnableTestRoute = !cfg.IsProduction()
	if cfg.IsProduction() {
		sc.StaticDir = cfg.StaticDir
	}

	return server.New(
		server.WithConfig(sc),
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(map[string]http.HandlerFunc{
			RecommendationPath: h.Handle,
		}),
		server.WithOriginGate(newGate(cfg.CORS)),
	)
}

// newGate builds the origin gate, leaving the gate defaults in place for
// unset header settings.
func newGate(c config.CORSConfig) *cors.Gate {
	var opts []cors.Option
	if len(c.AllowedMethods) > 0 {
		opts = append(opts, cors.WithMethods(c.AllowedMethods...))
	}
	if len(c.ExposedHeaders) > 0 {
		opts = append(opts, cors.WithExposedHeaders(c.ExposedHeaders...))
	}
	if c.MaxAgeSeconds > 0 {
		opts = append(opts, cors.WithMaxAge(c.MaxAgeSeconds))
	}
	if c.AllowCredentials != nil {
		opts = append(opts, cors.WithCredentials(*c.AllowCredentials))
	}
	return cors.NewGate(c.AllowedOrigins, c.AllowedHostSuffixes, opts...)
}
