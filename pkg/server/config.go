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
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/se401/advisor/pkg/defaults"
)

// Environment variables read by NewConfig.
const (
	EnvPort            = "PORT"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT_SECONDS"
	EnvRateLimit       = "RATE_LIMIT"
	EnvRateLimitBurst  = "RATE_LIMIT_BURST"
)

// defaultRateLimitBurst applies when RATE_LIMIT is set without a burst.
const defaultRateLimitBurst = 20

// Config holds server configuration
type Config struct {
	// Server identity
	Name    string
	Version string

	// Additional Handlers to be added to the server. Each one runs behind
	// the full middleware chain, CORS gate included.
	Handlers map[string]http.HandlerFunc

	// Server configuration
	Address string
	Port    int

	// Rate limiting configuration. rate.Inf disables limiting.
	RateLimit      rate.Limit // requests per second
	RateLimitBurst int        // burst size

	// EnableTestRoute exposes GET /test.
	EnableTestRoute bool

	// StaticDir, when set, serves a single-page frontend from this
	// directory on every path not claimed by another route.
	StaticDir string

	// Timeouts
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

// NewConfig returns a new Config with sensible defaults overridden by the
// process environment.
// Use this when you want to customize config programmatically.
func NewConfig() *Config {
	return NewConfigFromEnv(os.Getenv)
}

// NewConfigFromEnv is NewConfig reading variables through getenv, so callers
// can layer a dotenv file under the process environment.
func NewConfigFromEnv(getenv func(string) string) *Config {
	if getenv == nil {
		getenv = os.Getenv
	}
	return parseConfig(getenv)
}

// parseConfig returns defaults overridden by getenv. Invalid values are
// ignored.
func parseConfig(getenv func(string) string) *Config {
	cfg := &Config{
		Name:              "server",
		Version:           "undefined",
		Address:           "",
		Port:              defaults.ServerPort,
		RateLimit:         rate.Inf,
		RateLimitBurst:    defaultRateLimitBurst,
		ReadTimeout:       defaults.ServerReadTimeout,
		ReadHeaderTimeout: defaults.ServerReadHeaderTimeout,
		WriteTimeout:      defaults.ServerWriteTimeout,
		IdleTimeout:       defaults.ServerIdleTimeout,
		ShutdownTimeout:   defaults.ServerShutdownTimeout,
	}

	if port, ok := envInt(getenv, EnvPort); ok && port >= 0 && port <= 65535 {
		cfg.Port = port
	}

	// Hosting platforms send SIGTERM with their own grace period.
	if seconds, ok := envInt(getenv, EnvShutdownTimeout); ok && seconds > 0 {
		cfg.ShutdownTimeout = time.Duration(seconds) * time.Second
	}

	if v := strings.TrimSpace(getenv(EnvRateLimit)); v != "" {
		if limit, err := strconv.ParseFloat(v, 64); err == nil && limit > 0 {
			cfg.RateLimit = rate.Limit(limit)
		}
	}
	if burst, ok := envInt(getenv, EnvRateLimitBurst); ok && burst > 0 {
		cfg.RateLimitBurst = burst
	}

	return cfg
}

func envInt(getenv func(string) string, key string) (int, bool) {
	v := strings.TrimSpace(getenv(key))
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}
