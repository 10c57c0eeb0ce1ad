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

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	apperrors "github.com/se401/advisor/pkg/errors"
)

// DefaultEnvFile is the dotenv file read from the working directory.
const DefaultEnvFile = ".env"

type loadOptions struct {
	envFile string
	lookup  func(string) (string, bool)
}

// Option customizes Load.
type Option func(*loadOptions)

// WithEnvFile sets the dotenv file to read. An empty name disables it.
func WithEnvFile(name string) Option {
	return func(o *loadOptions) {
		o.envFile = name
	}
}

// WithLookup replaces os.LookupEnv as the source of environment values.
func WithLookup(fn func(string) (string, bool)) Option {
	return func(o *loadOptions) {
		if fn != nil {
			o.lookup = fn
		}
	}
}

// Load builds the configuration from defaults, the YAML file at path, the
// dotenv file and the environment, then validates it. When path is empty the
// file named by ADVISOR_CONFIG is used, if any. Values from the real
// environment take precedence over the dotenv file.
func Load(path string, opts ...Option) (*Config, error) {
	o := &loadOptions{
		envFile: DefaultEnvFile,
		lookup:  os.LookupEnv,
	}
	for _, opt := range opts {
		opt(o)
	}

	dotenv, err := readEnvFile(o.envFile)
	if err != nil {
		return nil, err
	}

	// Blank process variables do not shadow the dotenv file.
	lookup := func(key string) string {
		if v, ok := o.lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return strings.TrimSpace(dotenv[key])
	}

	cfg := Default()
	cfg.getenv = lookup

	if path == "" {
		path = lookup(EnvConfigFile)
	}
	if path != "" {
		if err := loadFile(cfg, path); err != nil {
			return nil, err
		}
	}

	applyEnv(cfg, lookup)
	cfg.normalizeMode()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return apperrors.WrapWithContext(apperrors.ErrCodeNotFound,
			"failed to read configuration file", err, map[string]any{"path": path})
	}
	// Decoding into the defaulted struct keeps defaults for absent keys.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest,
			"failed to parse configuration file", err, map[string]any{"path": path})
	}
	return nil
}

func readEnvFile(name string) (map[string]string, error) {
	if name == "" {
		return nil, nil
	}
	values, err := godotenv.Read(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest,
			"failed to read env file", err, map[string]any{"path": name})
	}
	return values, nil
}

func applyEnv(cfg *Config, lookup func(string) string) {
	cfg.Provider.APIKey = lookup(EnvAPIKey)
	if v := lookup(EnvModel); v != "" {
		cfg.Provider.Model = v
	}
	if v := lookup(EnvMode); v != "" {
		cfg.Mode = Mode(strings.ToLower(v))
	}
	if v := lookup(EnvStaticDir); v != "" {
		cfg.StaticDir = v
	}
	if v := lookup(EnvLocale); v != "" {
		cfg.Locale = strings.ToLower(v)
	}
	cfg.CORS.addOrigin(lookup(EnvFrontendURL))
}

// normalizeMode treats every mode other than production as development.
func (c *Config) normalizeMode() {
	switch c.Mode {
	case ModeProduction, ModeDevelopment:
	default:
		slog.Warn("unknown mode, running as development", "mode", c.Mode)
		c.Mode = ModeDevelopment
	}
}

// Validate checks the configuration for out-of-range values.
func (c *Config) Validate() error {
	var problems []string

	switch c.Mode {
	case ModeProduction, ModeDevelopment:
	default:
		problems = append(problems, fmt.Sprintf("mode must be %q or %q, got %q", ModeProduction, ModeDevelopment, c.Mode))
	}

	switch c.Locale {
	case LocaleEnglish, LocaleVietnamese:
	default:
		problems = append(problems, fmt.Sprintf("locale must be %q or %q, got %q", LocaleEnglish, LocaleVietnamese, c.Locale))
	}

	p := c.Provider
	if strings.TrimSpace(p.Model) == "" {
		problems = append(problems, "provider model is required")
	}
	if p.Temperature < 0 || p.Temperature > 2 {
		problems = append(problems, fmt.Sprintf("provider temperature must be in [0, 2], got %v", p.Temperature))
	}
	if p.TopP < 0 || p.TopP > 1 {
		problems = append(problems, fmt.Sprintf("provider topP must be in [0, 1], got %v", p.TopP))
	}
	if p.TopK < 0 {
		problems = append(problems, fmt.Sprintf("provider topK must not be negative, got %v", p.TopK))
	}
	if p.MaxOutputTokens <= 0 {
		problems = append(problems, fmt.Sprintf("provider maxOutputTokens must be positive, got %d", p.MaxOutputTokens))
	}

	if len(c.CORS.AllowedOrigins) == 0 && len(c.CORS.AllowedHostSuffixes) == 0 {
		problems = append(problems, "at least one allowed origin or host suffix is required")
	}
	if c.CORS.MaxAgeSeconds < 0 {
		problems = append(problems, fmt.Sprintf("cors maxAgeSeconds must not be negative, got %d", c.CORS.MaxAgeSeconds))
	}
	if c.MaxBodyBytes < 0 {
		problems = append(problems, fmt.Sprintf("maxBodyBytes must not be negative, got %d", c.MaxBodyBytes))
	}

	if len(problems) > 0 {
		return apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"invalid configuration: "+strings.Join(problems, "; "),
			map[string]any{"problems": problems})
	}
	return nil
}
