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
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/se401/advisor/pkg/defaults"
	"github.com/se401/advisor/pkg/logging"
)

// Environment variables read by Load.
const (
	EnvConfigFile  = "ADVISOR_CONFIG"
	EnvAPIKey      = "GEMINI_API_KEY"
	EnvModel       = "GEMINI_MODEL"
	EnvFrontendURL = "FRONTEND_URL"
	EnvMode        = "APP_ENV"
	EnvStaticDir   = "STATIC_DIR"
	EnvLocale      = "ADVISOR_LOCALE"
)

// Mode selects production or development behavior.
type Mode string

const (
	ModeProduction  Mode = "production"
	ModeDevelopment Mode = "development"
)

// Supported message locales.
const (
	LocaleEnglish    = "en"
	LocaleVietnamese = "vi"
)

// Config is the complete application configuration.
type Config struct {
	Mode      Mode           `yaml:"mode"`
	StaticDir string         `yaml:"staticDir"`
	Locale    string         `yaml:"locale"`
	Provider  ProviderConfig `yaml:"provider"`
	CORS      CORSConfig     `yaml:"cors"`

	// MaxBodyBytes bounds recommendation request bodies. Zero keeps the
	// handler default.
	MaxBodyBytes int64 `yaml:"maxBodyBytes"`

	getenv func(string) string
}

// ProviderConfig holds the generative-language provider settings.
// APIKey is only ever read from the environment.
type ProviderConfig struct {
	APIKey          string  `yaml:"-" json:"-"`
	Model           string  `yaml:"model"`
	Temperature     float32 `yaml:"temperature"`
	TopK            float32 `yaml:"topK"`
	TopP            float32 `yaml:"topP"`
	MaxOutputTokens int32   `yaml:"maxOutputTokens"`
}

// LogValue keeps the API key out of logs.
func (p ProviderConfig) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("model", p.Model),
		slog.String("apiKey", logging.MaskSecret(p.APIKey)),
		slog.Float64("temperature", float64(p.Temperature)),
		slog.Float64("topK", float64(p.TopK)),
		slog.Float64("topP", float64(p.TopP)),
		slog.Int("maxOutputTokens", int(p.MaxOutputTokens)),
	)
}

// CORSConfig is the allowed origin set and the headers announced to browsers.
type CORSConfig struct {
	AllowedOrigins      []string `yaml:"allowedOrigins"`
	AllowedHostSuffixes []string `yaml:"allowedHostSuffixes"`
	AllowedMethods      []string `yaml:"allowedMethods"`
	ExposedHeaders      []string `yaml:"exposedHeaders"`
	MaxAgeSeconds       int      `yaml:"maxAgeSeconds"`
	AllowCredentials    *bool    `yaml:"allowCredentials"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Mode:   ModeDevelopment,
		Locale: LocaleEnglish,
		Provider: ProviderConfig{
			Model:           defaults.ProviderModel,
			Temperature:     defaults.ProviderTemperature,
			TopK:            defaults.ProviderTopK,
			TopP:            defaults.ProviderTopP,
			MaxOutputTokens: defaults.ProviderMaxOutputTokens,
		},
		CORS: CORSConfig{
			AllowedOrigins:      slices.Clone(defaults.AllowedOrigins),
			AllowedHostSuffixes: slices.Clone(defaults.AllowedHostSuffixes),
		},
	}
}

// Getenv returns the environment value for key as Load saw it: the process
// environment first, then the dotenv file. A Config not built by Load reads
// the process environment only.
func (c *Config) Getenv(key string) string {
	if c.getenv != nil {
		return c.getenv(key)
	}
	return strings.TrimSpace(os.Getenv(key))
}

// KeyConfigured reports whether a provider API key is present.
func (c *Config) KeyConfigured() bool {
	return strings.TrimSpace(c.Provider.APIKey) != ""
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Mode == ModeProduction
}

// addOrigin appends origin and its trailing-slash twin unless already present.
func (c *CORSConfig) addOrigin(origin string) {
	origin = strings.TrimSpace(origin)
	if origin == "" {
		return
	}
	trimmed := strings.TrimSuffix(origin, "/")
	for _, o := range []string{trimmed, trimmed + "/"} {
		if !slices.Contains(c.AllowedOrigins, o) {
			c.AllowedOrigins = append(c.AllowedOrigins, o)
		}
	}
}
