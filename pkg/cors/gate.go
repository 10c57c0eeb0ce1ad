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

// Package cors implements the cross-origin policy of the advisor API: an
// exact-match origin allow-list that tolerates a trailing slash, plus a list
// of hosting-provider substrings whose preview deployments are always allowed.
package cors

import (
	"net/http"
	"strconv"
	"strings"
)

// Response and request headers used by the gate.
const (
	HeaderOrigin           = "Origin"
	HeaderVary             = "Vary"
	HeaderAllowOrigin      = "Access-Control-Allow-Origin"
	HeaderAllowCredentials = "Access-Control-Allow-Credentials"
	HeaderAllowMethods     = "Access-Control-Allow-Methods"
	HeaderAllowHeaders     = "Access-Control-Allow-Headers"
	HeaderExposeHeaders    = "Access-Control-Expose-Headers"
	HeaderMaxAge           = "Access-Control-Max-Age"
	HeaderRequestMethod    = "Access-Control-Request-Method"
	HeaderRequestHeaders   = "Access-Control-Request-Headers"
	defaultMaxAge          = 3600
	defaultAllowedHeaders  = "Content-Type, Authorization, X-Request-Id"
)

var defaultMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodOptions,
}

// Gate decides whether a browser origin may call the API and writes the
// matching Access-Control-* headers. A Gate is immutable and safe for
// concurrent use.
type Gate struct {
	origins        map[string]struct{}
	hostSuffixes   []string
	methods        []string
	exposedHeaders []string
	maxAge         int
	credentials    bool
}

// Option configures a Gate.
type Option func(*Gate)

// WithMethods overrides the methods announced on preflight.
func WithMethods(methods ...string) Option {
	return func(g *Gate) {
		if len(methods) > 0 {
			g.methods = methods
		}
	}
}

// WithExposedHeaders lists response headers readable by the caller.
func WithExposedHeaders(headers ...string) Option {
	return func(g *Gate) {
		g.exposedHeaders = headers
	}
}

// WithMaxAge sets the preflight cache lifetime in seconds.
func WithMaxAge(seconds int) Option {
	return func(g *Gate) {
		g.maxAge = seconds
	}
}

// WithCredentials toggles Access-Control-Allow-Credentials. Enabled by default.
func WithCredentials(enabled bool) Option {
	return func(g *Gate) {
		g.credentials = enabled
	}
}

// NewGate builds a gate from the allowed origins and host substrings.
// Blank entries are ignored.
func NewGate(origins, hostSuffixes []string, opts ...Option) *Gate {
	g := &Gate{
		origins:     make(map[string]struct{}, len(origins)),
		methods:     defaultMethods,
		maxAge:      defaultMaxAge,
		credentials: true,
	}
	for _, o := range origins {
		if o = strings.TrimSpace(o); o != "" {
			g.origins[o] = struct{}{}
		}
	}
	for _, s := range hostSuffixes {
		if s = strings.TrimSpace(s); s != "" {
			g.hostSuffixes = append(g.hostSuffixes, s)
		}
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Allow reports whether origin may call the API. An empty origin (curl,
// server-to-server, same-origin navigation) is always allowed.
func (g *Gate) Allow(origin string) bool {
	if origin == "" {
		return true
	}
	trimmed := strings.TrimSuffix(origin, "/")
	for _, candidate := range []string{origin, trimmed, trimmed + "/"} {
		if _, ok := g.origins[candidate]; ok {
			return true
		}
	}
	// Substring, not suffix: preview URLs look like https://x-git-branch.vercel.app.
	for _, s := range g.hostSuffixes {
		if strings.Contains(origin, s) {
			return true
		}
	}
	return false
}

// IsPreflight reports whether r is a CORS preflight request.
func IsPreflight(r *http.Request) bool {
	return r.Method == http.MethodOptions &&
		r.Header.Get(HeaderOrigin) != "" &&
		r.Header.Get(HeaderRequestMethod) != ""
}

// SetHeaders writes the headers for an allowed, non-empty origin.
func (g *Gate) SetHeaders(h http.Header, origin string) {
	h.Add(HeaderVary, HeaderOrigin)
	if origin == "" {
		return
	}
	h.Set(HeaderAllowOrigin, origin)
	if g.credentials {
		h.Set(HeaderAllowCredentials, "true")
	}
	if len(g.exposedHeaders) > 0 {
		h.Set(HeaderExposeHeaders, strings.Join(g.exposedHeaders, ", "))
	}
}

// SetPreflightHeaders writes the preflight-only headers. Requested headers
// are reflected back; without any, a default set is announced.
func (g *Gate) SetPreflightHeaders(h http.Header, r *http.Request) {
	h.Set(HeaderAllowMethods, strings.Join(g.methods, ", "))
	if requested := r.Header.Get(HeaderRequestHeaders); requested != "" {
		h.Set(HeaderAllowHeaders, requested)
		h.Add(HeaderVary, HeaderRequestHeaders)
	} else {
		h.Set(HeaderAllowHeaders, defaultAllowedHeaders)
	}
	if g.maxAge > 0 {
		h.Set(HeaderMaxAge, strconv.Itoa(g.maxAge))
	}
}
