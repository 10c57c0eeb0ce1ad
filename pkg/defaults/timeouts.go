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

package defaults

import "time"

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading the entire request.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	// It bounds the provider call as well, so it is generous.
	ServerWriteTimeout = 60 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// HTTP client settings for outbound provider calls. No total client timeout
// is set; the inbound request context bounds each call.
const (
	// HTTPConnectTimeout is the TCP connect timeout.
	HTTPConnectTimeout = 5 * time.Second

	// HTTPKeepAlive is the TCP keep-alive interval.
	HTTPKeepAlive = 30 * time.Second

	// HTTPTLSHandshakeTimeout is the TLS handshake timeout.
	HTTPTLSHandshakeTimeout = 5 * time.Second

	// HTTPIdleConnTimeout is how long idle pooled connections are kept.
	HTTPIdleConnTimeout = 90 * time.Second

	// HTTPMaxIdleConns caps the idle connection pool.
	HTTPMaxIdleConns = 32

	// HTTPMaxIdleConnsPerHost caps idle connections to the provider host.
	HTTPMaxIdleConnsPerHost = 16
)

// CLI timeouts for command-line operations.
const (
	// CLICheckTimeout is the default timeout for the API key smoke test.
	CLICheckTimeout = 60 * time.Second
)
