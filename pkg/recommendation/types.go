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

// Package recommendation serves the prompt-to-recommendation endpoint: it
// decodes a prompt, forwards it to a Generator and relays the generated text,
// classifying failures into localized, client-facing error bodies.
package recommendation

import "context"

// StatusUnknown is reported when the provider supplied no HTTP status.
const StatusUnknown = "unknown"

// PromptRequest is the request body.
type PromptRequest struct {
	Prompt string `json:"prompt"`
}

// Response is the success body.
type Response struct {
	Recommendation string `json:"recommendation"`
}

// ErrorResponse is the failure body. Status holds the provider HTTP status
// code as a number, or StatusUnknown.
type ErrorResponse struct {
	Error      string `json:"error"`
	Details    string `json:"details"`
	Status     any    `json:"status"`
	MissingKey bool   `json:"missingKey"`
}

// Generator produces text for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

// Generate calls f.
func (f GeneratorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
