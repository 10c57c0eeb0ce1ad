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

// Provider defaults for the generative-language backend.
const (
	// ProviderModel is the model used when none is configured.
	ProviderModel = "gemini-1.5-flash"

	// ProviderTemperature controls sampling randomness.
	ProviderTemperature float32 = 0.7

	// ProviderTopK limits sampling to the K most likely tokens.
	ProviderTopK float32 = 1

	// ProviderTopP is the nucleus sampling threshold.
	ProviderTopP float32 = 1

	// ProviderMaxOutputTokens caps the generated text length. Kept low to
	// stay within free-tier quota.
	ProviderMaxOutputTokens int32 = 1024
)

// Server defaults.
const (
	// ServerPort is the listen port when PORT is not set.
	ServerPort = 5000
)

// CORS defaults.
var (
	// AllowedOrigins are the frontend origins permitted out of the box.
	// FRONTEND_URL is appended at startup when set.
	AllowedOrigins = []string{
		"http://localhost:3000",
		"https://SE401-Design-Pattern.onrender.com",
		"https://build-aqaycn8ew-tinhs-projects.vercel.app",
		"https://build-aqaycn8ew-tinhs-projects.vercel.app/",
		"https://build-ospfw1o9q-tinhs-projects.vercel.app",
		"https://build-ospfw1o9q-tinhs-projects.vercel.app/",
	}

	// AllowedHostSuffixes are hosting-provider domains whose ephemeral
	// deployment subdomains are always permitted.
	AllowedHostSuffixes = []string{
		"vercel.app",
	}
)

// Check command defaults.
const (
	// CheckPrompt is the prompt sent by the API key smoke test.
	CheckPrompt = "Tell me a short joke about programming"
)
