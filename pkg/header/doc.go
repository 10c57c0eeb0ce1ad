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

// Package header provides the envelope printed ahead of CLI documents so
// JSON and YAML output can be identified and versioned:
//
//	kind: CheckResult
//	apiVersion: advisor.se401.dev/v1
//	metadata:
//	  timestamp: "2025-06-01T12:00:00Z"
//	  version: v1.0.0
package header
