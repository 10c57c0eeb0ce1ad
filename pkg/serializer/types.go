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

// Package serializer provides utilities for serializing data to various formats.
//
// HTTP handlers use RespondJSON and RespondText:
//
//	serializer.RespondJSON(w, http.StatusOK, data)
//
// The CLI uses Writer to render reports as JSON, YAML or a FIELD/VALUE table:
//
//	w := serializer.NewWriter(serializer.FormatYAML, os.Stdout)
//	if err := w.Serialize(ctx, report); err != nil {
//		return err
//	}
package serializer

import "context"

// Serializer is implemented by anything that can render a value.
type Serializer interface {
	Serialize(ctx context.Context, v any) error
}

var _ Serializer = (*Writer)(nil)
