// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

// Package serializer reads and writes service payloads as JSON, YAML or a
// flattened table.
//
// Writing, to a file or stdout:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.Close()
//	if err := w.Serialize(ctx, vector); err != nil {
//		return err
//	}
//
// Reading, with the format taken from the file extension:
//
//	payload, err := serializer.FromFile[map[string]any]("payload.yaml")
//
// HTTP helpers buffer JSON before writing headers so a failed encode never
// leaves a half-written response:
//
//	serializer.RespondJSON(w, http.StatusOK, resp)
package serializer

import "context"

// Serializer writes a value somewhere in some format.
type Serializer interface {
	Serialize(ctx context.Context, v any) error
	Close() error
}
