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

// Package serializer reads and writes structured data.
//
// Output supports three formats:
//   - JSON: Machine-readable structured data with proper indentation
//   - YAML: Human-readable configuration format
//   - Table: one row per element for slices and maps, FIELD/VALUE pairs
//     for anything else
//
// Input supports JSON and YAML, chosen from the file extension:
//
//	raw, err := serializer.FromFile[map[string]any]("_data/versions.yml")
//
// Writing:
//
//	w, err := serializer.NewFileWriter(serializer.FormatTable, path, os.Stdout)
//	if err != nil {
//		return err
//	}
//	defer w.Close()
//	return w.Serialize(ctx, catalog)
package serializer
