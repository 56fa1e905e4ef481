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

package args

import (
	"path"
	"path/filepath"
	"sort"

	apperrors "github.com/tigera/chartdocs/pkg/errors"
	"github.com/tigera/chartdocs/pkg/values"
)

// Expand replaces every --execute-dir directive with one --execute
// directive per regular file directly under that directory of chartRoot.
// Files are emitted in name order regardless of listing order.
func Expand(ds []Directive, lister Lister, chartRoot string) ([]Directive, error) {
	out := make([]Directive, 0, len(ds))
	for _, d := range ds {
		if d.Flag != FlagExecuteDir {
			out = append(out, d)
			continue
		}
		if d.Value == "" {
			return nil, apperrors.New(apperrors.ErrCodeInvalidRequest,
				FlagExecuteDir+" requires a directory")
		}

		dir := path.Clean(d.Value)
		names, err := lister.ListFiles(filepath.Join(chartRoot, filepath.FromSlash(dir)))
		if err != nil {
			return nil, apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest,
				"failed to list directory for "+FlagExecuteDir, err,
				map[string]any{"dir": dir, "chart": chartRoot})
		}

		sorted := make([]string, len(names))
		copy(sorted, names)
		sort.Strings(sorted)

		for _, name := range sorted {
			out = append(out, expandedDirective(path.Join(dir, name)))
		}
	}
	return out, nil
}

// Substitute rewrites execute directives into helm 3 --show-only form for
// operator-family variants. Expanded schema definitions are addressed from
// the chart root and other expanded files from templates/. Paths the user
// typed keep their value. Other variants pass through unchanged.
func Substitute(ds []Directive, variant values.Variant) []Directive {
	out := make([]Directive, len(ds))
	copy(out, ds)
	if !variant.IsOperatorFamily() {
		return out
	}

	for i, d := range out {
		if d.Flag != FlagExecute {
			continue
		}
		target := d.Value
		if d.Expanded && !d.Schema {
			target = path.Join(templatesRoot, d.Value)
		}
		out[i] = Directive{Flag: FlagShowOnly, Value: target, Expanded: d.Expanded, Schema: d.Schema}
	}
	return out
}
