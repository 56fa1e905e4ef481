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

package catalog

import (
	"fmt"

	"github.com/tigera/chartdocs/pkg/serializer"
)

// LoadFile reads a raw catalog from a YAML or JSON file. The result is
// meant for Resolve or Lines. A missing file fails with NOT_FOUND.
func LoadFile(path string) (any, error) {
	raw, err := serializer.FromFile[any](path)
	if err != nil {
		return nil, fmt.Errorf("failed to load version catalog: %w", err)
	}
	return *raw, nil
}

// ResolveFile loads path and resolves requestedVersion from it.
func ResolveFile(path, requestedVersion string) (Catalog, error) {
	raw, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	cat, err := Resolve(raw, requestedVersion)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve catalog %q: %w", path, err)
	}
	return cat, nil
}
