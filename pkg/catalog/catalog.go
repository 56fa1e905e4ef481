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
	"sort"

	apperrors "github.com/tigera/chartdocs/pkg/errors"
)

// OperatorKey is the fixed key under which the top-level operator
// descriptor is merged into a resolved catalog.
const OperatorKey = "tigera-operator"

// ErrCatalogVersionNotFound matches, via errors.Is, every error reporting a
// release line missing from a keyed catalog.
var ErrCatalogVersionNotFound = apperrors.New(apperrors.ErrCodeCatalogVersionNotFound,
	"requested version not present in catalog")

// ComponentDescriptor is the provenance of a component whose image name
// comes from the catalog itself.
type ComponentDescriptor struct {
	Name     string `json:"name" yaml:"name"`
	Image    string `json:"image" yaml:"image"`
	Version  string `json:"version" yaml:"version"`
	Registry string `json:"registry,omitempty" yaml:"registry,omitempty"`
}

// Entry is one resolved component: either a plain version or a descriptor.
type Entry struct {
	Version    string               `json:"version,omitempty" yaml:"version,omitempty"`
	Descriptor *ComponentDescriptor `json:"descriptor,omitempty" yaml:"descriptor,omitempty"`
}

// IsDescriptor reports whether the entry carries an image descriptor.
func (e Entry) IsDescriptor() bool {
	return e.Descriptor != nil
}

// ResolvedVersion returns the descriptor version or the plain version.
func (e Entry) ResolvedVersion() string {
	if e.Descriptor != nil {
		return e.Descriptor.Version
	}
	return e.Version
}

// Catalog maps component names to entries.
type Catalog map[string]Entry

// Names returns the component names in sorted order.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the entry for name.
func (c Catalog) Lookup(name string) (Entry, bool) {
	e, ok := c[name]
	return e, ok
}
