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
	"log/slog"

	apperrors "github.com/tigera/chartdocs/pkg/errors"
	"github.com/tigera/chartdocs/pkg/version"
)

const (
	componentsKey = "components"
	titleKey      = "title"
	imageField    = "image"
	versionField  = "version"
	registryField = "registry"
)

// Resolve normalizes raw, as decoded from YAML or JSON, into a Catalog.
// requestedVersion selects the release line of a keyed catalog and is
// ignored for single-release catalogs.
func Resolve(raw any, requestedVersion string) (Catalog, error) {
	group, err := selectGroup(raw, requestedVersion)
	if err != nil {
		return nil, err
	}
	return resolveGroup(group)
}

// Lines lists the release lines of a keyed catalog, newest first. A
// single-release catalog yields the titles of its groups in file order.
func Lines(raw any) ([]string, error) {
	switch v := raw.(type) {
	case []any:
		lines := make([]string, 0, len(v))
		for _, g := range v {
			if m, ok := asMap(g); ok {
				if title, ok := m[titleKey]; ok {
					lines = append(lines, scalar(title))
				}
			}
		}
		return lines, nil
	default:
		m, ok := asMap(raw)
		if !ok {
			return nil, malformed("catalog must be a list or a mapping", raw)
		}
		if isGroup(m) {
			return nil, nil
		}
		lines := make([]string, 0, len(m))
		for k := range m {
			lines = append(lines, k)
		}
		version.SortLines(lines)
		return lines, nil
	}
}

func selectGroup(raw any, requestedVersion string) (map[string]any, error) {
	if list, ok := raw.([]any); ok {
		return firstGroup(list, "")
	}

	m, ok := asMap(raw)
	if !ok {
		return nil, malformed("catalog must be a list or a mapping", raw)
	}

	// A bare group carries its components directly.
	if isGroup(m) {
		return m, nil
	}

	if requestedVersion == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest,
			"catalog is keyed by release line but no version was requested")
	}

	line, ok := m[requestedVersion]
	if !ok {
		available := make([]string, 0, len(m))
		for k := range m {
			available = append(available, k)
		}
		version.SortLines(available)
		return nil, apperrors.NewWithContext(apperrors.ErrCodeCatalogVersionNotFound,
			fmt.Sprintf("requested version %q not present in catalog", requestedVersion),
			map[string]any{"release": requestedVersion, "available": available})
	}

	list, ok := line.([]any)
	if !ok {
		// Tolerate a release line holding a single group instead of a list.
		if g, isMap := asMap(line); isMap {
			return g, nil
		}
		return nil, malformed(fmt.Sprintf("release line %q must be a list of version groups", requestedVersion), line)
	}
	return firstGroup(list, requestedVersion)
}

func firstGroup(list []any, line string) (map[string]any, error) {
	if len(list) == 0 {
		return nil, apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
			"catalog has no version groups", map[string]any{"release": line})
	}
	g, ok := asMap(list[0])
	if !ok {
		return nil, malformed("version group must be a mapping", list[0])
	}
	return g, nil
}

func resolveGroup(group map[string]any) (Catalog, error) {
	rawComponents, ok := group[componentsKey]
	if !ok || rawComponents == nil {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest, "version group has no components")
	}
	components, ok := asMap(rawComponents)
	if !ok {
		return nil, malformed("components must be a mapping", rawComponents)
	}

	cat := make(Catalog, len(components)+1)
	for name, raw := range components {
		cat[name] = resolveEntry(name, raw)
	}

	if op, ok := group[OperatorKey]; ok && op != nil {
		if _, dup := cat[OperatorKey]; dup {
			slog.Debug("top-level operator entry overrides component entry", "key", OperatorKey)
		}
		cat[OperatorKey] = resolveEntry(OperatorKey, op)
	}

	return cat, nil
}

func resolveEntry(name string, raw any) Entry {
	m, ok := asMap(raw)
	if !ok {
		return Entry{Version: scalar(raw)}
	}

	ver := scalar(m[versionField])
	img, hasImage := m[imageField]
	if !hasImage || img == nil {
		return Entry{Version: ver}
	}

	return Entry{Descriptor: &ComponentDescriptor{
		Name:     name,
		Image:    scalar(img),
		Version:  ver,
		Registry: scalar(m[registryField]),
	}}
}

func isGroup(m map[string]any) bool {
	c, ok := m[componentsKey]
	if !ok {
		return false
	}
	_, isMap := asMap(c)
	return isMap
}

// asMap accepts both decoder outputs: JSON and YAML string-keyed maps, and
// YAML maps with non-string keys.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	default:
		return nil, false
	}
}

func scalar(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func malformed(msg string, got any) error {
	return apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest, msg,
		map[string]any{"type": fmt.Sprintf("%T", got)})
}
