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
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	apperrors "github.com/tigera/chartdocs/pkg/errors"
)

func decode(t *testing.T, doc string) any {
	t.Helper()
	var raw any
	require.NoError(t, yaml.Unmarshal([]byte(doc), &raw))
	return raw
}

const keyedCatalog = `
v3.20:
  - title: v3.20.0
    tigera-operator:
      image: tigera/operator
      version: v1.20.0
      registry: quay.io
    components:
      cnx-manager:
        version: v3.20.0
        image: tigera/cnx-manager
      tigera-cni:
        version: v3.20.0
        image: tigera/cni
        registry: quay.io
      eck-kibana:
        version: 7.6.2
      calicoctl: v3.20.0
  - title: v3.20.1
    components:
      cnx-manager:
        version: v3.20.1
v2.4:
  - title: v2.4.2
    components:
      cnx-manager:
        version: v2.4.2
`

func TestResolve_KeyedCatalog(t *testing.T) {
	raw := decode(t, keyedCatalog)

	cat, err := Resolve(raw, "v3.20")
	require.NoError(t, err)

	assert.Equal(t, []string{"calicoctl", "cnx-manager", "eck-kibana", "tigera-cni", OperatorKey}, cat.Names())

	assert.Equal(t, Entry{Version: "7.6.2"}, cat["eck-kibana"])
	assert.Equal(t, Entry{Version: "v3.20.0"}, cat["calicoctl"], "scalar entries are bare versions")

	mgr := cat["cnx-manager"]
	require.True(t, mgr.IsDescriptor())
	assert.Equal(t, ComponentDescriptor{Name: "cnx-manager", Image: "tigera/cnx-manager", Version: "v3.20.0"}, *mgr.Descriptor)
	assert.Equal(t, "v3.20.0", mgr.ResolvedVersion())

	cni := cat["tigera-cni"]
	require.True(t, cni.IsDescriptor())
	assert.Equal(t, "quay.io", cni.Descriptor.Registry)

	op := cat[OperatorKey]
	require.True(t, op.IsDescriptor())
	assert.Equal(t, ComponentDescriptor{Name: OperatorKey, Image: "tigera/operator", Version: "v1.20.0", Registry: "quay.io"}, *op.Descriptor)
}

func TestResolve_FirstGroupOnly(t *testing.T) {
	cat, err := Resolve(decode(t, keyedCatalog), "v3.20")
	require.NoError(t, err)
	assert.Equal(t, "v3.20.0", cat["cnx-manager"].ResolvedVersion())
}

func TestResolve_WidgetScenario(t *testing.T) {
	raw := decode(t, `{"v1": [{"components": {"widget": {"version": "1.2.3"}}}]}`)

	cat, err := Resolve(raw, "v1")
	require.NoError(t, err)
	assert.Equal(t, Catalog{"widget": {Version: "1.2.3"}}, cat)
}

func TestResolve_DescriptorScenario(t *testing.T) {
	raw := decode(t, `
v1:
  - components:
      widget:
        version: 2.0.0
        image: acme/widget
        registry: reg.example.com
`)

	cat, err := Resolve(raw, "v1")
	require.NoError(t, err)
	require.True(t, cat["widget"].IsDescriptor())
	assert.Equal(t, ComponentDescriptor{
		Name:     "widget",
		Image:    "acme/widget",
		Version:  "2.0.0",
		Registry: "reg.example.com",
	}, *cat["widget"].Descriptor)
}

func TestResolve_VersionNotFound(t *testing.T) {
	raw := decode(t, `{"v1": [{"components": {"widget": {"version": "1.2.3"}}}]}`)

	cat, err := Resolve(raw, "v9")
	require.Error(t, err)
	assert.Nil(t, cat)
	assert.True(t, errors.Is(err, ErrCatalogVersionNotFound))

	var se *apperrors.StructuredError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "v9", se.Context["release"])
	assert.Equal(t, []string{"v1"}, se.Context["available"])
}

func TestResolve_ListCatalogIgnoresRequestedVersion(t *testing.T) {
	raw := decode(t, `
- title: v3.0.1
  components:
    calico/node:
      version: v3.0.1
    typha:
      version: v3.0.1
`)

	for _, requested := range []string{"", "v3.0", "anything"} {
		cat, err := Resolve(raw, requested)
		require.NoError(t, err, requested)
		assert.Equal(t, "v3.0.1", cat["calico/node"].ResolvedVersion())
		assert.Len(t, cat, 2)
	}
}

func TestResolve_BareGroup(t *testing.T) {
	raw := decode(t, `
components:
  typha:
    version: v3.20.0
tigera-operator:
  image: tigera/operator
  version: v1.20.0
`)

	cat, err := Resolve(raw, "")
	require.NoError(t, err)
	assert.Len(t, cat, 2)
	assert.True(t, cat[OperatorKey].IsDescriptor())
}

func TestResolve_NonStringKeys(t *testing.T) {
	raw := map[any]any{
		2.4: []any{map[any]any{"components": map[any]any{"node": map[any]any{"version": "v2.4.2"}}}},
	}

	cat, err := Resolve(raw, "2.4")
	require.NoError(t, err)
	assert.Equal(t, "v2.4.2", cat["node"].Version)
}

func TestResolve_Malformed(t *testing.T) {
	tests := []struct {
		name      string
		raw       any
		requested string
	}{
		{name: "scalar catalog", raw: "nope"},
		{name: "empty list", raw: []any{}},
		{name: "group not a mapping", raw: []any{"x"}},
		{name: "no components", raw: []any{map[string]any{"title": "v1"}}},
		{name: "components not a mapping", raw: []any{map[string]any{"components": []any{"a"}}}},
		{name: "keyed without requested version", raw: map[string]any{"v1": []any{}}},
		{name: "release line is a scalar", raw: map[string]any{"v1": "x"}, requested: "v1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.raw, tt.requested)
			require.Error(t, err)
			assert.Equal(t, apperrors.ErrCodeInvalidRequest, apperrors.CodeOf(err))
			assert.False(t, errors.Is(err, ErrCatalogVersionNotFound))
		})
	}
}

func TestResolve_KeySetMatchesRaw(t *testing.T) {
	raw := decode(t, keyedCatalog)
	for _, line := range []string{"v3.20", "v2.4"} {
		cat, err := Resolve(raw, line)
		require.NoError(t, err)

		group := raw.(map[string]any)[line].([]any)[0].(map[string]any)
		want := len(group["components"].(map[string]any))
		if _, ok := group[OperatorKey]; ok {
			want++
		}
		assert.Len(t, cat, want, line)
	}
}

func TestLines(t *testing.T) {
	lines, err := Lines(decode(t, keyedCatalog))
	require.NoError(t, err)
	assert.Equal(t, []string{"v3.20", "v2.4"}, lines)

	lines, err = Lines(decode(t, "- title: v3.0.1\n  components: {}\n- components: {}\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"v3.0.1"}, lines)

	lines, err = Lines(decode(t, "components:\n  a: v1\n"))
	require.NoError(t, err)
	assert.Empty(t, lines)

	_, err = Lines("x")
	assert.Error(t, err)
}

func TestResolveFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "versions.yml")
	require.NoError(t, os.WriteFile(path, []byte(keyedCatalog), 0o600))

	cat, err := ResolveFile(path, "v2.4")
	require.NoError(t, err)
	assert.Equal(t, "v2.4.2", cat["cnx-manager"].Version)

	_, err = ResolveFile(filepath.Join(t.TempDir(), "missing.yml"), "v2.4")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeNotFound, apperrors.CodeOf(err))

	broken := filepath.Join(t.TempDir(), "broken.yml")
	require.NoError(t, os.WriteFile(broken, []byte("v2.4: ["), 0o600))
	_, err = ResolveFile(broken, "v2.4")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInvalidRequest, apperrors.CodeOf(err))
}
