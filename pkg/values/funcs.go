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

package values

import (
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/tigera/chartdocs/pkg/catalog"
	apperrors "github.com/tigera/chartdocs/pkg/errors"
	"github.com/tigera/chartdocs/pkg/image"
)

// docsPlaceholders replace secret-like fields in documentation output.
var docsPlaceholders = map[string]string{
	"core.apiserver.tls.crt":      "<replace with base64 encoded certificate>",
	"core.apiserver.tls.key":      "<replace with base64 encoded private key>",
	"core.apiserver.tls.cabundle": "<replace with base64 encoded Certificate Authority bundle>",
	"core.typha.tls.caBundle":     "<replace with PEM-encoded (not base64) Certificate Authority bundle>",
	"core.typha.tls.typhaCrt":     "<replace with base64-encoded Typha certificate>",
	"core.typha.tls.typhaKey":     "<replace with base64-encoded Typha private key>",
	"core.typha.tls.felixCrt":     "<replace with base64-encoded Felix certificate>",
	"core.typha.tls.felixKey":     "<replace with base64-encoded Felix private key>",
}

// lookups carries the request state the template functions read. The first
// missing key is recorded so Generate can report it without digging
// through template execution errors.
type lookups struct {
	req     Request
	missing error
}

func (l *lookups) fail(kind, name string) error {
	err := apperrors.NewWithContext(apperrors.ErrCodeMissingComponent,
		fmt.Sprintf("%s %q not present for chart %s", kind, name, l.req.Variant),
		map[string]any{"name": name, "kind": kind, "variant": string(l.req.Variant)})
	if l.missing == nil {
		l.missing = err
	}
	return err
}

func (l *lookups) entry(name string) (catalog.Entry, error) {
	e, ok := l.req.Catalog.Lookup(name)
	if !ok {
		return catalog.Entry{}, l.fail("component", name)
	}
	return e, nil
}

func (l *lookups) descriptor(name string) (*catalog.ComponentDescriptor, error) {
	e, err := l.entry(name)
	if err != nil {
		return nil, err
	}
	if !e.IsDescriptor() {
		return nil, l.fail("component image", name)
	}
	return e.Descriptor, nil
}

func (l *lookups) tag(name string) (string, error) {
	e, err := l.entry(name)
	if err != nil {
		return "", err
	}
	return e.ResolvedVersion(), nil
}

// image prefixes the site registry to the catalog image, or to the
// image-name table entry when the catalog carries only a version.
func (l *lookups) image(name string) (string, error) {
	e, err := l.entry(name)
	if err != nil {
		return "", err
	}
	if e.IsDescriptor() {
		return image.Prefixed(l.req.Registry, e.Descriptor.Image), nil
	}
	if n, ok := l.req.ImageNames[name]; ok {
		return image.Prefixed(l.req.Registry, n), nil
	}
	return "", l.fail("component image", name)
}

func (l *lookups) imageName(key string) (string, error) {
	n, ok := l.req.ImageNames[key]
	if !ok {
		return "", l.fail("image name", key)
	}
	return n, nil
}

// extImage is for externally supplied base images: the catalog registry is
// used and the site registry prefix is not.
func (l *lookups) extImage(name string) (string, error) {
	d, err := l.descriptor(name)
	if err != nil {
		return "", err
	}
	return image.External(d.Registry, d.Image), nil
}

func (l *lookups) catalogImage(name string) (string, error) {
	d, err := l.descriptor(name)
	if err != nil {
		return "", err
	}
	return d.Image, nil
}

func (l *lookups) catalogRegistry(name string) (string, error) {
	d, err := l.descriptor(name)
	if err != nil {
		return "", err
	}
	return d.Registry, nil
}

func (l *lookups) placeholder(key string) string {
	if !l.req.ForDocs {
		return ""
	}
	return docsPlaceholders[key]
}

// funcMap layers the lookup functions over sprig's text functions.
func (l *lookups) funcMap() template.FuncMap {
	fm := sprig.TxtFuncMap()
	fm["tag"] = l.tag
	fm["image"] = l.image
	fm["imageName"] = l.imageName
	fm["extImage"] = l.extImage
	fm["catalogImage"] = l.catalogImage
	fm["catalogRegistry"] = l.catalogRegistry
	fm["placeholder"] = l.placeholder
	return fm
}
