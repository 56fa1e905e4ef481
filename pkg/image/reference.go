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

package image

import (
	"fmt"
	"strings"

	"github.com/distribution/reference"

	apperrors "github.com/tigera/chartdocs/pkg/errors"
)

// sampleRepository is appended to a registry prefix so the prefix can be
// parsed as a complete named reference.
const sampleRepository = "sample"

// Reference is a parsed image reference.
type Reference struct {
	// Registry is the registry host (e.g., "quay.io", "localhost:5000").
	Registry string
	// Repository is the image repository path (e.g., "tigera/cnx-node").
	Repository string
	// Tag is the image tag. Empty when the reference carries none.
	Tag string
}

// Parse parses ref as a docker-style image reference. Refs without a
// registry are normalized to docker.io.
func Parse(ref string) (*Reference, error) {
	named, err := reference.ParseNormalizedNamed(ref)
	if err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest,
			"invalid image reference", err, map[string]any{"reference": ref})
	}

	r := &Reference{
		Registry:   reference.Domain(named),
		Repository: reference.Path(named),
	}
	if tagged, ok := named.(reference.Tagged); ok {
		r.Tag = tagged.Tag()
	}
	return r, nil
}

// String returns registry/repository[:tag].
func (r *Reference) String() string {
	if r.Tag == "" {
		return fmt.Sprintf("%s/%s", r.Registry, r.Repository)
	}
	return fmt.Sprintf("%s/%s:%s", r.Registry, r.Repository, r.Tag)
}

// WithTag returns a copy of the reference with the given tag.
func (r *Reference) WithTag(tag string) *Reference {
	return &Reference{
		Registry:   r.Registry,
		Repository: r.Repository,
		Tag:        tag,
	}
}

// NormalizePrefix trims whitespace and guarantees a non-empty prefix ends
// with a single slash. An empty prefix stays empty.
func NormalizePrefix(prefix string) string {
	p := strings.TrimSpace(prefix)
	if p == "" {
		return ""
	}
	return strings.TrimRight(p, "/") + "/"
}

// ValidatePrefix checks that prefix, once normalized, can front a
// repository name. The empty prefix is valid and means "no registry".
func ValidatePrefix(prefix string) error {
	p := NormalizePrefix(prefix)
	if p == "" {
		return nil
	}
	if _, err := Parse(p + sampleRepository); err != nil {
		return apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest,
			"invalid registry prefix", err, map[string]any{"registry": prefix})
	}
	return nil
}

// Prefixed joins a site registry prefix and an image name. The prefix is
// used verbatim so callers control the separator.
func Prefixed(prefix, name string) string {
	return prefix + name
}

// External joins a catalog-supplied registry and image with a slash.
// An empty registry yields the bare image.
func External(registry, name string) string {
	if registry == "" {
		return name
	}
	return strings.TrimRight(registry, "/") + "/" + name
}
