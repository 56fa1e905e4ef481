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

package config

import (
	"fmt"
	"log/slog"

	"github.com/tigera/chartdocs/pkg/image"
	"github.com/tigera/chartdocs/pkg/serializer"
)

// Site is the subset of the documentation site config used for values
// generation.
type Site struct {
	// ImageNames maps a component key to its base image name. Keys are
	// case-sensitive (e.g. "cnxManager").
	ImageNames map[string]string `json:"imageNames" yaml:"imageNames"`
	// Registry is the default registry prefix, e.g. "quay.io/".
	Registry string `json:"registry" yaml:"registry"`
}

// LoadSite reads the site config at path. The registry prefix is validated
// but kept verbatim.
func LoadSite(path string) (*Site, error) {
	site, err := serializer.FromFile[Site](path)
	if err != nil {
		return nil, fmt.Errorf("failed to load site config: %w", err)
	}

	if err := image.ValidatePrefix(site.Registry); err != nil {
		return nil, err
	}
	if site.ImageNames == nil {
		site.ImageNames = map[string]string{}
	}

	slog.Debug("site config loaded",
		"path", path,
		"imageNames", len(site.ImageNames),
		"registry", site.Registry)

	return site, nil
}
