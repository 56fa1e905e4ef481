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
	"github.com/tigera/chartdocs/pkg/version"
)

// Era identifies a generation of the catalog and chart schema.
type Era int

const (
	// EraCurrent catalogs carry image descriptors and cover all four charts.
	EraCurrent Era = iota
	// EraV2_4 catalogs carry bare versions; image names come from the site
	// image-name table. Only the core and enterprise charts exist.
	EraV2_4
)

var lastLegacyLine = version.MustParse("v2.4")

func (e Era) String() string {
	switch e {
	case EraV2_4:
		return "v2.4"
	case EraCurrent:
		return "current"
	default:
		return "unknown"
	}
}

// EraFor maps a release line to its schema era. Lines up to and including
// v2.4 are legacy. Unparsable lines such as "master" are current.
func EraFor(releaseLine string) Era {
	v, err := version.Parse(releaseLine)
	if err != nil {
		return EraCurrent
	}
	if v.AtMost(lastLegacyLine) {
		return EraV2_4
	}
	return EraCurrent
}
