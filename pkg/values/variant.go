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
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	apperrors "github.com/tigera/chartdocs/pkg/errors"
)

// Variant selects a chart and the values schema it expects. The value is
// the chart directory name.
type Variant string

const (
	VariantCore               Variant = "calico"
	VariantEnterprise         Variant = "tigera-secure-ee"
	VariantOperator           Variant = "tigera-operator"
	VariantMonitoringOperator Variant = "tigera-prometheus-operator"
)

// maxSuggestionDistance bounds how far off a name may be and still get a
// "did you mean" hint.
const maxSuggestionDistance = 4

var allVariants = []Variant{
	VariantCore,
	VariantEnterprise,
	VariantOperator,
	VariantMonitoringOperator,
}

// Variants returns every supported variant.
func Variants() []Variant {
	out := make([]Variant, len(allVariants))
	copy(out, allVariants)
	return out
}

// VariantsByLength returns the variants longest name first, the order in
// which leading tokens must be matched.
func VariantsByLength() []Variant {
	out := Variants()
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i]) > len(out[j])
	})
	return out
}

// SupportedVariants returns the variant names for help text.
func SupportedVariants() []string {
	names := make([]string, 0, len(allVariants))
	for _, v := range allVariants {
		names = append(names, string(v))
	}
	return names
}

func (v Variant) String() string {
	return string(v)
}

// IsValid reports whether v is a known variant.
func (v Variant) IsValid() bool {
	for _, known := range allVariants {
		if v == known {
			return true
		}
	}
	return false
}

// Chart returns the chart directory name.
func (v Variant) Chart() string {
	return string(v)
}

// IsOperatorFamily reports whether the variant is a helm 3 operator chart.
// Those charts take --show-only instead of --execute, need a namespace and
// expect a named image pull secret.
func (v Variant) IsOperatorFamily() bool {
	return v == VariantOperator || v == VariantMonitoringOperator
}

// Namespace is the namespace operator-family charts are rendered into.
// Other variants return an empty string.
func (v Variant) Namespace() string {
	if !v.IsOperatorFamily() {
		return ""
	}
	return string(v)
}

// ParseVariant matches name exactly. Unknown names fail with the closest
// known name as a suggestion.
func ParseVariant(name string) (Variant, error) {
	v := Variant(strings.TrimSpace(name))
	if v.IsValid() {
		return v, nil
	}

	msg := fmt.Sprintf("unknown chart variant %q, supported values: %s",
		name, strings.Join(SupportedVariants(), ", "))
	if s := suggest(string(v)); s != "" {
		msg = fmt.Sprintf("%s (did you mean %q?)", msg, s)
	}
	return "", apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest, msg,
		map[string]any{"variant": name})
}

func suggest(name string) string {
	if name == "" {
		return ""
	}
	best, bestDist := "", maxSuggestionDistance+1
	for _, v := range allVariants {
		if d := levenshtein.ComputeDistance(name, string(v)); d < bestDist {
			best, bestDist = string(v), d
		}
	}
	return best
}
