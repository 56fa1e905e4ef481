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

// Package version parses release identifiers such as "v2.4" or "v3.0.1"
// and compares them with precision awareness: "v2.4" covers every v2.4.x.
package version

import (
	"cmp"
	"fmt"
	"sort"
	"strconv"
	"strings"

	apperrors "github.com/tigera/chartdocs/pkg/errors"
)

const maxPrecision = 3

// ErrInvalidVersion matches every parse failure via errors.Is.
var ErrInvalidVersion = apperrors.New(apperrors.ErrCodeInvalidRequest, "invalid release version")

// Version is a release line or release number.
type Version struct {
	Major int
	Minor int
	Patch int

	// Precision is the number of significant components, 1 to 3.
	Precision int

	// Suffix holds a pre-release or build suffix such as "-1" or "+ee".
	Suffix string
}

// String renders the significant components with a "v" prefix. The suffix
// is dropped.
func (v Version) String() string {
	switch v.Precision {
	case 1:
		return fmt.Sprintf("v%d", v.Major)
	case 2:
		return fmt.Sprintf("v%d.%d", v.Major, v.Minor)
	default:
		return fmt.Sprintf("v%d.%d.%d", v.Major, v.Minor, v.Patch)
	}
}

// Parse accepts "3", "2.4" or "3.0.1", each with an optional "v" prefix.
// A "-" or "+" after the first character starts the suffix.
func Parse(s string) (Version, error) {
	var v Version

	body := strings.TrimPrefix(s, "v")
	if i := strings.IndexAny(body, "-+"); i > 0 {
		body, v.Suffix = body[:i], body[i:]
	}

	parts := strings.Split(body, ".")
	if body == "" || len(parts) > maxPrecision {
		return Version{}, invalid(s, "expected one to three dot-separated numbers")
	}

	nums := make([]int, maxPrecision)
	for i, p := range parts {
		if !allDigits(p) {
			return Version{}, invalid(s, fmt.Sprintf("component %q is not a number", p))
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return Version{}, invalid(s, err.Error())
		}
		nums[i] = n
	}

	v.Major, v.Minor, v.Patch = nums[0], nums[1], nums[2]
	v.Precision = len(parts)
	return v, nil
}

// MustParse is Parse for constants. It panics on error.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

func invalid(s, reason string) error {
	return apperrors.NewWithContext(apperrors.ErrCodeInvalidRequest,
		fmt.Sprintf("invalid release version %q: %s", s, reason),
		map[string]any{"release": s})
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Compare returns -1, 0 or 1. Only components significant in both versions
// take part, so v2.4 compares equal to v2.4.7.
func (v Version) Compare(other Version) int {
	a := [maxPrecision]int{v.Major, v.Minor, v.Patch}
	b := [maxPrecision]int{other.Major, other.Minor, other.Patch}
	for i := 0; i < min(v.Precision, other.Precision); i++ {
		if c := cmp.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}

// AtMost reports whether v is older than or within limit.
func (v Version) AtMost(limit Version) bool {
	return v.Compare(limit) <= 0
}

// SortLines orders release-line keys newest first. Keys that are not
// versions, such as "master", come first in alphabetical order.
func SortLines(lines []string) {
	sort.SliceStable(lines, func(i, j int) bool {
		vi, ei := Parse(lines[i])
		vj, ej := Parse(lines[j])
		switch {
		case ei != nil && ej != nil:
			return lines[i] < lines[j]
		case ei != nil:
			return true
		case ej != nil:
			return false
		}
		if c := vi.Compare(vj); c != 0 {
			return c > 0
		}
		// same significant components: more precise first
		return vi.Precision > vj.Precision
	})
}
