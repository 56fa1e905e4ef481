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

package version

import (
	"errors"
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Version
		wantErr bool
	}{
		{name: "major only", input: "v3", want: Version{Major: 3, Precision: 1}},
		{name: "release line", input: "v2.4", want: Version{Major: 2, Minor: 4, Precision: 2}},
		{name: "release", input: "3.0.1", want: Version{Major: 3, Patch: 1, Precision: 3}},
		{name: "pre-release suffix", input: "v3.0.1-2", want: Version{Major: 3, Patch: 1, Precision: 3, Suffix: "-2"}},
		{name: "build suffix", input: "v2.4+ee", want: Version{Major: 2, Minor: 4, Precision: 2, Suffix: "+ee"}},
		{name: "empty", input: "", wantErr: true},
		{name: "bare prefix", input: "v", wantErr: true},
		{name: "named line", input: "master", wantErr: true},
		{name: "too many", input: "1.2.3.4", wantErr: true},
		{name: "empty component", input: "1..2", wantErr: true},
		{name: "negative", input: "-1", wantErr: true},
		{name: "signed component", input: "1.+2", wantErr: true},
		{name: "whitespace", input: " 1.2", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidVersion) {
					t.Fatalf("Parse(%q) error = %v, want ErrInvalidVersion", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	for in, want := range map[string]string{
		"3":        "v3",
		"v2.4":     "v2.4",
		"v3.0.1-2": "v3.0.1",
	} {
		if got := MustParse(in).String(); got != want {
			t.Errorf("MustParse(%q).String() = %q, want %q", in, got, want)
		}
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"v2.4", "v2.4.7", 0},
		{"v2.4", "v2.5", -1},
		{"v3.0", "v2.6", 1},
		{"v3", "v3.9.1", 0},
		{"1.2.3", "1.2.4", -1},
		{"1.10", "1.9", 1},
	}
	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			if got := MustParse(tt.a).Compare(MustParse(tt.b)); got != tt.want {
				t.Errorf("Compare(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestAtMost(t *testing.T) {
	limit := MustParse("v2.4")
	tests := map[string]bool{
		"v2.4":   true,
		"v2.4.9": true,
		"v2.3":   true,
		"v2":     true,
		"v2.5":   false,
		"v3.0":   false,
	}
	for in, want := range tests {
		if got := MustParse(in).AtMost(limit); got != want {
			t.Errorf("%s.AtMost(v2.4) = %v, want %v", in, got, want)
		}
	}
}

func TestSortLines(t *testing.T) {
	lines := []string{"v2.4", "master", "v3.0", "v2.10", "v2.6", "nightly", "v3.0.1"}
	SortLines(lines)

	want := []string{"master", "nightly", "v3.0.1", "v3.0", "v2.10", "v2.6", "v2.4"}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("SortLines() = %v, want %v", lines, want)
	}
}

func TestMustParse_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid version")
		}
	}()
	MustParse("not-a-version")
}
