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

package args

import (
	"path"
	"strings"

	"github.com/tigera/chartdocs/pkg/values"
)

const (
	// MockSearchBackendToken enables the mock Elasticsearch overrides.
	MockSearchBackendToken = "secure-es"

	FlagExecute    = "--execute"
	FlagExecuteDir = "--execute-dir"
	FlagShowOnly   = "--show-only"

	templatesRoot = "templates"
	schemaRoot    = "crds"
)

// RenderArguments is the parsed form of a block's argument string.
type RenderArguments struct {
	Variant           values.Variant
	MockSearchBackend bool
	// ExtraArgs lists the directives in order, each a flag with its
	// attached value, e.g. "--execute a.yaml".
	ExtraArgs []string
	// Argv is ExtraArgs as command-line tokens. A file found by
	// --execute-dir stays one token even when its name has spaces.
	Argv []string
}

// Directive is one renderer argument: a flag and the text attached to it.
type Directive struct {
	Flag  string
	Value string
	// Expanded marks an execute target produced from --execute-dir. Its
	// Value is relative to the templates root, or to the schema root when
	// Schema is set, and is a single path.
	Expanded bool
	Schema   bool
}

// String renders the directive as it appears in ExtraArgs.
func (d Directive) String() string {
	if d.Value == "" {
		return d.Flag
	}
	return d.Flag + " " + d.Value
}

// Argv returns the directive as command-line tokens. Values typed by the
// user split on whitespace, expanded paths do not.
func (d Directive) Argv() []string {
	if d.Value == "" {
		return []string{d.Flag}
	}
	if d.Expanded {
		return []string{d.Flag, d.Value}
	}
	return append([]string{d.Flag}, strings.Fields(d.Value)...)
}

// Tokenize splits text on whitespace and groups each flag with the
// non-flag tokens that follow it. Tokens before the first flag become
// directives of their own. "--flag=value" is split for execute flags.
// Values are kept as typed.
func Tokenize(text string) []Directive {
	var out []Directive
	var cur *Directive

	flush := func() {
		if cur != nil {
			out = append(out, *cur)
			cur = nil
		}
	}

	for _, tok := range strings.Fields(text) {
		if strings.HasPrefix(tok, "-") {
			flush()
			flag, value := splitAssignment(tok)
			cur = &Directive{Flag: flag, Value: value}
			continue
		}
		if cur == nil {
			out = append(out, Directive{Flag: tok})
			continue
		}
		if cur.Value == "" {
			cur.Value = tok
		} else {
			cur.Value += " " + tok
		}
	}
	flush()
	return out
}

func splitAssignment(tok string) (string, string) {
	flag, value, found := strings.Cut(tok, "=")
	if found && (flag == FlagExecute || flag == FlagExecuteDir) {
		return flag, value
	}
	return tok, ""
}

// expandedDirective turns a chart-relative file path found by
// --execute-dir into an execute directive: templates/ is dropped, crds/ is
// dropped and marks a schema.
func expandedDirective(rel string) Directive {
	rel = path.Clean(rel)
	if after, ok := strings.CutPrefix(rel, schemaRoot+"/"); ok {
		return Directive{Flag: FlagExecute, Value: after, Expanded: true, Schema: true}
	}
	rel = strings.TrimPrefix(rel, templatesRoot+"/")
	return Directive{Flag: FlagExecute, Value: rel, Expanded: true}
}

// Strings renders directives for RenderArguments.ExtraArgs.
func Strings(ds []Directive) []string {
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.String())
	}
	return out
}

// Argv flattens directives into command-line tokens.
func Argv(ds []Directive) []string {
	out := make([]string, 0, 2*len(ds))
	for _, d := range ds {
		out = append(out, d.Argv()...)
	}
	return out
}
