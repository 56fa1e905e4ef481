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
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/tigera/chartdocs/pkg/values"
)

// Parser turns block argument strings into RenderArguments.
type Parser struct {
	lister    Lister
	chartsDir string
}

// NewParser returns a Parser that resolves --execute-dir against the chart
// directories under chartsDir.
func NewParser(lister Lister, chartsDir string) *Parser {
	return &Parser{lister: lister, chartsDir: chartsDir}
}

// Parse extracts the variant and mock flag, then expands and substitutes
// the remaining directives.
func (p *Parser) Parse(text string) (RenderArguments, error) {
	ra := RenderArguments{Variant: values.VariantCore}

	rest := strings.Fields(text)
	if len(rest) > 0 {
		if v, ok := matchVariant(rest[0]); ok {
			ra.Variant = v
			rest = rest[1:]
		}
	}
	if len(rest) > 0 && rest[0] == MockSearchBackendToken {
		ra.MockSearchBackend = true
		rest = rest[1:]
	}

	ds := Tokenize(strings.Join(rest, " "))
	ds, err := Expand(ds, p.lister, filepath.Join(p.chartsDir, ra.Variant.Chart()))
	if err != nil {
		return RenderArguments{}, err
	}
	ds = Substitute(ds, ra.Variant)
	ra.ExtraArgs = Strings(ds)
	ra.Argv = Argv(ds)

	slog.Debug("parsed render arguments",
		"variant", ra.Variant,
		"mockSearchBackend", ra.MockSearchBackend,
		"extraArgs", len(ra.ExtraArgs))

	return ra, nil
}

func matchVariant(tok string) (values.Variant, bool) {
	for _, v := range values.VariantsByLength() {
		if tok == string(v) {
			return v, true
		}
	}
	return "", false
}
