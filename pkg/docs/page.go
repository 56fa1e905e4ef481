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

package docs

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	apperrors "github.com/tigera/chartdocs/pkg/errors"
	"github.com/tigera/chartdocs/pkg/image"
)

var (
	blockPattern       = regexp.MustCompile(`(?s)\{%-?\s*helm\b(.*?)-?%\}(.*?)\{%-?\s*endhelm\s*-?%\}`)
	frontMatterPattern = regexp.MustCompile(`(?s)\A---\r?\n(.*?)\r?\n---\r?\n`)
)

// frontMatter is the subset of page front matter the handler reads.
type frontMatter struct {
	Version  string `yaml:"version"`
	Registry string `yaml:"registry"`
}

// PageFromDocument builds a Page for id from the document's YAML front
// matter. A document without front matter yields a Page with only the ID.
func PageFromDocument(id, text string) (Page, error) {
	page := Page{ID: id}
	m := frontMatterPattern.FindStringSubmatch(text)
	if m == nil {
		return page, nil
	}

	var fm frontMatter
	if err := yaml.Unmarshal([]byte(m[1]), &fm); err != nil {
		return page, apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest,
			"failed to parse front matter", err, map[string]any{"page": id})
	}
	if err := image.ValidatePrefix(fm.Registry); err != nil {
		return page, fmt.Errorf("front matter of %s: %w", id, err)
	}
	page.Version = fm.Version
	page.Registry = fm.Registry
	return page, nil
}

// RenderPage replaces every helm block in text with its rendered manifest.
// Blocks render in document order and the first failure aborts the page.
func (h *Handler) RenderPage(ctx context.Context, page Page, text string) (string, error) {
	matches := blockPattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text, nil
	}

	var b strings.Builder
	last := 0
	for i, m := range matches {
		argsText := strings.TrimSpace(text[m[2]:m[3]])
		content := text[m[4]:m[5]]

		block, err := h.RegisterBlock(argsText)
		if err != nil {
			return "", fmt.Errorf("block %d of %s: %w", i+1, page.ID, err)
		}

		out, err := h.Render(ctx, page, block, content)
		if err != nil {
			return "", fmt.Errorf("block %d of %s: %w", i+1, page.ID, err)
		}
		slog.Debug("block rendered",
			"page", page.ID,
			"block", i+1,
			"chart", block.Args.Variant.Chart(),
			"bytes", len(out),
		)

		b.WriteString(text[last:m[0]])
		b.WriteString(out)
		last = m[1]
	}
	b.WriteString(text[last:])
	return b.String(), nil
}
