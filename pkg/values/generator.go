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
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"text/template"

	"github.com/tigera/chartdocs/pkg/catalog"
	apperrors "github.com/tigera/chartdocs/pkg/errors"
)

const templatesRoot = "templates"

//go:embed templates/current/*.yaml.tmpl templates/v2_4/*.yaml.tmpl
var templatesFS embed.FS

var (
	// ErrMissingComponentEntry matches errors for a component or image name
	// a template needs but the request does not carry.
	ErrMissingComponentEntry = apperrors.New(apperrors.ErrCodeMissingComponent,
		"component entry missing from catalog")

	// ErrMissingSchemaGenerator matches errors for an era and variant pair
	// with no generator.
	ErrMissingSchemaGenerator = apperrors.New(apperrors.ErrCodeMissingGenerator,
		"no values generator for chart variant")
)

// Request is everything a generator reads.
type Request struct {
	Catalog    catalog.Catalog
	ImageNames map[string]string
	// Registry is prepended verbatim to internally published images.
	Registry string
	Variant  Variant
	Era      Era
	// ForDocs fills secret-like fields with instructive placeholders.
	ForDocs bool
}

// GeneratorFunc produces the values document for one era and variant.
type GeneratorFunc func(req Request) (string, error)

type generatorKey struct {
	era     Era
	variant Variant
}

// base holds every template parsed once with stub functions, named by its
// path below templates/. Each request clones it and rebinds the functions
// to its own lookups.
var base = mustParseTemplates()

func mustParseTemplates() *template.Template {
	root := template.New("values").
		Option("missingkey=error").
		Funcs((&lookups{}).funcMap())

	err := fs.WalkDir(templatesFS, templatesRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		content, err := templatesFS.ReadFile(p)
		if err != nil {
			return err
		}
		_, err = root.New(strings.TrimPrefix(p, templatesRoot+"/")).Parse(string(content))
		return err
	})
	if err != nil {
		panic(fmt.Sprintf("values: invalid embedded template: %v", err))
	}
	return root
}

var generators = map[generatorKey]GeneratorFunc{
	{EraCurrent, VariantCore}:               templateGenerator("calico.yaml.tmpl", "current"),
	{EraCurrent, VariantEnterprise}:         templateGenerator("tigera-secure-ee.yaml.tmpl", "current"),
	{EraCurrent, VariantOperator}:           templateGenerator("tigera-operator.yaml.tmpl", "current"),
	{EraCurrent, VariantMonitoringOperator}: templateGenerator("tigera-prometheus-operator.yaml.tmpl", "current"),
	{EraV2_4, VariantCore}:                  templateGenerator("calico.yaml.tmpl", "v2_4", "tail.yaml.tmpl"),
	{EraV2_4, VariantEnterprise}:            templateGenerator("tigera-secure-ee.yaml.tmpl", "v2_4", "tail.yaml.tmpl"),
}

// Generate returns the values document for req.
func Generate(req Request) (string, error) {
	if err := Supported(req.Era, req.Variant); err != nil {
		return "", err
	}
	gen := generators[generatorKey{era: req.Era, variant: req.Variant}]

	slog.Debug("generating values",
		"variant", req.Variant,
		"era", req.Era,
		"components", len(req.Catalog),
		"forDocs", req.ForDocs)

	return gen(req)
}

// Supported returns an error matching ErrMissingSchemaGenerator when no
// generator exists for era and variant.
func Supported(era Era, variant Variant) error {
	if _, ok := generators[generatorKey{era: era, variant: variant}]; ok {
		return nil
	}
	return apperrors.NewWithContext(apperrors.ErrCodeMissingGenerator,
		fmt.Sprintf("no values generator for chart %q in catalog era %s", variant, era),
		map[string]any{"variant": string(variant), "era": era.String()})
}

type templateData struct {
	Registry string
	ForDocs  bool
}

// templateGenerator executes the named templates of one era in order and
// concatenates the output.
func templateGenerator(name, era string, tail ...string) GeneratorFunc {
	names := append([]string{era + "/" + name}, prefixed(era, tail)...)
	return func(req Request) (string, error) {
		l := &lookups{req: req}
		t, err := base.Clone()
		if err != nil {
			return "", apperrors.Wrap(apperrors.ErrCodeInternal, "failed to clone values templates", err)
		}
		t.Funcs(l.funcMap())

		data := templateData{Registry: req.Registry, ForDocs: req.ForDocs}
		var buf bytes.Buffer
		for _, n := range names {
			if err := t.ExecuteTemplate(&buf, n, data); err != nil {
				if l.missing != nil {
					return "", l.missing
				}
				return "", apperrors.WrapWithContext(apperrors.ErrCodeInternal,
					"failed to execute values template", err, map[string]any{"template": n})
			}
		}
		return buf.String(), nil
	}
}

func prefixed(era string, names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, era+"/"+n)
	}
	return out
}
