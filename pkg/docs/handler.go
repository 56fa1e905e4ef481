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
	"errors"
	"log/slog"

	"github.com/tigera/chartdocs/pkg/args"
	"github.com/tigera/chartdocs/pkg/catalog"
	"github.com/tigera/chartdocs/pkg/config"
	apperrors "github.com/tigera/chartdocs/pkg/errors"
	"github.com/tigera/chartdocs/pkg/helm"
	"github.com/tigera/chartdocs/pkg/values"
)

// Page carries the metadata a block needs from its surrounding page.
type Page struct {
	// ID names the page in errors and logs, usually its path.
	ID string
	// Version is the requested release line, e.g. "v3.20" or "master".
	Version string
	// Registry overrides the configured registry prefix when set.
	Registry string
}

// Block is a registered content block with its arguments parsed once.
type Block struct {
	Text string
	Args args.RenderArguments
}

// CatalogLoader returns the raw, undecoded version catalog.
type CatalogLoader func() (any, error)

// BlockRenderer renders one block through the external renderer.
type BlockRenderer interface {
	Render(ctx context.Context, req helm.Request) (string, error)
}

// Handler binds catalog resolution, values generation, argument rewriting
// and rendering for documentation blocks.
type Handler struct {
	settings    config.Settings
	site        config.Site
	renderer    BlockRenderer
	parser      *args.Parser
	loadCatalog CatalogLoader
}

// Option is a functional option for configuring Handler instances.
type Option func(*Handler)

// WithRenderer replaces the block renderer.
func WithRenderer(r BlockRenderer) Option {
	return func(h *Handler) {
		h.renderer = r
	}
}

// WithParser replaces the argument parser.
func WithParser(p *args.Parser) Option {
	return func(h *Handler) {
		h.parser = p
	}
}

// WithCatalogLoader replaces the catalog source.
func WithCatalogLoader(l CatalogLoader) Option {
	return func(h *Handler) {
		h.loadCatalog = l
	}
}

// NewHandler creates a Handler. Without options it reads the catalog from
// settings.CatalogPath on every render, lists chart directories on the OS
// filesystem and shells out to helm.
func NewHandler(settings config.Settings, site config.Site, opts ...Option) *Handler {
	h := &Handler{
		settings: settings,
		site:     site,
	}
	for _, opt := range opts {
		opt(h)
	}

	if h.renderer == nil {
		h.renderer = helm.NewRenderer(helm.Config{
			ChartsDir: settings.ChartsDir,
			HelmPath:  settings.HelmPath,
			Helm3Path: settings.Helm3Path,
		})
	}
	if h.parser == nil {
		h.parser = args.NewParser(args.NewFSLister(nil), settings.ChartsDir)
	}
	if h.loadCatalog == nil {
		path := settings.CatalogPath
		h.loadCatalog = func() (any, error) {
			return catalog.LoadFile(path)
		}
	}
	return h
}

// RegisterBlock parses the block's trailing argument text.
func (h *Handler) RegisterBlock(argsText string) (*Block, error) {
	ra, err := h.parser.Parse(argsText)
	if err != nil {
		return nil, err
	}
	return &Block{Text: argsText, Args: ra}, nil
}

// Render produces the manifest for one block on page. When the page's
// release line is missing from the catalog and suppression is enabled the
// block renders as empty output.
func (h *Handler) Render(ctx context.Context, page Page, block *Block, content string) (string, error) {
	doc, err := h.Values(page, block.Args.Variant, true)
	if err != nil {
		if errors.Is(err, catalog.ErrCatalogVersionNotFound) && h.settings.SuppressMissingVersion {
			slog.Warn("release line not in catalog, skipping block",
				append([]any{"page", page.ID}, apperrors.Attrs(err)...)...)
			return "", nil
		}
		return "", err
	}

	return h.renderer.Render(ctx, helm.Request{
		PageID:  page.ID,
		Content: content,
		Values:  doc,
		Args:    block.Args,
	})
}

// Values generates the values document for variant on page.
func (h *Handler) Values(page Page, variant values.Variant, forDocs bool) (string, error) {
	if variant == "" {
		variant = values.VariantCore
	}
	era := values.EraFor(page.Version)
	if err := values.Supported(era, variant); err != nil {
		return "", err
	}

	raw, err := h.loadCatalog()
	if err != nil {
		return "", err
	}

	cat, err := catalog.Resolve(raw, page.Version)
	if err != nil {
		return "", err
	}

	return values.Generate(values.Request{
		Catalog:    cat,
		ImageNames: h.site.ImageNames,
		Registry:   h.registryFor(page),
		Variant:    variant,
		Era:        era,
		ForDocs:    forDocs,
	})
}

func (h *Handler) registryFor(page Page) string {
	switch {
	case page.Registry != "":
		return page.Registry
	case h.settings.Registry != "":
		return h.settings.Registry
	default:
		return h.site.Registry
	}
}
