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

package helm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/tigera/chartdocs/pkg/args"
	apperrors "github.com/tigera/chartdocs/pkg/errors"
	"github.com/tigera/chartdocs/pkg/values"
)

// Config locates the charts and the renderer binaries.
type Config struct {
	ChartsDir string
	HelmPath  string
	Helm3Path string
}

// Request is one content block to render.
type Request struct {
	// PageID identifies the page the block came from, for error attribution.
	PageID string
	// Content is the block body, applied as the highest precedence values file.
	Content string
	// Values is the generated values document.
	Values string
	Args   args.RenderArguments
}

// Renderer runs the external chart renderer for content blocks.
type Renderer struct {
	cfg     Config
	fs      afero.Fs
	runner  Runner
	tempDir string
}

// Option is a functional option for configuring Renderer instances.
type Option func(*Renderer)

// WithFs sets the filesystem used for temp files. The renderer reads them
// from disk, so anything but the OS filesystem is only useful in tests.
func WithFs(fs afero.Fs) Option {
	return func(r *Renderer) {
		r.fs = fs
	}
}

// WithRunner replaces the process runner.
func WithRunner(runner Runner) Option {
	return func(r *Renderer) {
		r.runner = runner
	}
}

// WithTempDir sets the directory for temp files. Empty means the OS default.
func WithTempDir(dir string) Option {
	return func(r *Renderer) {
		r.tempDir = dir
	}
}

// NewRenderer creates a Renderer with the OS filesystem and ExecRunner
// unless overridden.
func NewRenderer(cfg Config, opts ...Option) *Renderer {
	r := &Renderer{
		cfg:    cfg,
		fs:     afero.NewOsFs(),
		runner: ExecRunner{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render writes the block content and the values document to temp files,
// invokes the renderer and returns its stdout. The temp files are removed
// before Render returns.
func (r *Renderer) Render(ctx context.Context, req Request) (string, error) {
	id := uuid.New().String()
	chart := chartLabel(req.Args.Variant)
	start := time.Now()

	valuesPath, cleanupValues, err := r.writeTemp(id, "values", req.Values)
	if err != nil {
		renderFailures.WithLabelValues(chart, reasonTempFile).Inc()
		return "", err
	}
	defer cleanupValues()

	contentPath, cleanupContent, err := r.writeTemp(id, "content", req.Content)
	if err != nil {
		renderFailures.WithLabelValues(chart, reasonTempFile).Inc()
		return "", err
	}
	defer cleanupContent()

	inv := BuildInvocation(r.cfg, req.Args, valuesPath, contentPath)
	slog.Debug("invoking renderer",
		"id", id,
		"page", req.PageID,
		"command", inv.String(),
	)

	res, err := r.runner.Run(ctx, inv.Command, inv.Args)
	renderDuration.WithLabelValues(chart).Observe(time.Since(start).Seconds())
	if err != nil {
		renderFailures.WithLabelValues(chart, reasonStart).Inc()
		return "", apperrors.WrapWithContext(apperrors.ErrCodeExternalTool,
			fmt.Sprintf("failed to run %s", inv.Command), err,
			map[string]any{"page": req.PageID, "id": id})
	}

	if res.ExitCode != 0 {
		renderFailures.WithLabelValues(chart, reasonExit).Inc()
		stderr := strings.TrimSpace(string(res.Stderr))
		slog.Error("renderer failed",
			"id", id,
			"page", req.PageID,
			"exitCode", res.ExitCode,
			"stderr", stderr,
		)
		return "", &ExternalToolError{
			PageID:   req.PageID,
			Command:  inv.Command,
			ExitCode: res.ExitCode,
			Stderr:   stderr,
		}
	}

	out := string(res.Stdout)
	if slog.Default().Enabled(ctx, slog.LevelDebug) {
		r.logSummary(id, req.PageID, out)
	}
	return out, nil
}

func (r *Renderer) writeTemp(id, kind, data string) (string, func(), error) {
	f, err := afero.TempFile(r.fs, r.tempDir, fmt.Sprintf("chartdocs-%s-%s-*.yaml", id, kind))
	if err != nil {
		return "", nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to create temp file", err)
	}
	name := f.Name()
	cleanup := func() {
		if rmErr := r.fs.Remove(name); rmErr != nil {
			slog.Warn("failed to remove temp file", "path", name, "error", rmErr)
		}
	}

	if _, err := f.WriteString(data); err != nil {
		_ = f.Close()
		cleanup()
		return "", nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to write temp file", err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to close temp file", err)
	}
	return name, cleanup, nil
}

func (r *Renderer) logSummary(id, page, manifest string) {
	refs, err := Summarize(manifest)
	if err != nil {
		slog.Debug("could not summarize rendered manifest", "id", id, "error", err)
		return
	}
	objs := make([]string, 0, len(refs))
	for _, ref := range refs {
		objs = append(objs, ref.String())
	}
	slog.Debug("rendered manifest",
		"id", id,
		"page", page,
		"count", len(refs),
		"objects", objs,
	)
}

func chartLabel(v values.Variant) string {
	if v == "" {
		return values.VariantCore.Chart()
	}
	return v.Chart()
}
