package docs

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tigera/chartdocs/pkg/args"
	"github.com/tigera/chartdocs/pkg/catalog"
	"github.com/tigera/chartdocs/pkg/config"
	apperrors "github.com/tigera/chartdocs/pkg/errors"
	"github.com/tigera/chartdocs/pkg/helm"
	"github.com/tigera/chartdocs/pkg/values"
)

type fakeRenderer struct {
	requests []helm.Request
	out      string
	err      error
}

func (f *fakeRenderer) Render(_ context.Context, req helm.Request) (string, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return "", f.err
	}
	return f.out, nil
}

func newTestHandler(t *testing.T, settings config.Settings, r BlockRenderer) *Handler {
	t.Helper()

	site, err := config.LoadSite("testdata/_config.yml")
	require.NoError(t, err)

	fs := afero.NewMemMapFs()
	for _, f := range []string{
		"/charts/tigera-secure-ee/templates/calico/calico-node.yaml",
		"/charts/tigera-secure-ee/templates/calico/typha.yaml",
		"/charts/tigera-operator/crds/operator.tigera.io_installations.yaml",
	} {
		require.NoError(t, afero.WriteFile(fs, f, []byte("x"), 0o644))
	}

	return NewHandler(settings, *site,
		WithRenderer(r),
		WithParser(args.NewParser(args.NewFSLister(fs), "/charts")),
		WithCatalogLoader(func() (any, error) {
			return catalog.LoadFile(filepath.Join("testdata", "versions.yml"))
		}),
	)
}

func TestRender_PassesGeneratedValues(t *testing.T) {
	r := &fakeRenderer{out: "kind: DaemonSet\n"}
	h := newTestHandler(t, config.Settings{}, r)

	block, err := h.RegisterBlock("tigera-secure-ee --execute-dir templates/calico")
	require.NoError(t, err)
	assert.Equal(t, values.VariantEnterprise, block.Args.Variant)

	out, err := h.Render(context.Background(), Page{ID: "install.md", Version: "v3.20"}, block, "foo: bar\n")
	require.NoError(t, err)
	assert.Equal(t, "kind: DaemonSet\n", out)

	require.Len(t, r.requests, 1)
	req := r.requests[0]
	assert.Equal(t, "install.md", req.PageID)
	assert.Equal(t, "foo: bar\n", req.Content)
	assert.Contains(t, req.Values, "gcr.io/unique-caldron-775/cnx/tigera/cnx-manager")
	assert.Equal(t, []string{
		"--execute calico/calico-node.yaml",
		"--execute calico/typha.yaml",
	}, req.Args.ExtraArgs)
}

func TestRender_LegacyEra(t *testing.T) {
	r := &fakeRenderer{}
	h := newTestHandler(t, config.Settings{}, r)

	block, err := h.RegisterBlock("")
	require.NoError(t, err)

	_, err = h.Render(context.Background(), Page{ID: "p", Version: "v2.4"}, block, "")
	require.NoError(t, err)
	require.Len(t, r.requests, 1)
	assert.Contains(t, r.requests[0].Values, "v2.4.2")
}

func TestRender_RegistryPrecedence(t *testing.T) {
	tests := []struct {
		name     string
		settings config.Settings
		page     Page
		want     string
	}{
		{"site", config.Settings{}, Page{Version: "v3.20"}, "gcr.io/unique-caldron-775/cnx/tigera/cnx-node"},
		{"settings", config.Settings{Registry: "quay.io/"}, Page{Version: "v3.20"}, "quay.io/tigera/cnx-node"},
		{"page", config.Settings{Registry: "quay.io/"}, Page{Version: "v3.20", Registry: "example.com/"}, "example.com/tigera/cnx-node"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, tt.settings, &fakeRenderer{})
			doc, err := h.Values(tt.page, values.VariantCore, true)
			require.NoError(t, err)
			assert.Contains(t, doc, "image: "+tt.want+"\n")
		})
	}
}

func TestRender_MissingVersion(t *testing.T) {
	block := &Block{Args: args.RenderArguments{Variant: values.VariantCore}}
	page := Page{ID: "p", Version: "v9"}

	t.Run("propagates", func(t *testing.T) {
		r := &fakeRenderer{}
		h := newTestHandler(t, config.Settings{}, r)
		_, err := h.Render(context.Background(), page, block, "")
		require.Error(t, err)
		assert.True(t, errors.Is(err, catalog.ErrCatalogVersionNotFound))
		assert.Empty(t, r.requests)
	})

	t.Run("suppressed", func(t *testing.T) {
		r := &fakeRenderer{}
		h := newTestHandler(t, config.Settings{SuppressMissingVersion: true}, r)
		out, err := h.Render(context.Background(), page, block, "")
		require.NoError(t, err)
		assert.Empty(t, out)
		assert.Empty(t, r.requests)
	})
}

func TestRender_SuppressionOnlyCoversMissingVersion(t *testing.T) {
	r := &fakeRenderer{}
	h := newTestHandler(t, config.Settings{SuppressMissingVersion: true}, r)

	// v2.4 has no operator generator.
	block := &Block{Args: args.RenderArguments{Variant: values.VariantOperator}}
	_, err := h.Render(context.Background(), Page{ID: "p", Version: "v2.4"}, block, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, values.ErrMissingSchemaGenerator))
}

func TestValues_UnsupportedPairSkipsCatalog(t *testing.T) {
	site, err := config.LoadSite("testdata/_config.yml")
	require.NoError(t, err)

	loads := 0
	h := NewHandler(config.Settings{}, *site,
		WithRenderer(&fakeRenderer{}),
		WithCatalogLoader(func() (any, error) {
			loads++
			return catalog.LoadFile(filepath.Join("testdata", "versions.yml"))
		}),
	)

	_, err = h.Values(Page{ID: "p", Version: "v2.4"}, values.VariantMonitoringOperator, true)
	require.Error(t, err)
	assert.True(t, errors.Is(err, values.ErrMissingSchemaGenerator))
	assert.Zero(t, loads, "catalog must not be loaded for an unsupported pair")

	_, err = h.Values(Page{ID: "p", Version: "v2.4"}, values.VariantCore, true)
	require.NoError(t, err)
	assert.Equal(t, 1, loads)
}

func TestRender_RendererErrorPropagates(t *testing.T) {
	toolErr := &helm.ExternalToolError{PageID: "p", ExitCode: 1, Stderr: "template: error"}
	h := newTestHandler(t, config.Settings{}, &fakeRenderer{err: toolErr})

	block, err := h.RegisterBlock("calico")
	require.NoError(t, err)
	_, err = h.Render(context.Background(), Page{ID: "p", Version: "v3.20"}, block, "")
	assert.True(t, errors.Is(err, helm.ErrExternalTool))
}

func TestRegisterBlock_Error(t *testing.T) {
	h := newTestHandler(t, config.Settings{}, &fakeRenderer{})
	_, err := h.RegisterBlock("calico --execute-dir templates/missing")
	assert.Error(t, err)
}

func TestRenderPage(t *testing.T) {
	r := &fakeRenderer{out: "RENDERED"}
	h := newTestHandler(t, config.Settings{}, r)

	text := strings.Join([]string{
		"# Install",
		"{% helm tigera-operator --execute-dir crds %}",
		"installation:",
		"  kubernetesProvider: EKS",
		"{% endhelm %}",
		"between",
		"{%- helm calico -%}{%- endhelm -%}",
		"end",
	}, "\n")

	out, err := h.RenderPage(context.Background(), Page{ID: "install.md", Version: "v3.20"}, text)
	require.NoError(t, err)
	assert.Equal(t, "# Install\nRENDERED\nbetween\nRENDERED\nend", out)

	require.Len(t, r.requests, 2)
	assert.Equal(t, values.VariantOperator, r.requests[0].Args.Variant)
	assert.Equal(t, []string{"--show-only operator.tigera.io_installations.yaml"}, r.requests[0].Args.ExtraArgs)
	assert.Equal(t, "\ninstallation:\n  kubernetesProvider: EKS\n", r.requests[0].Content)
	assert.Equal(t, values.VariantCore, r.requests[1].Args.Variant)
}

func TestRenderPage_NoBlocks(t *testing.T) {
	h := newTestHandler(t, config.Settings{}, &fakeRenderer{})
	out, err := h.RenderPage(context.Background(), Page{ID: "p"}, "plain text")
	require.NoError(t, err)
	assert.Equal(t, "plain text", out)
}

func TestRenderPage_ErrorNamesBlock(t *testing.T) {
	h := newTestHandler(t, config.Settings{}, &fakeRenderer{})
	_, err := h.RenderPage(context.Background(), Page{ID: "page.md", Version: "v9"}, "{% helm %}{% endhelm %}")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "block 1 of page.md")
	assert.True(t, errors.Is(err, catalog.ErrCatalogVersionNotFound))
}

func TestPageFromDocument(t *testing.T) {
	page, err := PageFromDocument("a.md", "---\ntitle: Install\nversion: v3.20\nregistry: quay.io/\n---\nbody\n")
	require.NoError(t, err)
	assert.Equal(t, Page{ID: "a.md", Version: "v3.20", Registry: "quay.io/"}, page)

	page, err = PageFromDocument("b.md", "no front matter")
	require.NoError(t, err)
	assert.Equal(t, Page{ID: "b.md"}, page)

	_, err = PageFromDocument("c.md", "---\nversion: [\n---\n")
	assert.Error(t, err)

	_, err = PageFromDocument("d.md", "---\nversion: v3.20\nregistry: \"Not A Registry/\"\n---\nbody\n")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInvalidRequest, apperrors.CodeOf(err))
}
