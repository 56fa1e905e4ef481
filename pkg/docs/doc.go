// Package docs renders chart manifests for documentation pages.
//
// A Handler is built from the tool settings and the site config. Each
// content block registers its argument text once, then renders per page:
// the catalog is resolved for the page's release line, a values document is
// generated for the block's chart variant and era, and the external
// renderer is run with the block content layered on top.
//
//	h := docs.NewHandler(*settings, *site)
//	block, err := h.RegisterBlock("tigera-operator --execute-dir crds")
//	out, err := h.Render(ctx, docs.Page{ID: "install.md", Version: "v3.20"}, block, content)
//
// RenderPage does the same for every {% helm ... %} ... {% endhelm %} block
// in a document.
package docs
