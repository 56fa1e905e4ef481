// Package helm invokes the external chart renderer for documentation blocks.
//
// A render writes the generated values document and the block content to
// scoped temp files, builds a "helm template" command line (helm3 for the
// operator charts, which also take a release name, a pull secret placeholder
// and a namespace) and captures stdout, stderr and the exit code separately
// through a Runner. A non-zero exit becomes an *ExternalToolError that names
// the page.
//
// Usage:
//
//	r := helm.NewRenderer(helm.Config{
//	    ChartsDir: "_includes/charts",
//	    HelmPath:  "helm",
//	    Helm3Path: "helm3",
//	})
//	manifest, err := r.Render(ctx, helm.Request{
//	    PageID:  "getting-started/install.md",
//	    Content: block,
//	    Values:  doc,
//	    Args:    ra,
//	})
//
// Summarize lists the objects in a rendered manifest.
package helm
