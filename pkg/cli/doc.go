// Package cli implements the chartdocs command-line interface.
//
// # Overview
//
// chartdocs renders chart manifests for versioned documentation. It resolves a
// release line from the version catalog, generates the values document for a
// chart variant and runs "helm template" with the content block layered on
// top.
//
// # Commands
//
// values - Generate a values document:
//
//	chartdocs values --release v3.20 --variant tigera-secure-ee [--for-docs] [--output FILE]
//
// catalog - Print the resolved catalog:
//
//	chartdocs catalog --release v3.20 [--format yaml|json|table]
//	chartdocs catalog --lines
//
// render - Render one content block:
//
//	chartdocs render --release v3.20 --args "tigera-operator --execute-dir crds" --file block.yaml [--summary]
//
// page - Render every {% helm %} block in a document:
//
//	chartdocs page [--release v3.20] [--metrics-file FILE] install.md
//
// # Global Flags
//
//	--config                    Config file (default $HOME/.chartdocs.yaml or ./.chartdocs.yaml)
//	--log-level                 debug, info, warn, error
//	--charts-dir                Directory holding one chart per variant
//	--helm, --helm3             Renderer binaries
//	--catalog                   Version catalog file
//	--site-config               Site config with imageNames and registry
//	--registry                  Registry prefix override
//	--suppress-missing-version  Render blocks for unknown release lines as empty
//
// Every global flag can also be set with a CHARTDOCS_ environment variable,
// e.g. CHARTDOCS_CHARTS_DIR, or in the config file under the flag's name.
// When no log level is set that way, LOG_LEVEL applies.
package cli
