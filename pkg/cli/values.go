/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/tigera/chartdocs/pkg/docs"
	"github.com/tigera/chartdocs/pkg/values"
)

func variantFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "variant",
		Aliases: []string{"c"},
		Value:   values.VariantCore.String(),
		Usage:   fmt.Sprintf("chart variant (supported values: %v)", values.SupportedVariants()),
	}
}

func valuesCmd() *cli.Command {
	return &cli.Command{
		Name:                  "values",
		EnableShellCompletion: true,
		Usage:                 "Generate the values document for a chart variant",
		Description: `Resolves the catalog for a release line and prints the Helm values
document for the chosen chart variant. Without --for-docs the output is meant
for real installs: documentation placeholders are left blank and the operator
namespace is omitted.

# Examples

  chartdocs values --release v3.20 --variant tigera-secure-ee
  chartdocs values -r v3.20 -c tigera-operator --registry quay.io/ -o values.yaml`,
		Flags: []cli.Flag{
			releaseFlag(),
			variantFlag(),
			&cli.BoolFlag{
				Name:  "for-docs",
				Usage: "render documentation placeholders",
			},
			outputFlag(),
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			variant, err := parseVariant(cmd)
			if err != nil {
				return err
			}

			h, _, err := newHandler(cmd)
			if err != nil {
				return err
			}

			doc, err := h.Values(docs.Page{ID: "values", Version: cmd.String("release")}, variant, cmd.Bool("for-docs"))
			if err != nil {
				return fmt.Errorf("failed to generate values for %s: %w", variant, err)
			}
			return writeText(cmd, cmd.String("output"), doc)
		},
	}
}
