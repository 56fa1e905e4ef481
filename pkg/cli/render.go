/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/tigera/chartdocs/pkg/docs"
	"github.com/tigera/chartdocs/pkg/helm"
	"github.com/tigera/chartdocs/pkg/serializer"
)

func renderCmd() *cli.Command {
	return &cli.Command{
		Name:                  "render",
		EnableShellCompletion: true,
		Usage:                 "Render a single content block",
		Description: `Renders one content block the way a {% helm %} tag on a page would.
--args takes the tag's argument text: an optional chart variant, the
secure-es token for a mock Elasticsearch backend, then renderer flags.
--execute-dir expands to one --execute per file in that chart directory.

# Examples

  chartdocs render --release v3.20 --args "tigera-operator --execute-dir crds"
  chartdocs render -r v3.20 --args "tigera-secure-ee secure-es" --file block.yaml
  chartdocs render -r v3.20 --file - --summary --format table < block.yaml`,
		Flags: []cli.Flag{
			releaseFlag(),
			&cli.StringFlag{
				Name:    "args",
				Aliases: []string{"a"},
				Usage:   "block argument text",
			},
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "block content file, - for stdin (default: empty content)",
			},
			&cli.StringFlag{
				Name:  "page",
				Usage: "page identifier used in errors and logs (default: the content file)",
			},
			&cli.BoolFlag{
				Name:  "summary",
				Usage: "print the objects in the rendered manifest instead of the manifest",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			h, _, err := newHandler(cmd)
			if err != nil {
				return err
			}

			block, err := h.RegisterBlock(cmd.String("args"))
			if err != nil {
				return fmt.Errorf("invalid block arguments: %w", err)
			}

			var content string
			if f := cmd.String("file"); f != "" {
				if content, err = readInput(cmd, f); err != nil {
					return err
				}
			}

			page := docs.Page{ID: cmd.String("page"), Version: cmd.String("release")}
			if page.ID == "" {
				page.ID = cmd.String("file")
			}

			out, err := h.Render(ctx, page, block, content)
			if err != nil {
				return err
			}

			if !cmd.Bool("summary") {
				return writeText(cmd, cmd.String("output"), out)
			}
			return writeSummary(ctx, cmd, out)
		},
	}
}

func writeSummary(ctx context.Context, cmd *cli.Command, manifest string) error {
	outFormat, err := parseOutputFormat(cmd)
	if err != nil {
		return err
	}

	refs, err := helm.Summarize(manifest)
	if err != nil {
		return err
	}

	ser, err := serializer.NewFileWriter(outFormat, cmd.String("output"), cmd.Root().Writer)
	if err != nil {
		return err
	}
	defer func() {
		if err := ser.Close(); err != nil {
			slog.Warn("failed to close serializer", "error", err)
		}
	}()

	return ser.Serialize(ctx, refs)
}
