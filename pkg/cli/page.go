/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"

	"github.com/tigera/chartdocs/pkg/docs"
)

func pageCmd() *cli.Command {
	return &cli.Command{
		Name:                  "page",
		EnableShellCompletion: true,
		Usage:                 "Render every helm block in a document",
		ArgsUsage:             "<file>",
		Description: `Scans a document for {% helm <args> %} ... {% endhelm %} blocks, renders
each one in order and writes the document with every block replaced by its
manifest. The release line and registry are read from the document's front
matter ("version" and "registry" keys) unless --release is given.

# Examples

  chartdocs page getting-started/install.md
  chartdocs page --release v3.20 -o out/install.md getting-started/install.md
  chartdocs page --metrics-file /var/lib/node_exporter/chartdocs.prom install.md`,
		Flags: []cli.Flag{
			releaseFlag(),
			outputFlag(),
			&cli.StringFlag{
				Name:  "metrics-file",
				Usage: "write render metrics in Prometheus text format to this file",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return fmt.Errorf("page file is required")
			}

			h, _, err := newHandler(cmd)
			if err != nil {
				return err
			}

			text, err := readInput(cmd, path)
			if err != nil {
				return err
			}

			page, err := docs.PageFromDocument(path, text)
			if err != nil {
				return err
			}
			if r := cmd.String("release"); r != "" {
				page.Version = r
			}

			out, err := h.RenderPage(ctx, page, text)
			if mf := cmd.String("metrics-file"); mf != "" {
				if mErr := prometheus.WriteToTextfile(mf, prometheus.DefaultGatherer); mErr != nil {
					slog.Warn("failed to write metrics", "path", mf, "error", mErr)
				}
			}
			if err != nil {
				return err
			}

			slog.Info("page rendered", "page", page.ID, "version", page.Version)
			return writeText(cmd, cmd.String("output"), out)
		},
	}
}
