/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/tigera/chartdocs/pkg/catalog"
	"github.com/tigera/chartdocs/pkg/image"
	"github.com/tigera/chartdocs/pkg/serializer"
)

func catalogCmd() *cli.Command {
	return &cli.Command{
		Name:                  "catalog",
		EnableShellCompletion: true,
		Usage:                 "Print the resolved catalog for a release line",
		Description: `Resolves the version catalog for a release line and prints every component
with its version, and image and registry where the catalog carries them.
Use --lines to list the release lines the catalog knows about.

# Examples

  chartdocs catalog --release v3.20
  chartdocs catalog --release v3.20 --format table
  chartdocs catalog --lines`,
		Flags: []cli.Flag{
			releaseFlag(),
			&cli.BoolFlag{
				Name:  "lines",
				Usage: "list the release lines in the catalog instead of resolving one",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			settings, err := loadSettings(cmd)
			if err != nil {
				return err
			}

			var out any
			if cmd.Bool("lines") {
				raw, err := catalog.LoadFile(settings.CatalogPath)
				if err != nil {
					return err
				}
				lines, err := catalog.Lines(raw)
				if err != nil {
					return err
				}
				out = lines
			} else {
				cat, err := catalog.ResolveFile(settings.CatalogPath, cmd.String("release"))
				if err != nil {
					return err
				}
				out = cat
				if outFormat == serializer.FormatTable {
					out = componentRows(cat)
				}
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

			return ser.Serialize(ctx, out)
		},
	}
}

// componentRow is one line of the catalog table.
type componentRow struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Image   string `json:"image"`
}

// componentRows lists the catalog by component name. Descriptors with their
// own registry show the full pull reference, others the catalog image.
func componentRows(cat catalog.Catalog) []componentRow {
	names := cat.Names()
	rows := make([]componentRow, 0, len(names))
	for _, name := range names {
		e := cat[name]
		row := componentRow{Name: name, Version: e.ResolvedVersion()}
		if d := e.Descriptor; d != nil {
			row.Image = d.Image + ":" + d.Version
			if d.Registry != "" {
				ref, err := image.Parse(image.External(d.Registry, d.Image))
				if err != nil {
					slog.Warn("invalid image reference in catalog", "component", name, "error", err)
				} else {
					row.Image = ref.WithTag(d.Version).String()
				}
			}
		}
		rows = append(rows, row)
	}
	return rows
}
