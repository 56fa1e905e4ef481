/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"

	"github.com/tigera/chartdocs/pkg/config"
	"github.com/tigera/chartdocs/pkg/docs"
	"github.com/tigera/chartdocs/pkg/serializer"
	"github.com/tigera/chartdocs/pkg/values"
)

// parseOutputFormat extracts and validates the output format from CLI flags.
// Returns the validated format or an error if the format is unknown.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	return serializer.ParseFormat(cmd.String("format"))
}

// parseVariant reads the --variant flag, defaulting to the core chart.
func parseVariant(cmd *cli.Command) (values.Variant, error) {
	s := cmd.String("variant")
	if s == "" {
		return values.VariantCore, nil
	}
	return values.ParseVariant(s)
}

// newHandler loads settings and the site config and builds a docs handler.
func newHandler(cmd *cli.Command, opts ...docs.Option) (*docs.Handler, *config.Settings, error) {
	settings, err := loadSettings(cmd)
	if err != nil {
		return nil, nil, err
	}
	site, err := config.LoadSite(settings.SiteConfigPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load site config from %q: %w", settings.SiteConfigPath, err)
	}
	return docs.NewHandler(*settings, *site, opts...), settings, nil
}

// readInput reads path, or stdin when path is "-".
func readInput(cmd *cli.Command, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		r := cmd.Root().Reader
		if r == nil {
			r = os.Stdin
		}
		data, err = io.ReadAll(r)
	} else {
		data, err = afero.ReadFile(afero.NewOsFs(), path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %q: %w", path, err)
	}
	return string(data), nil
}

// writeText writes text to path, or to the command writer when path is
// empty or "-".
func writeText(cmd *cli.Command, path, text string) error {
	if path == "" || path == "-" {
		w := cmd.Root().Writer
		if w == nil {
			w = os.Stdout
		}
		_, err := io.WriteString(w, text)
		return err
	}
	if err := afero.WriteFile(afero.NewOsFs(), path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	return nil
}
