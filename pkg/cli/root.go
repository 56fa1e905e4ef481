/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/tigera/chartdocs/pkg/config"
	"github.com/tigera/chartdocs/pkg/logging"
	"github.com/tigera/chartdocs/pkg/serializer"
)

const (
	name           = "chartdocs"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Execute builds the root command and runs it with os.Args.
// This is called by main.main().
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM so a running renderer is killed
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...")
		cancel()
	}()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		EnableShellCompletion: true,
		Usage:                 "Render chart manifests for versioned documentation",
		Description: `chartdocs keeps published install manifests in sync with a single version
catalog. It resolves component versions and images for a release line,
generates the chart values for a chart variant and renders them with
"helm template".

Settings come from flags, CHARTDOCS_* environment variables and an optional
.chartdocs.yaml in the home or working directory, in that order of precedence.`,
		Flags:         globalFlags(),
		Before:        initLogger,
		ShellComplete: commandLister,
		Commands: []*cli.Command{
			valuesCmd(),
			catalogCmd(),
			renderCmd(),
			pageCmd(),
		},
	}
}

func globalFlags() []cli.Flag {
	d := config.Defaults()
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "config file (default is $HOME/.chartdocs.yaml)",
		},
		&cli.StringFlag{
			Name:  config.KeyLogLevel,
			Usage: "log level: debug, info, warn, error (default from " + logging.EnvVarLogLevel + ", else info)",
		},
		&cli.StringFlag{
			Name:  config.KeyChartsDir,
			Usage: fmt.Sprintf("directory holding one chart per variant (default %q)", d.ChartsDir),
		},
		&cli.StringFlag{
			Name:  config.KeyHelm,
			Usage: fmt.Sprintf("helm binary for the calico and tigera-secure-ee charts (default %q)", d.HelmPath),
		},
		&cli.StringFlag{
			Name:  config.KeyHelm3,
			Usage: fmt.Sprintf("helm binary for the operator charts (default %q)", d.Helm3Path),
		},
		&cli.StringFlag{
			Name:  config.KeyCatalog,
			Usage: fmt.Sprintf("version catalog file (default %q)", d.CatalogPath),
		},
		&cli.StringFlag{
			Name:  config.KeySiteConfig,
			Usage: fmt.Sprintf("site config with imageNames and registry (default %q)", d.SiteConfigPath),
		},
		&cli.StringFlag{
			Name:  config.KeyRegistry,
			Usage: "registry prefix overriding the site config, e.g. quay.io/",
		},
		&cli.BoolFlag{
			Name:  config.KeySuppressMissingVersion,
			Usage: "render blocks whose release line is missing from the catalog as empty output",
		},
	}
}

// loadSettings merges flags over environment, config file and defaults.
func loadSettings(cmd *cli.Command) (*config.Settings, error) {
	v, err := config.NewViper(cmd.String("config"))
	if err != nil {
		return nil, err
	}

	for _, key := range []string{
		config.KeyLogLevel,
		config.KeyChartsDir,
		config.KeyHelm,
		config.KeyHelm3,
		config.KeyCatalog,
		config.KeySiteConfig,
		config.KeyRegistry,
	} {
		if cmd.IsSet(key) {
			v.Set(key, cmd.String(key))
		}
	}
	if cmd.IsSet(config.KeySuppressMissingVersion) {
		v.Set(config.KeySuppressMissingVersion, cmd.Bool(config.KeySuppressMissingVersion))
	}

	return config.Load(v)
}

// initLogger configures slog after flags and config are parsed so
// --log-level takes effect before any command executes.
func initLogger(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	s, err := loadSettings(cmd)
	if err != nil {
		return ctx, err
	}
	if s.LogLevel == "" {
		logging.SetDefaultStructuredLogger(name, version)
	} else {
		logging.SetDefaultStructuredLoggerWithLevel(name, version, s.LogLevel)
	}
	slog.Debug("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date)
	return ctx, nil
}

// commandLister prints the visible subcommands for shell completion.
func commandLister(_ context.Context, cmd *cli.Command) {
	if cmd == nil {
		return
	}
	w := cmd.Root().Writer
	if w == nil {
		w = os.Stdout
	}
	for _, c := range cmd.Commands {
		if c.Hidden {
			continue
		}
		fmt.Fprintln(w, c.Name)
	}
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   fmt.Sprintf("output format (supported values: %v)", serializer.SupportedFormats()),
	}
}

func releaseFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "release",
		Aliases: []string{"r"},
		Usage:   "release line to resolve from the catalog, e.g. v3.20 or master",
	}
}
