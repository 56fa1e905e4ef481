// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/tigera/chartdocs/pkg/image"
)

// Setting keys shared by viper, flags and environment variables.
const (
	KeyChartsDir              = "charts-dir"
	KeyHelm                   = "helm"
	KeyHelm3                  = "helm3"
	KeyCatalog                = "catalog"
	KeySiteConfig             = "site-config"
	KeyRegistry               = "registry"
	KeySuppressMissingVersion = "suppress-missing-version"
	KeyLogLevel               = "log-level"

	// EnvPrefix prefixes every environment variable, e.g. CHARTDOCS_CHARTS_DIR.
	EnvPrefix = "CHARTDOCS"
	// FileName is the config file base name searched in $HOME and the
	// working directory.
	FileName = ".chartdocs"
)

// Settings are the tool-level options shared by every command.
type Settings struct {
	ChartsDir              string `mapstructure:"charts-dir"`
	HelmPath               string `mapstructure:"helm"`
	Helm3Path              string `mapstructure:"helm3"`
	CatalogPath            string `mapstructure:"catalog"`
	SiteConfigPath         string `mapstructure:"site-config"`
	Registry               string `mapstructure:"registry"`
	SuppressMissingVersion bool   `mapstructure:"suppress-missing-version"`
	// LogLevel is empty unless set, so LOG_LEVEL can apply.
	LogLevel string `mapstructure:"log-level"`
}

// Defaults returns the settings used when nothing overrides them.
func Defaults() Settings {
	return Settings{
		ChartsDir:      "_includes/charts",
		HelmPath:       "helm",
		Helm3Path:      "helm3",
		CatalogPath:    "_data/versions.yml",
		SiteConfigPath: "_config.yml",
	}
}

// NewViper returns a viper instance with defaults and environment binding.
// When cfgFile is set it must exist. Otherwise .chartdocs.yaml is looked up
// in the home and working directories and silently skipped when absent.
func NewViper(cfgFile string) (*viper.Viper, error) {
	v := viper.New()

	d := Defaults()
	v.SetDefault(KeyChartsDir, d.ChartsDir)
	v.SetDefault(KeyHelm, d.HelmPath)
	v.SetDefault(KeyHelm3, d.Helm3Path)
	v.SetDefault(KeyCatalog, d.CatalogPath)
	v.SetDefault(KeySiteConfig, d.SiteConfigPath)
	v.SetDefault(KeyRegistry, d.Registry)
	v.SetDefault(KeySuppressMissingVersion, d.SuppressMissingVersion)
	v.SetDefault(KeyLogLevel, d.LogLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
		return v, nil
	}

	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}
	v.AddConfigPath(".")
	v.SetConfigType("yaml")
	v.SetConfigName(FileName)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return v, nil
}

// Load decodes the merged settings from v. The registry prefix is
// validated whichever source supplied it.
func Load(v *viper.Viper) (*Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	if err := image.ValidatePrefix(s.Registry); err != nil {
		return nil, err
	}
	return &s, nil
}
