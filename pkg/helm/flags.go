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

package helm

import (
	"path/filepath"
	"strings"

	"github.com/tigera/chartdocs/pkg/args"
	"github.com/tigera/chartdocs/pkg/values"
)

// PullSecretPlaceholder is shown in rendered docs where a real registry
// credential would go.
const PullSecretPlaceholder = "<replace with your docker config.json contents>"

// baselineOverrides pin environment-dependent settings to stable example
// values in rendered docs.
var baselineOverrides = []string{
	"manager.service.type=NodePort",
	"manager.service.nodePort=30003",
	"kibana.service.type=NodePort",
	"kibana.service.nodePort=30601",
	"alertmanager.service.type=NodePort",
	"alertmanager.service.nodePort=30903",
	"prometheus.scrapeTargets.node.service.type=NodePort",
	"prometheus.scrapeTargets.node.service.nodePort=30909",
}

// mockSearchBackendOverrides point every Elasticsearch-dependent component
// at a fake external cluster.
var mockSearchBackendOverrides = []string{
	"elasticsearch.host=elasticsearch.example.com",
	"elasticsearch.tls.ca=<replace with base64 encoded Elasticsearch CA>",
	"elasticsearch.fluentd.password=<fluentd-password>",
	"elasticsearch.manager.password=<manager-password>",
	"elasticsearch.curator.password=<curator-password>",
	"elasticsearch.compliance.benchmarker.password=<compliance-benchmarker-password>",
	"elasticsearch.compliance.controller.password=<compliance-controller-password>",
	"elasticsearch.compliance.reporter.password=<compliance-reporter-password>",
	"elasticsearch.compliance.snapshotter.password=<compliance-snapshotter-password>",
	"elasticsearch.compliance.server.password=<compliance-server-password>",
	"elasticsearch.intrusionDetection.password=<intrusion-detection-password>",
	"elasticsearch.elasticInstaller.password=<elastic-installer-password>",
	"kibana.host=kibana.example.com",
}

// Invocation is a fully built renderer command line.
type Invocation struct {
	Command string
	Args    []string
}

// String joins the command line for logs.
func (i Invocation) String() string {
	return strings.Join(append([]string{i.Command}, i.Args...), " ")
}

// BuildInvocation assembles the command line for one render. valuesPath is
// the generated document and contentPath the block's own overrides, which
// take precedence.
func BuildInvocation(cfg Config, ra args.RenderArguments, valuesPath, contentPath string) Invocation {
	variant := ra.Variant
	if variant == "" {
		variant = values.VariantCore
	}

	command := cfg.HelmPath
	argv := []string{"template"}
	if variant.IsOperatorFamily() {
		command = cfg.Helm3Path
		argv = append(argv, variant.Chart())
	}
	argv = append(argv, filepath.Join(cfg.ChartsDir, variant.Chart()))
	argv = append(argv, "-f", valuesPath, "-f", contentPath)
	argv = appendSets(argv, baselineOverrides)

	if variant.IsOperatorFamily() {
		argv = append(argv, "--set", "imagePullSecrets.tigera-pull-secret="+PullSecretPlaceholder)
		argv = append(argv, "--namespace", variant.Namespace())
	}
	if ra.MockSearchBackend {
		argv = appendSets(argv, mockSearchBackendOverrides)
	}
	argv = append(argv, ra.Argv...)

	return Invocation{Command: command, Args: argv}
}

func appendSets(argv, sets []string) []string {
	for _, s := range sets {
		argv = append(argv, "--set", s)
	}
	return argv
}
