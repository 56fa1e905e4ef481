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

// Package config loads the two kinds of configuration chartdocs needs.
//
// Site configuration is the documentation site's own config file. Only the
// image-name table and the default registry prefix are read from it:
//
//	imageNames:
//	  cnxManager: tigera/cnx-manager
//	  node: tigera/cnx-node
//	registry: quay.io/
//
// Tool settings (charts directory, helm binaries, catalog path, suppression)
// come from flags, CHARTDOCS_* environment variables and an optional
// .chartdocs.yaml, merged by viper in that order of precedence.
package config
