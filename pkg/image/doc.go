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

// Package image composes and validates container image references for
// generated values documents.
//
// Two forms appear in a values document. Internally published images get
// the site registry prefix prepended verbatim:
//
//	image.Prefixed("quay.io/", "tigera/cnx-node") // "quay.io/tigera/cnx-node"
//
// Externally supplied base images carry their own registry from the catalog
// and never see the site prefix:
//
//	image.External("docker.io", "calico/cni") // "docker.io/calico/cni"
//
// Registry prefixes are validated with github.com/distribution/reference so
// a malformed prefix is rejected before any document is generated.
package image
