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

// Package catalog resolves a raw version catalog into a flat mapping from
// component name to version or image descriptor.
//
// Two raw shapes are accepted. A single-release catalog is a list of
// version groups and the first group is used:
//
//	- title: v3.20.0
//	  components:
//	    calico/node:
//	      version: v3.20.0
//
// A multi-release catalog is keyed by release line, and the caller names
// the line it wants:
//
//	v3.20:
//	  - title: v3.20.0
//	    components:
//	      cnx-manager:
//	        version: v3.20.0
//	        image: tigera/cnx-manager
//	      tigera-cni:
//	        version: v3.20.0
//	        image: tigera/cni
//	        registry: quay.io
//	    tigera-operator:
//	      image: tigera/operator
//	      version: v1.20.0
//	      registry: quay.io
//
// Entries with an image field become ComponentDescriptors. Everything else
// contributes a plain version. A top-level tigera-operator descriptor is
// merged in under OperatorKey.
//
// A release line absent from a keyed catalog fails with an error matching
// ErrCatalogVersionNotFound. Resolve never skips it; callers decide whether
// the condition is fatal.
package catalog
