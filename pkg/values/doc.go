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

// Package values generates the Helm values document a chart variant expects
// from a resolved version catalog.
//
// Generators are selected from an explicit table keyed by catalog schema
// era and chart variant. Each generator is a frozen text/template snapshot
// of the document that era's chart consumed, so historical documentation
// keeps rendering byte for byte.
//
//	req := values.Request{
//		Catalog:    cat,
//		ImageNames: site.ImageNames,
//		Registry:   "quay.io/",
//		Variant:    values.VariantEnterprise,
//		Era:        values.EraFor("v3.20"),
//		ForDocs:    true,
//	}
//	doc, err := values.Generate(req)
//
// Templates use these functions on top of sprig's text functions:
//
//	tag NAME              version of a catalog component
//	image NAME            registry prefix + catalog image (or image-name table entry)
//	imageName KEY         image-name table entry
//	extImage NAME         catalog registry/image, no registry prefix
//	catalogImage NAME     raw descriptor image
//	catalogRegistry NAME  raw descriptor registry
//	placeholder KEY       documentation placeholder when ForDocs, else empty
//
// Any lookup that misses aborts generation with an error matching
// ErrMissingComponentEntry. An era and variant pair without a generator
// fails with ErrMissingSchemaGenerator.
package values
