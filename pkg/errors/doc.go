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

// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Each error kind that callers need to branch on has its own ErrorCode.
// Packages expose a sentinel built with New, and StructuredError.Is matches
// on the code, so wrapped errors still satisfy errors.Is:
//
//	var ErrCatalogVersionNotFound = errors.New(errors.ErrCodeCatalogVersionNotFound, "release line not found")
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeCatalogVersionNotFound,
//	    "requested version not present in catalog",
//	    nil,
//	    map[string]any{"version": "v3.9"},
//	)
//	stderrors.Is(err, ErrCatalogVersionNotFound) // true
package errors
