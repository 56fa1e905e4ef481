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

// Package args parses the argument string that trails a content block and
// rewrites it into renderer flags.
//
// The string has the form
//
//	[<chart-variant>] [secure-es] [<renderer flags>...]
//
// Parsing happens once per block, in three steps:
//
//  1. Tokenize: a token starting with "-" opens a directive and the
//     following non-flag tokens attach to it.
//  2. Expand: each "--execute-dir DIR" becomes one "--execute FILE" per
//     regular file directly under DIR in the chart, sorted by name.
//  3. Substitute: operator-family charts are rendered with helm 3, so
//     "--execute" becomes "--show-only".
//
// Expanded paths are kept relative to the chart's templates/ directory.
// Files under crds/ are generated schema definitions; they are kept relative
// to crds/ and marked so Substitute can address them from the chart root.
// Paths given directly with "--execute" are passed on as typed.
//
// Only the Lister touches the filesystem. Expand and Substitute are pure.
package args
