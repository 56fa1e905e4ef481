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
	"fmt"

	apperrors "github.com/tigera/chartdocs/pkg/errors"
)

// ErrExternalTool matches every renderer failure via errors.Is.
var ErrExternalTool = apperrors.New(apperrors.ErrCodeExternalTool, "external renderer failed")

// ExternalToolError reports a renderer that exited non-zero, attributed to
// the page whose block was being rendered.
type ExternalToolError struct {
	PageID   string
	Command  string
	ExitCode int
	Stderr   string
}

func (e *ExternalToolError) Error() string {
	return fmt.Sprintf("[%s] %s failed for page %q (exit %d): %s",
		apperrors.ErrCodeExternalTool, e.Command, e.PageID, e.ExitCode, e.Stderr)
}

// Unwrap exposes the structured form so errors.Is(err, ErrExternalTool)
// and apperrors.CodeOf work.
func (e *ExternalToolError) Unwrap() error {
	return apperrors.NewWithContext(apperrors.ErrCodeExternalTool, "external renderer failed",
		map[string]any{
			"page":     e.PageID,
			"command":  e.Command,
			"exitCode": e.ExitCode,
		})
}
