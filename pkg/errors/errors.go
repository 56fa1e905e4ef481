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

package errors

import (
	stderrors "errors"
	"fmt"
	"sort"
)

// ErrorCode classifies an error for callers that branch on it.
type ErrorCode string

const (
	// ErrCodeNotFound indicates a requested resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeInternal indicates an internal system error.
	ErrCodeInternal ErrorCode = "INTERNAL"
	// ErrCodeInvalidRequest indicates malformed or invalid input.
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
	// ErrCodeCatalogVersionNotFound indicates the requested release line is
	// absent from a keyed version catalog.
	ErrCodeCatalogVersionNotFound ErrorCode = "CATALOG_VERSION_NOT_FOUND"
	// ErrCodeMissingComponent indicates a values template referenced a
	// component or image name that the resolved catalog does not carry.
	ErrCodeMissingComponent ErrorCode = "MISSING_COMPONENT"
	// ErrCodeMissingGenerator indicates no values generator exists for the
	// requested chart variant and catalog era.
	ErrCodeMissingGenerator ErrorCode = "MISSING_GENERATOR"
	// ErrCodeExternalTool indicates the external renderer failed.
	ErrCodeExternalTool ErrorCode = "EXTERNAL_TOOL_FAILURE"
)

// StructuredError carries a code for programmatic handling, a message, an
// optional cause and key/value context for logs.
type StructuredError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]any
}

func (e *StructuredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the cause.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a StructuredError with the same code, so a
// per-kind sentinel matches regardless of message or context.
func (e *StructuredError) Is(target error) bool {
	t, ok := target.(*StructuredError)
	return ok && t.Code == e.Code
}

// New returns an error with code and message.
func New(code ErrorCode, message string) *StructuredError {
	return &StructuredError{Code: code, Message: message}
}

// NewWithContext is New with context attached.
func NewWithContext(code ErrorCode, message string, context map[string]any) *StructuredError {
	return &StructuredError{Code: code, Message: message, Context: context}
}

// Wrap returns an error with code and message caused by cause.
func Wrap(code ErrorCode, message string, cause error) *StructuredError {
	return &StructuredError{Code: code, Message: message, Cause: cause}
}

// WrapWithContext is Wrap with context attached.
func WrapWithContext(code ErrorCode, message string, cause error, context map[string]any) *StructuredError {
	return &StructuredError{Code: code, Message: message, Cause: cause, Context: context}
}

// CodeOf returns the code of the first StructuredError in err's chain, or
// an empty code when there is none.
func CodeOf(err error) ErrorCode {
	var se *StructuredError
	if stderrors.As(err, &se) {
		return se.Code
	}
	return ""
}

// Attrs flattens the code and context of the first StructuredError in
// err's chain into slog key/value pairs, keys sorted.
func Attrs(err error) []any {
	var se *StructuredError
	if !stderrors.As(err, &se) {
		return nil
	}

	keys := make([]string, 0, len(se.Context))
	for k := range se.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]any, 0, 2+2*len(keys))
	attrs = append(attrs, "code", string(se.Code))
	for _, k := range keys {
		attrs = append(attrs, k, se.Context[k])
	}
	return attrs
}
