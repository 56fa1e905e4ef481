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

package serializer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	apperrors "github.com/tigera/chartdocs/pkg/errors"
)

// FormatFromPath picks the decoder for a file: JSON for .json and YAML for
// everything else, since YAML also accepts JSON documents.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Decode reads one document from r into a new T. Empty input yields the
// zero T. Table output cannot be read back.
func Decode[T any](format Format, r io.Reader) (*T, error) {
	var out T

	var err error
	switch format {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&out)
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&out)
	default:
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("format %q cannot be decoded", format))
	}

	if err != nil && !errors.Is(err, io.EOF) {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest,
			fmt.Sprintf("failed to decode %s", format), err)
	}
	return &out, nil
}

// FromBytes decodes data in the given format into a new T.
func FromBytes[T any](format Format, data []byte) (*T, error) {
	return Decode[T](format, bytes.NewReader(data))
}

// FromFS reads path from fsys and decodes it into a new T with the format
// taken from the extension. A missing file fails with NOT_FOUND and a
// malformed one with INVALID_REQUEST.
func FromFS[T any](fsys afero.Fs, path string) (*T, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		code := apperrors.ErrCodeInternal
		if errors.Is(err, fs.ErrNotExist) {
			code = apperrors.ErrCodeNotFound
		}
		return nil, apperrors.WrapWithContext(code, "failed to read file", err,
			map[string]any{"path": path})
	}

	format := FormatFromPath(path)
	out, err := FromBytes[T](format, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	slog.Debug("decoded file", "path", path, "format", format, "bytes", len(data))
	return out, nil
}

// FromFile is FromFS on the OS filesystem.
//
//	raw, err := FromFile[any]("_data/versions.yml")
func FromFile[T any](path string) (*T, error) {
	return FromFS[T](afero.NewOsFs(), path)
}
