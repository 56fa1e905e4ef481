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
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"reflect"
	"sort"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

const (
	valueColumn = "value"
	keyColumn   = "name"
	emptyCell   = "-"
)

// Writer encodes values to an output stream in one Format.
type Writer struct {
	format Format
	output io.Writer
	closer io.Closer
}

var (
	_ Serializer = (*Writer)(nil)
	_ Closer     = (*Writer)(nil)
)

// NewWriter returns a Writer on output, or os.Stdout when output is nil.
// Unknown formats fall back to JSON.
func NewWriter(format Format, output io.Writer) *Writer {
	if output == nil {
		output = os.Stdout
	}
	return &Writer{
		format: normalize(format),
		output: output,
	}
}

// NewFileWriter returns a Writer that creates path. An empty path or "-"
// writes to stdout instead, or os.Stdout when stdout is nil. The caller
// must Close the Writer.
func NewFileWriter(format Format, path string, stdout io.Writer) (*Writer, error) {
	path = strings.TrimSpace(path)
	if path == "" || path == "-" {
		return NewWriter(format, stdout), nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	return &Writer{
		format: normalize(format),
		output: f,
		closer: f,
	}, nil
}

func normalize(format Format) Format {
	if format.IsUnknown() {
		slog.Warn("unknown format, defaulting to JSON", "format", format)
		return FormatJSON
	}
	return format
}

// Close closes the underlying file, if any. It is safe to call more than
// once.
func (w *Writer) Close() error {
	if w.closer == nil {
		return nil
	}
	c := w.closer
	w.closer = nil
	return c.Close()
}

// Serialize writes v in the configured format.
func (w *Writer) Serialize(_ context.Context, v any) error {
	switch w.format {
	case FormatJSON:
		enc := json.NewEncoder(w.output)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to serialize to JSON: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w.output)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to serialize to YAML: %w", err)
		}
		return enc.Close()
	case FormatTable:
		return w.writeTable(v)
	default:
		return fmt.Errorf("unsupported format: %s", w.format)
	}
}

// writeTable prints collections one element per row and anything else as
// FIELD/VALUE pairs.
func (w *Writer) writeTable(v any) error {
	rows, ok := tableRows(reflect.ValueOf(v))
	if !ok {
		fields := flatten(reflect.ValueOf(v), "")
		rows = make([][]cell, 0, len(fields))
		for _, c := range fields {
			rows = append(rows, []cell{{"field", c.key}, {valueColumn, c.value}})
		}
	}
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w.output, "<empty>")
		return err
	}

	columns := columnOrder(rows)
	tw := tabwriter.NewWriter(w.output, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.ToUpper(strings.Join(columns, "\t")))
	for _, row := range rows {
		byKey := make(map[string]any, len(row))
		for _, c := range row {
			byKey[c.key] = c.value
		}
		vals := make([]string, len(columns))
		for i, col := range columns {
			vals[i] = emptyCell
			if v, ok := byKey[col]; ok && v != nil && fmt.Sprint(v) != "" {
				vals[i] = fmt.Sprint(v)
			}
		}
		fmt.Fprintln(tw, strings.Join(vals, "\t"))
	}
	return tw.Flush()
}

type cell struct {
	key   string
	value any
}

// tableRows reports whether val is a collection that renders one row per
// element: a slice, or a map keyed by name.
func tableRows(val reflect.Value) ([][]cell, bool) {
	val = deref(val)
	if !val.IsValid() {
		return nil, false
	}

	//nolint:exhaustive // only collections become rows
	switch val.Kind() {
	case reflect.Slice, reflect.Array:
		rows := make([][]cell, 0, val.Len())
		for i := 0; i < val.Len(); i++ {
			rows = append(rows, flatten(val.Index(i), ""))
		}
		return rows, true
	case reflect.Map:
		keys := sortedKeys(val)
		rows := make([][]cell, 0, len(keys))
		for _, k := range keys {
			row := []cell{{keyColumn, fmt.Sprint(k.Interface())}}
			rows = append(rows, append(row, flatten(val.MapIndex(k), "")...))
		}
		return rows, true
	default:
		return nil, false
	}
}

// flatten lists the leaves of val in field order with dotted keys. Struct
// fields use their json name when tagged.
func flatten(val reflect.Value, prefix string) []cell {
	val = deref(val)
	if !val.IsValid() {
		return nil
	}

	//nolint:exhaustive // leaves are handled by default
	switch val.Kind() {
	case reflect.Struct:
		var out []cell
		typ := val.Type()
		for i := 0; i < val.NumField(); i++ {
			f := typ.Field(i)
			if !f.IsExported() {
				continue
			}
			out = append(out, flatten(val.Field(i), joinKey(prefix, fieldName(f)))...)
		}
		return out
	case reflect.Map:
		var out []cell
		for _, k := range sortedKeys(val) {
			out = append(out, flatten(val.MapIndex(k), joinKey(prefix, fmt.Sprint(k.Interface())))...)
		}
		return out
	case reflect.Slice, reflect.Array:
		var out []cell
		for i := 0; i < val.Len(); i++ {
			out = append(out, flatten(val.Index(i), joinKey(prefix, fmt.Sprintf("[%d]", i)))...)
		}
		return out
	default:
		if prefix == "" {
			prefix = valueColumn
		}
		return []cell{{prefix, val.Interface()}}
	}
}

func deref(val reflect.Value) reflect.Value {
	for val.IsValid() && (val.Kind() == reflect.Pointer || val.Kind() == reflect.Interface) {
		if val.IsNil() {
			return reflect.Value{}
		}
		val = val.Elem()
	}
	return val
}

func sortedKeys(val reflect.Value) []reflect.Value {
	keys := val.MapKeys()
	sort.Slice(keys, func(i, j int) bool {
		return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
	})
	return keys
}

func fieldName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if name, _, _ := strings.Cut(tag, ","); name != "" && name != "-" {
		return name
	}
	return f.Name
}

// columnOrder returns column keys in order of first appearance.
func columnOrder(rows [][]cell) []string {
	seen := make(map[string]bool)
	var cols []string
	for _, row := range rows {
		for _, c := range row {
			if !seen[c.key] {
				seen[c.key] = true
				cols = append(cols, c.key)
			}
		}
	}
	return cols
}

func joinKey(prefix, suffix string) string {
	if prefix == "" {
		return suffix
	}
	return prefix + "." + suffix
}
