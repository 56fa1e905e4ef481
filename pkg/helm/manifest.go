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
	"errors"
	"io"
	"strings"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	utilyaml "k8s.io/apimachinery/pkg/util/yaml"

	apperrors "github.com/tigera/chartdocs/pkg/errors"
)

const decoderBufferSize = 4096

// ObjectRef identifies one object in a rendered manifest.
type ObjectRef struct {
	Kind      string `json:"kind" yaml:"kind"`
	Name      string `json:"name" yaml:"name"`
	Namespace string `json:"namespace,omitempty" yaml:"namespace,omitempty"`
}

func (r ObjectRef) String() string {
	if r.Namespace == "" {
		return r.Kind + "/" + r.Name
	}
	return r.Kind + "/" + r.Namespace + "/" + r.Name
}

// Summarize lists the objects in a multi-document manifest in order.
// Empty and comment-only documents are skipped.
func Summarize(manifest string) ([]ObjectRef, error) {
	dec := utilyaml.NewYAMLOrJSONDecoder(strings.NewReader(manifest), decoderBufferSize)

	var refs []ObjectRef
	for {
		var obj map[string]any
		if err := dec.Decode(&obj); err != nil {
			if errors.Is(err, io.EOF) {
				return refs, nil
			}
			return nil, apperrors.Wrap(apperrors.ErrCodeInvalidRequest, "failed to decode rendered manifest", err)
		}
		if len(obj) == 0 {
			continue
		}

		u := unstructured.Unstructured{Object: obj}
		refs = append(refs, ObjectRef{
			Kind:      u.GetKind(),
			Name:      u.GetName(),
			Namespace: u.GetNamespace(),
		})
	}
}
