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

package args

import (
	"github.com/spf13/afero"
)

// Lister lists the regular files directly under a directory.
type Lister interface {
	ListFiles(dir string) ([]string, error)
}

// FSLister lists files on an afero filesystem.
type FSLister struct {
	fs afero.Fs
}

// NewFSLister returns a Lister over fs. A nil fs means the OS filesystem.
func NewFSLister(fs afero.Fs) *FSLister {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &FSLister{fs: fs}
}

// ListFiles returns the names of regular files in dir. Subdirectories and
// other entries are skipped.
func (l *FSLister) ListFiles(dir string) ([]string, error) {
	infos, err := afero.ReadDir(l.fs, dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(infos))
	for _, fi := range infos {
		if fi.Mode().IsRegular() {
			names = append(names, fi.Name())
		}
	}
	return names, nil
}
