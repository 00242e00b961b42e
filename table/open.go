// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package table

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ianlewis/go-dictzip"
)

// Read reads dictionary records from r and loads them into a new table. The
// returned errors are the records and decompositions that were skipped. If
// reading fails the table is nil and the read error is the last error.
func Read(r io.Reader, options *Options) (*Table, []error) {
	if options == nil {
		options = DefaultOptions
	}
	folder := options.Folder
	if folder == nil {
		folder = DefaultOptions.Folder
	}

	var records []Record
	var errs []error
	s := NewScanner(r, folder)
	for s.Scan() {
		record, err := s.Record()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		records = append(records, record)
	}
	if err := s.Err(); err != nil {
		return nil, append(errs, fmt.Errorf("reading dictionary: %w", err))
	}

	t, loadErrs := Load(records, options)
	return t, append(errs, loadErrs...)
}

// Open reads the dictionary file at path into a new table. Files ending in
// .gz are read with gzip and files ending in .dz are read with dictzip.
func Open(path string, options *Options) (*Table, []error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, []error{fmt.Errorf("opening %q: %w", path, err)}
	}
	defer f.Close()

	var r io.Reader = f
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, []error{fmt.Errorf("opening %q: %w", path, err)}
		}
		defer gz.Close()
		r = gz
	case ".dz":
		dz, err := dictzip.NewReader(f)
		if err != nil {
			return nil, []error{fmt.Errorf("opening %q: %w", path, err)}
		}
		defer dz.Close()
		r = dz
	}

	return Read(r, options)
}
