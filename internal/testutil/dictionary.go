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

package testutil

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ianlewis/go-dictzip"
)

// MakeDictionaryOptions are options for MakeTempDictionary.
type MakeDictionaryOptions struct {
	// Ext is an optional file extension for the dictionary file. Defaults to
	// '.txt.dz' if DictZip is true, '.txt.gz' if Gzip is true and '.txt'
	// otherwise.
	Ext string

	// DictZip indicates that the file should be compressed with DictZip.
	DictZip bool

	// Gzip indicates that the file should be compressed with gzip.
	Gzip bool
}

// GetExt returns the dictionary file extension.
func (o *MakeDictionaryOptions) GetExt() string {
	if o != nil {
		if o.Ext != "" {
			return o.Ext
		}
		if o.DictZip {
			return ".txt.dz"
		}
		if o.Gzip {
			return ".txt.gz"
		}
	}
	return ".txt"
}

// MakeDictionary creates test dictionary text from record lines.
func MakeDictionary(lines ...string) []byte {
	return []byte(strings.Join(lines, "\n") + "\n")
}

// MakeTempDictionary writes a dictionary file into a temporary directory
// and returns its path. The directory is removed when the test ends.
func MakeTempDictionary(t *testing.T, lines []string, opts *MakeDictionaryOptions) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "ids"+opts.GetExt())
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var w io.WriteCloser = nopCloser{f}
	switch {
	case opts != nil && opts.DictZip:
		w, err = dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
	case opts != nil && opts.Gzip:
		w = gzip.NewWriter(f)
	}

	if _, err := w.Write(MakeDictionary(lines...)); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	return path
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}
