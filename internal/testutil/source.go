// Copyright 2025 Ian Lewis
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

// Package testutil contains fixtures for tests.
package testutil

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
)

// Header is a dictionary source header row.
var Header = []string{"id", "subid", "speech", "key", "index", "comment"}

// MakeSource returns a dictionary source with the given rows. The header
// is not added automatically.
func MakeSource(t *testing.T, rows [][]string) []byte {
	t.Helper()

	var b bytes.Buffer
	w := csv.NewWriter(&b)
	if err := w.WriteAll(rows); err != nil {
		t.Fatal(err)
	}
	return b.Bytes()
}

// MakeTempSource writes a dictionary source named name to dir and returns
// its path. Header is written before the given rows.
func MakeTempSource(t *testing.T, dir, name string, rows [][]string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	all := append([][]string{Header}, rows...)
	if err := os.WriteFile(path, MakeSource(t, all), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}
