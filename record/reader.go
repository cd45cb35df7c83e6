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

package record

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Ext is the file extension of dictionary sources.
const Ext = ".csv"

// Reader reads rows from a dictionary source from start to end.
type Reader struct {
	r      io.ReadCloser
	c      *csv.Reader
	header []string

	row     *Row
	skipped int
	err     error
}

// NewReader returns a new Reader that reads rows from r. The header row is
// read immediately. The Reader assumes ownership of the reader and should be
// closed with the Close method.
func NewReader(r io.ReadCloser) (*Reader, error) {
	c := csv.NewReader(r)
	// Rows may have any number of fields. Short rows are skipped by Scan.
	c.FieldsPerRecord = -1
	c.LazyQuotes = true

	header, err := c.Read()
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	return &Reader{
		r:      r,
		c:      c,
		header: header,
	}, nil
}

// Open opens the dictionary source at path.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening source: %w", err)
	}
	r, err := NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	return r, nil
}

// IsSource returns true if name has the dictionary source extension.
func IsSource(name string) bool {
	return strings.EqualFold(filepath.Ext(name), Ext)
}

// Header returns the source's header row. It is nil for an empty source.
func (r *Reader) Header() []string {
	return r.header
}

// Scan advances to the next row. Rows with too few fields are skipped. It
// returns false if the scan stops either by reaching the end of the source
// or an error.
func (r *Reader) Scan() bool {
	if r.err != nil || r.header == nil {
		return false
	}
	for {
		fields, err := r.c.Read()
		if errors.Is(err, io.EOF) {
			return false
		}
		if err != nil {
			r.err = fmt.Errorf("reading row: %w", err)
			return false
		}

		row, err := FromFields(fields)
		if err != nil {
			r.skipped++
			continue
		}
		row.Line, _ = r.c.FieldPos(0)
		r.row = row
		return true
	}
}

// Row returns the row read by the last call to Scan.
func (r *Reader) Row() *Row {
	return r.row
}

// Skipped returns the number of malformed rows skipped so far.
func (r *Reader) Skipped() int {
	return r.skipped
}

// Err returns the first error encountered.
func (r *Reader) Err() error {
	return r.err
}

// Close closes the underlying reader.
func (r *Reader) Close() error {
	if err := r.r.Close(); err != nil {
		return fmt.Errorf("closing source: %w", err)
	}
	return nil
}
