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

// Package record reads rows of edic dictionary sources.
//
// A source is a CSV file with a header row followed by data rows. Each data
// row has at least six fields: entry id, sub id, part of speech, key,
// index expression and comment. Extra fields are ignored.
package record

import (
	"errors"
	"fmt"
)

// NumFields is the minimum number of fields in a row.
const NumFields = 6

// ErrMalformedRow indicates that a row has too few fields.
var ErrMalformedRow = errors.New("malformed row")

// Row is a single dictionary source row.
type Row struct {
	// ID is the entry id. It is used as the anchor of the rendered entry.
	ID string

	// SubID is the entry's sub id.
	SubID string

	// PartOfSpeech is the entry's part of speech.
	PartOfSpeech string

	// Key holds additional comma separated headwords.
	Key string

	// Index is the entry's index expression.
	Index string

	// Comment is the entry's free text commentary.
	Comment string

	// Line is the line in the source where the row starts. It is zero for
	// rows not read from a source.
	Line int
}

// FromFields returns a Row from a list of fields.
func FromFields(fields []string) (*Row, error) {
	if len(fields) < NumFields {
		return nil, fmt.Errorf("%w: want at least %d fields, got %d", ErrMalformedRow, NumFields, len(fields))
	}
	return &Row{
		ID:           fields[0],
		SubID:        fields[1],
		PartOfSpeech: fields[2],
		Key:          fields[3],
		Index:        fields[4],
		Comment:      fields[5],
	}, nil
}
