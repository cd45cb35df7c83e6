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

package lexml

import (
	"fmt"
	"html"
	"strings"

	"github.com/ianlewis/go-edic/phrase"
	"github.com/ianlewis/go-edic/record"
)

// Entry is a rendered dictionary entry.
type Entry struct {
	// ID is the entry's anchor id.
	ID string

	// Title is the displayed title. It is plain text.
	Title string

	// Keys are the entry's headword keys in order without duplicates.
	Keys []string

	// Body is the entry's body. It is markup and is written as is.
	Body string
}

// Renderer renders source rows as entries.
type Renderer interface {
	// Render returns the entry for row. It returns a nil entry and nil
	// error for rows that produce no output.
	Render(row *record.Row) (*Entry, error)
}

// NewRenderer returns the Renderer for mode. Unknown modes render as
// [Standard].
func NewRenderer(mode Mode) Renderer {
	if mode == Specialized {
		return SpecializedRenderer{}
	}
	return StandardRenderer{}
}

// StandardRenderer renders the index expression as the title and the
// escaped comment, with cross-references rewritten, as the body.
//
// The title keeps both sides of the index with the separator replaced by a
// space, so "cat (big)|ねこ" is titled "cat (big) ねこ" rather than only its
// Latin side. Markers in the index are not rewritten.
type StandardRenderer struct{}

// Render implements [Renderer.Render].
func (StandardRenderer) Render(row *record.Row) (*Entry, error) {
	if row.Index == "" {
		return nil, nil
	}
	latin, japanese, err := phrase.SplitIndex(row.Index)
	if err != nil {
		return nil, fmt.Errorf("rendering entry %q: %w", row.ID, err)
	}
	keys, _ := headwords(row.Key, latin, japanese)

	var title []string
	for _, side := range []string{latin, japanese} {
		if side != "" {
			title = append(title, side)
		}
	}

	return &Entry{
		ID:    row.ID,
		Title: strings.Join(title, " "),
		Keys:  keys,
		Body:  RewriteCrossReferences(html.EscapeString(row.Comment)),
	}, nil
}

// SpecializedRenderer renders the first Latin headword as the title and the
// escaped index expression as the body.
type SpecializedRenderer struct{}

// Render implements [Renderer.Render].
func (SpecializedRenderer) Render(row *record.Row) (*Entry, error) {
	if row.Index == "" {
		return nil, nil
	}
	latin, japanese, err := phrase.SplitIndex(row.Index)
	if err != nil {
		return nil, fmt.Errorf("rendering entry %q: %w", row.ID, err)
	}
	keys, latinVariants := headwords(row.Key, latin, japanese)

	var title string
	switch {
	case len(latinVariants) > 0:
		title = latinVariants[0]
	case len(keys) > 0:
		title = keys[0]
	}

	return &Entry{
		ID:    row.ID,
		Title: title,
		Keys:  keys,
		Body:  html.EscapeString(row.Index),
	}, nil
}

// headwords returns the entry's deduplicated headword keys along with the
// Latin variants in generation order.
func headwords(key, latin, japanese string) ([]string, []string) {
	var latinVariants, japaneseVariants []string
	if latin != "" {
		latinVariants = phrase.ParseLatin(latin)
	}
	if japanese != "" {
		japaneseVariants = phrase.ParseJapanese(japanese)
	}

	var keys []string
	seen := map[string]bool{}
	for _, variants := range [][]string{phrase.ParseKey(key), latinVariants, japaneseVariants} {
		for _, v := range variants {
			if v == "" || seen[v] {
				continue
			}
			seen[v] = true
			keys = append(keys, v)
		}
	}
	return keys, latinVariants
}
