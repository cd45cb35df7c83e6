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

package edic

import (
	"fmt"
	"strings"

	"github.com/ianlewis/go-edic/internal/folding"
	"github.com/ianlewis/go-edic/internal/index"
	"github.com/ianlewis/go-edic/lexml"
	"github.com/ianlewis/go-edic/record"
)

// Dictionary is a dictionary source loaded in memory.
type Dictionary struct {
	name    string
	mode    lexml.Mode
	entries []*Entry
	skipped int
	empty   int

	// index is sorted by folded headword key.
	index *index.Index[*Entry]
}

// LoadAll loads all sources directly under dir. This function will return
// all successfully loaded dictionaries along with any errors that occurred.
func LoadAll(dir string, opts *Options) ([]*Dictionary, []error) {
	paths, err := sources(dir)
	if err != nil {
		return nil, []error{err}
	}

	var dicts []*Dictionary
	var errs []error
	for _, path := range paths {
		d, err := Load(path, opts)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		dicts = append(dicts, d)
	}
	return dicts, errs
}

// Load renders the source at path in memory and indexes its headword keys.
func Load(path string, opts *Options) (*Dictionary, error) {
	d := &Dictionary{
		name: lexml.SourceName(path),
		mode: opts.getModes().Lookup(path),
	}
	opts.progress(d.name)

	r, err := record.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", path, err)
	}
	defer r.Close()

	var items []index.Item[*Entry]
	logger := opts.getLogger().With("source", path, "mode", d.mode.String())
	d.empty, err = render(r, lexml.NewRenderer(d.mode), logger, func(le *lexml.Entry) error {
		e := &Entry{entry: le}
		d.entries = append(d.entries, e)
		for _, k := range le.Keys {
			folded, err := folding.String(k)
			if err != nil {
				return fmt.Errorf("folding key %q: %w", k, err)
			}
			items = append(items, index.Item[*Entry]{Key: folded, Value: e})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", path, err)
	}
	d.skipped = r.Skipped()
	d.index = index.New(items, strings.Compare)

	return d, nil
}

// Name returns the dictionary's source name.
func (d *Dictionary) Name() string {
	return d.name
}

// Mode returns the mode the dictionary's entries were rendered with.
func (d *Dictionary) Mode() lexml.Mode {
	return d.mode
}

// Entries returns all entries in source order.
func (d *Dictionary) Entries() []*Entry {
	return d.entries
}

// Skipped returns the number of malformed rows skipped while loading.
func (d *Dictionary) Skipped() int {
	return d.skipped
}

// Empty returns the number of rows skipped because of an empty index.
func (d *Dictionary) Empty() int {
	return d.empty
}

// Search returns the entries with a headword key matching query. Keys and
// the query are compared after width, case and whitespace folding.
func (d *Dictionary) Search(query string) ([]*Entry, error) {
	folded, err := folding.String(query)
	if err != nil {
		return nil, fmt.Errorf("folding query %q: %w", query, err)
	}
	return unique(d.index.Search(folded)), nil
}

// SearchPrefix returns the entries with a headword key starting with
// prefix, ordered by key.
func (d *Dictionary) SearchPrefix(prefix string) ([]*Entry, error) {
	folded, err := folding.String(prefix)
	if err != nil {
		return nil, fmt.Errorf("folding prefix %q: %w", prefix, err)
	}
	return unique(d.index.Prefix(folded)), nil
}

// unique removes repeated entries keeping the first occurrence.
func unique(entries []*Entry) []*Entry {
	var out []*Entry
	seen := map[*Entry]bool{}
	for _, e := range entries {
		if seen[e] {
			continue
		}
		seen[e] = true
		out = append(out, e)
	}
	return out
}
