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

// Package index implements a sorted in-memory index over string keys.
package index

import (
	"slices"
	"sort"
	"strings"
)

// Item is a value stored under a key.
type Item[V any] struct {
	Key   string
	Value V
}

// Index is a generic sorted array index.
type Index[V any] struct {
	// items are sorted by key. Items with equal keys keep insertion order.
	items []Item[V]

	cmp func(string, string) int
}

// New creates an index from the given items and comparison function.
// cmp(a, b) should return a negative number when a < b, a positive number when
// a > b and zero when a == b or a and b are incomparable in the sense of a
// strict weak ordering.
func New[V any](items []Item[V], cmp func(string, string) int) *Index[V] {
	sorted := make([]Item[V], len(items))
	copy(sorted, items)
	slices.SortStableFunc(sorted, func(a, b Item[V]) int {
		return cmp(a.Key, b.Key)
	})

	return &Index[V]{
		items: sorted,
		cmp:   cmp,
	}
}

// Search performs a binary search over the index and returns the values of
// items whose key matches query.
func (idx *Index[V]) Search(query string) []V {
	i, found := sort.Find(len(idx.items), func(i int) int {
		return idx.cmp(query, idx.items[i].Key)
	})
	if !found {
		return nil
	}

	var values []V
	for ; i < len(idx.items) && idx.cmp(query, idx.items[i].Key) == 0; i++ {
		values = append(values, idx.items[i].Value)
	}
	return values
}

// Prefix returns the values of items whose key starts with prefix, in key
// order. The index must have been created with [strings.Compare].
func (idx *Index[V]) Prefix(prefix string) []V {
	i := sort.Search(len(idx.items), func(i int) bool {
		return idx.items[i].Key >= prefix
	})

	var values []V
	for ; i < len(idx.items) && strings.HasPrefix(idx.items[i].Key, prefix); i++ {
		values = append(values, idx.items[i].Value)
	}
	return values
}
