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

package phrase

import (
	"strings"
)

// SplitSynonyms returns text followed by each of its comma separated
// synonyms, trimmed. Text without a comma is returned alone.
func SplitSynonyms(text string) []string {
	phrases := []string{text}
	if !strings.Contains(text, ",") {
		return phrases
	}
	for _, p := range strings.Split(text, ",") {
		phrases = append(phrases, strings.TrimSpace(p))
	}
	return phrases
}

// ParseLatin returns the headword variants of the Latin side of an index
// expression. The first variant is always the expansion of the full,
// un-split text.
func ParseLatin(text string) []string {
	var variants []string
	for _, p := range SplitSynonyms(text) {
		variants = append(variants, Expand(p, Latin)...)
	}
	return variants
}

// ParseKey returns the variants of a key field. Keys are split into
// synonyms like Latin index text but optional groups are not expanded.
func ParseKey(text string) []string {
	if text == "" {
		return nil
	}
	return SplitSynonyms(text)
}
