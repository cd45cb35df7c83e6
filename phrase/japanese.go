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
	"regexp"
	"strings"
	"unicode/utf8"
)

// alternativeSep separates alternatives in a trailing alternatives group.
const alternativeSep = "｜"

// trailingAlternatives matches a full-width square bracketed group at the
// very end of the text.
var trailingAlternatives = regexp.MustCompile(`［[^］]+］$`)

// ParseJapanese returns the headword variants of the Japanese side of an
// index expression.
//
// When the text ends with a ［…］ group, the text before it is expanded and
// each '｜' separated alternative in the group follows as a standalone
// variant. Otherwise the whole text is expanded.
func ParseJapanese(text string) []string {
	loc := trailingAlternatives.FindStringIndex(text)
	if loc == nil {
		return Expand(text, Japanese)
	}

	var variants []string
	if prefix := strings.TrimSpace(text[:loc[0]]); prefix != "" {
		variants = append(variants, Expand(prefix, Japanese)...)
	}

	open := utf8.RuneLen('［')
	closing := utf8.RuneLen('］')
	return append(variants, splitAlternatives(text[loc[0]+open:loc[1]-closing])...)
}

// splitAlternatives splits the contents of an alternatives group.
func splitAlternatives(text string) []string {
	if !strings.Contains(text, alternativeSep) {
		return []string{strings.TrimSpace(text)}
	}
	parts := strings.Split(text, alternativeSep)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
