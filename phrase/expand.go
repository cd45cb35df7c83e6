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
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Pair is an open and close bracket that delimit an optional group.
type Pair struct {
	Open  rune
	Close rune
}

// Alphabet is a set of bracket pairs recognized by [Expand].
type Alphabet struct {
	re *regexp.Regexp
}

// Latin is the alphabet for Latin text: (optional) and [optional].
var Latin = NewAlphabet(Pair{'(', ')'}, Pair{'[', ']'})

// Japanese is the alphabet for Japanese text using full-width brackets:
// （optional） and ［optional］.
var Japanese = NewAlphabet(Pair{'（', '）'}, Pair{'［', '］'})

// NewAlphabet returns an alphabet for the given bracket pairs. A group is an
// open bracket followed by at least one rune other than the matching close
// bracket, followed by the close bracket.
func NewAlphabet(pairs ...Pair) *Alphabet {
	alts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		o := regexp.QuoteMeta(string(p.Open))
		c := regexp.QuoteMeta(string(p.Close))
		alts = append(alts, fmt.Sprintf("%s[^%s]+%s", o, c, c))
	}
	return &Alphabet{
		re: regexp.MustCompile(strings.Join(alts, "|")),
	}
}

// Expand returns every variant of text with and without each optional group
// delimited by the alphabet's brackets.
//
// Only the leftmost group is resolved at each step; the text after it is
// expanded recursively. For every variant of the remainder, the variant
// without the group comes before the variant with it, so "a(b)[c]" expands
// to "a", "ab", "ac", "abc". Text containing no group expands to itself
// with surrounding whitespace removed.
func Expand(text string, a *Alphabet) []string {
	variants := expand(text, a)
	for i := range variants {
		variants[i] = strings.TrimSpace(variants[i])
	}
	return variants
}

// expand resolves the leftmost group and recurses on the remainder. The
// remainder's variants keep their leading whitespace so that it separates
// them from the prefix.
func expand(text string, a *Alphabet) []string {
	loc := a.re.FindStringIndex(text)
	if loc == nil {
		return []string{strings.TrimSpace(text)}
	}
	start, end := loc[0], loc[1]

	_, openSize := utf8.DecodeRuneInString(text[start:])
	_, closeSize := utf8.DecodeLastRuneInString(text[:end])

	// NOTE: only the prefix without the group is trimmed. The prefix with
	// the group keeps its spacing so that "a (b)" becomes "a b".
	without := strings.TrimSpace(text[:start])
	with := text[:start] + text[start+openSize:end-closeSize]

	rest := expand(text[end:], a)
	variants := make([]string, 0, 2*len(rest))
	for _, r := range rest {
		variants = append(variants, without+r, with+r)
	}
	return variants
}
