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
	"errors"
	"fmt"
	"strings"
)

// IndexSep separates the Latin and Japanese sides of an index expression.
const IndexSep = "|"

// ErrMalformedIndex indicates that an index expression has no separator.
var ErrMalformedIndex = errors.New("malformed index")

// SplitIndex splits an index expression on the first [IndexSep] and returns
// the trimmed Latin and Japanese sides. Either side may be empty but the
// separator is required.
func SplitIndex(raw string) (string, string, error) {
	i := strings.Index(raw, IndexSep)
	if i < 0 {
		return "", "", fmt.Errorf("%w: missing %q in %q", ErrMalformedIndex, IndexSep, raw)
	}
	return strings.TrimSpace(raw[:i]), strings.TrimSpace(raw[i+len(IndexSep):]), nil
}

// ParseIndex splits an index expression and parses both sides. An empty
// side has no variants.
func ParseIndex(raw string) ([]string, []string, error) {
	latin, japanese, err := SplitIndex(raw)
	if err != nil {
		return nil, nil, err
	}

	var latinVariants, japaneseVariants []string
	if latin != "" {
		latinVariants = ParseLatin(latin)
	}
	if japanese != "" {
		japaneseVariants = ParseJapanese(japanese)
	}
	return latinVariants, japaneseVariants, nil
}
