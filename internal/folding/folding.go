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

// Package folding implements text folding of headword keys for lookup.
package folding

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/transform"
	"golang.org/x/text/width"
)

// Headword returns a [transform.Transformer] that folds headword keys and
// queries for comparison. Full-width Latin letters and half-width katakana
// are folded to their canonical width, case is folded and whitespace is
// folded with a [WhitespaceFolder].
func Headword() transform.Transformer {
	return transform.Chain(width.Fold, cases.Fold(), &WhitespaceFolder{})
}

// String folds s with the Headword transformer.
func String(s string) (string, error) {
	//nolint:wrapcheck // error should not be wrapped
	folded, _, err := transform.String(Headword(), s)
	return folded, err
}

// WhitespaceFolder removes leading and trailing whitespace and replaces each
// internal run of whitespace, including the ideographic space, with a single
// ASCII space.
type WhitespaceFolder struct {
	// started is set once a non-space rune has been emitted.
	started bool

	// pending is set while inside a run of internal whitespace.
	pending bool
}

// Transform implements [transform.Transformer.Transform].
func (w *WhitespaceFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	nDst, nSrc := 0, 0
	for nSrc < len(src) {
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		r, size := utf8.DecodeRune(src[nSrc:])

		if unicode.IsSpace(r) {
			// Spaces before the first rune are dropped. Trailing spaces are
			// never flushed.
			w.pending = w.started
			nSrc += size
			continue
		}

		need := utf8.RuneLen(r)
		if w.pending {
			need++
		}
		if nDst+need > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		if w.pending {
			dst[nDst] = ' '
			nDst++
			w.pending = false
		}
		// NOTE: r may be utf8.RuneError with size 1. The encoded length is
		// used so that invalid bytes are replaced.
		nDst += utf8.EncodeRune(dst[nDst:], r)
		nSrc += size
		w.started = true
	}
	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (w *WhitespaceFolder) Reset() {
	*w = WhitespaceFolder{}
}
