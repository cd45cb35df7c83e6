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

// Package phrase expands the compact headword notation used in the index
// field of edic dictionary sources.
//
// An index expression has a Latin side and a Japanese side separated by the
// first ASCII '|':
//
//	cat (big), kitty|ねこ（ちゃん）［ニャンコ｜にゃんこ］
//
// The Latin side holds comma separated synonyms. Parenthesized or square
// bracketed groups are optional parts of a word. The Japanese side uses
// full-width brackets for optional parts and may end with a full-width
// square bracketed group of alternatives separated by '｜'. Alternatives are
// standalone headwords and are not combined with the text before them.
//
// Variants are always returned in a stable order. Callers that select the
// "first" variant rely on that order.
package phrase
