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
	"regexp"
	"strings"
)

// LineBreakMarker is the escaped form of the "<CR>" line break marker used
// in source commentary.
const LineBreakMarker = "&lt;CR&gt;"

// EscapedLineBreakMarker is the escaped form of a line break marker that is
// already written as "&lt;CR&gt;" in the source.
const EscapedLineBreakMarker = "&amp;lt;CR&amp;gt;"

// lineBreak replaces line break markers.
const lineBreak = "<br />"

var lineBreaks = strings.NewReplacer(
	EscapedLineBreakMarker, lineBreak,
	LineBreakMarker, lineBreak,
)

// crossRef matches cross-reference markers of the form ▲▲label/id△△.
var crossRef = regexp.MustCompile(`▲▲([^▲△]+?)/([0-9]+)△△`)

// RewriteCrossReferences rewrites escaped commentary for display. Line
// break markers become line breaks and cross-reference markers become links
// to the referenced entry's anchor. Text that doesn't match a marker is left
// as is.
func RewriteCrossReferences(s string) string {
	s = lineBreaks.Replace(s)
	return crossRef.ReplaceAllString(s, `<a href="#${2}">${1}</a>`)
}
