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
	"strings"

	"github.com/k3a/html2text"

	"github.com/ianlewis/go-edic/lexml"
)

// Entry is a dictionary entry.
type Entry struct {
	entry *lexml.Entry
}

// ID returns the entry's anchor id.
func (e *Entry) ID() string {
	return e.entry.ID
}

// Title returns the entry's title.
func (e *Entry) Title() string {
	return e.entry.Title
}

// Keys returns the entry's headword keys.
func (e *Entry) Keys() []string {
	return e.entry.Keys
}

// Body returns the entry's body markup.
func (e *Entry) Body() string {
	return e.entry.Body
}

// Text returns the entry's body as plain text.
func (e *Entry) Text() string {
	text := html2text.HTML2Text(e.entry.Body)
	return strings.ReplaceAll(text, "\r\n", "\n")
}

// String returns the entry's title and body as plain text.
func (e *Entry) String() string {
	str := e.Title() + "\n"
	if text := e.Text(); text != "" {
		str += text + "\n"
	}
	return str
}
