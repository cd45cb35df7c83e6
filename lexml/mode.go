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
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnknownMode indicates an unknown rendering mode name.
var ErrUnknownMode = errors.New("unknown mode")

// Mode selects how source rows are rendered.
type Mode int

const (
	// Standard renders the index expression as the title and the comment as
	// the body.
	Standard Mode = iota

	// Specialized renders the first Latin headword as the title and the raw
	// index expression as the body.
	Specialized
)

// String implements [fmt.Stringer].
func (m Mode) String() string {
	switch m {
	case Standard:
		return "standard"
	case Specialized:
		return "specialized"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode returns the Mode with the given name.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "standard":
		return Standard, nil
	case "specialized":
		return Specialized, nil
	default:
		return Standard, fmt.Errorf("%w: %q", ErrUnknownMode, name)
	}
}

// ModeMap maps source names to rendering modes. Source names are file base
// names without extension. Unmapped sources use [Standard].
type ModeMap map[string]Mode

// SourceName returns the source name for the given file path.
func SourceName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// Lookup returns the mode for the source at path.
func (m ModeMap) Lookup(path string) Mode {
	if mode, ok := m[SourceName(path)]; ok {
		return mode
	}
	return Standard
}
