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
	"testing"
)

func TestParseMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		expected Mode
		err      error
	}{
		{name: "standard", expected: Standard},
		{name: "Specialized", expected: Specialized},
		{name: " specialized ", expected: Specialized},
		{name: "fancy", expected: Standard, err: ErrUnknownMode},
		{name: "", expected: Standard, err: ErrUnknownMode},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			mode, err := ParseMode(test.name)
			if !errors.Is(err, test.err) {
				t.Fatalf("ParseMode: unexpected error; want: %v, got: %v", test.err, err)
			}
			if mode != test.expected {
				t.Errorf("ParseMode; want: %v, got: %v", test.expected, mode)
			}
		})
	}
}

func TestMode_String(t *testing.T) {
	t.Parallel()

	for mode, want := range map[Mode]string{
		Standard:    "standard",
		Specialized: "specialized",
		Mode(9):     "Mode(9)",
	} {
		if got := mode.String(); got != want {
			t.Errorf("String; want: %q, got: %q", want, got)
		}
	}
}

func TestModeMap_Lookup(t *testing.T) {
	t.Parallel()

	modes := ModeMap{
		"phrases": Specialized,
		"words":   Standard,
	}

	tests := []struct {
		path     string
		expected Mode
	}{
		{path: "phrases.csv", expected: Specialized},
		{path: "/data/out/phrases.csv", expected: Specialized},
		{path: "phrases", expected: Specialized},
		{path: "words.csv", expected: Standard},
		{path: "other.csv", expected: Standard},
		{path: "phrases2.csv", expected: Standard},
	}

	for _, test := range tests {
		if got := modes.Lookup(test.path); got != test.expected {
			t.Errorf("Lookup(%q); want: %v, got: %v", test.path, test.expected, got)
		}
	}

	var empty ModeMap
	if got := empty.Lookup("phrases.csv"); got != Standard {
		t.Errorf("nil Lookup; want: %v, got: %v", Standard, got)
	}
}
