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

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-edic/phrase"
	"github.com/ianlewis/go-edic/record"
)

func TestStandardRenderer_Render(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		row      *record.Row
		expected *Entry
		err      error
	}{
		{
			name: "index and comment",
			row: &record.Row{
				ID:           "1",
				SubID:        "0",
				PartOfSpeech: "n",
				Index:        "cat (big)|ねこ",
				Comment:      "meaning<CR>more",
			},
			expected: &Entry{
				ID:    "1",
				Title: "cat (big) ねこ",
				Keys:  []string{"cat", "cat big", "ねこ"},
				Body:  "meaning<br />more",
			},
		},
		{
			name: "source line break marker written escaped",
			row: &record.Row{
				ID:           "1",
				SubID:        "0",
				PartOfSpeech: "n",
				Index:        "cat (big)|ねこ",
				Comment:      "meaning&lt;CR&gt;more",
			},
			expected: &Entry{
				ID:    "1",
				Title: "cat (big) ねこ",
				Keys:  []string{"cat", "cat big", "ねこ"},
				Body:  "meaning<br />more",
			},
		},
		{
			name: "title keeps both sides without separator",
			row: &record.Row{
				ID:    "1",
				Index: " cat (big) | ねこ ",
			},
			expected: &Entry{
				ID:    "1",
				Title: "cat (big) ねこ",
				Keys:  []string{"cat", "cat big", "ねこ"},
			},
		},
		{
			name: "cross-reference in index not rewritten",
			row: &record.Row{
				ID:    "8",
				Index: "see ▲▲see also/42△△|x",
			},
			expected: &Entry{
				ID:    "8",
				Title: "see ▲▲see also/42△△ x",
				Keys:  []string{"see ▲▲see also/42△△", "x"},
			},
		},
		{
			name: "cross-reference",
			row: &record.Row{
				ID:      "2",
				Index:   "dog|いぬ",
				Comment: "▲▲see also/42△△",
			},
			expected: &Entry{
				ID:    "2",
				Title: "dog いぬ",
				Keys:  []string{"dog", "いぬ"},
				Body:  `<a href="#42">see also</a>`,
			},
		},
		{
			name: "comment escaped",
			row: &record.Row{
				ID:      "3",
				Index:   "a|",
				Comment: `x < y & "z"`,
			},
			expected: &Entry{
				ID:    "3",
				Title: "a",
				Keys:  []string{"a"},
				Body:  "x &lt; y &amp; &#34;z&#34;",
			},
		},
		{
			name: "keys deduplicated in order",
			row: &record.Row{
				ID:    "4",
				Key:   "kitty, cat",
				Index: " cat, kitty | ねこ［ねこ｜ニャンコ］",
			},
			expected: &Entry{
				ID:    "4",
				Title: "cat, kitty ねこ［ねこ｜ニャンコ］",
				Keys:  []string{"kitty, cat", "kitty", "cat", "cat, kitty", "ねこ", "ニャンコ"},
			},
		},
		{
			name: "japanese only",
			row: &record.Row{
				ID:    "5",
				Index: "|ねこ",
			},
			expected: &Entry{
				ID:    "5",
				Title: "ねこ",
				Keys:  []string{"ねこ"},
			},
		},
		{
			name: "empty index",
			row: &record.Row{
				ID:      "6",
				Comment: "unused",
			},
		},
		{
			name: "malformed index",
			row: &record.Row{
				ID:    "7",
				Index: "cat",
			},
			err: phrase.ErrMalformedIndex,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			e, err := StandardRenderer{}.Render(test.row)
			if !errors.Is(err, test.err) {
				t.Fatalf("Render: unexpected error; want: %v, got: %v", test.err, err)
			}
			if diff := cmp.Diff(test.expected, e); diff != "" {
				t.Fatalf("Render (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestSpecializedRenderer_Render(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		row      *record.Row
		expected *Entry
		err      error
	}{
		{
			name: "first latin variant",
			row: &record.Row{
				ID:      "1",
				Index:   "a,b|あ",
				Comment: "▲▲see also/42△△",
			},
			expected: &Entry{
				ID:    "1",
				Title: "a,b",
				Keys:  []string{"a,b", "a", "b", "あ"},
				Body:  "a,b|あ",
			},
		},
		{
			name: "optional group",
			row: &record.Row{
				ID:    "2",
				Index: "cat (big)|ねこ",
			},
			expected: &Entry{
				ID:    "2",
				Title: "cat",
				Keys:  []string{"cat", "cat big", "ねこ"},
				Body:  "cat (big)|ねこ",
			},
		},
		{
			name: "body escaped",
			row: &record.Row{
				ID:    "3",
				Index: "a & b|<あ>",
			},
			expected: &Entry{
				ID:    "3",
				Title: "a & b",
				Keys:  []string{"a & b", "<あ>"},
				Body:  "a &amp; b|&lt;あ&gt;",
			},
		},
		{
			name: "no latin side",
			row: &record.Row{
				ID:    "4",
				Index: "|ねこ",
			},
			expected: &Entry{
				ID:    "4",
				Title: "ねこ",
				Keys:  []string{"ねこ"},
				Body:  "|ねこ",
			},
		},
		{
			name: "cross-reference in index not rewritten",
			row: &record.Row{
				ID:      "7",
				Index:   "see ▲▲see also/42△△|x",
				Comment: "meaning&lt;CR&gt;more",
			},
			expected: &Entry{
				ID:    "7",
				Title: "see ▲▲see also/42△△",
				Keys:  []string{"see ▲▲see also/42△△", "x"},
				Body:  "see ▲▲see also/42△△|x",
			},
		},
		{
			name: "empty index",
			row:  &record.Row{ID: "5"},
		},
		{
			name: "malformed index",
			row: &record.Row{
				ID:    "6",
				Index: "cat",
			},
			err: phrase.ErrMalformedIndex,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			e, err := SpecializedRenderer{}.Render(test.row)
			if !errors.Is(err, test.err) {
				t.Fatalf("Render: unexpected error; want: %v, got: %v", test.err, err)
			}
			if diff := cmp.Diff(test.expected, e); diff != "" {
				t.Fatalf("Render (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestNewRenderer(t *testing.T) {
	t.Parallel()

	if _, ok := NewRenderer(Standard).(StandardRenderer); !ok {
		t.Errorf("NewRenderer(Standard): want StandardRenderer")
	}
	if _, ok := NewRenderer(Specialized).(SpecializedRenderer); !ok {
		t.Errorf("NewRenderer(Specialized): want SpecializedRenderer")
	}
}
