// Copyright 2021 Google LLC
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

// Package edic converts edic dictionary sources into LeXML documents that
// can be compiled into EPWING dictionaries.
//
// A dictionary source is a directory of CSV files:
//  1. Each file has a header row followed by data rows.
//  2. Each data row holds an entry id, sub id, part of speech, key, index
//     expression and comment.
//  3. The index expression encodes the entry's Latin and Japanese headwords
//     in a compact notation. See package phrase.
//
// Each CSV file is converted to an XHTML document of the same base name
// with one definition list per entry and one lexml:key element per
// headword. Sources can also be loaded in memory and searched by headword
// with [Load] and [LoadAll].
package edic
