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

// Package lexml renders dictionary source rows as LeXML entries and writes
// them as XHTML documents.
//
// LeXML is XHTML with an additional namespace for headword keys. Each entry
// is written as a definition list:
//
//	<dl>
//	<dt id="42">cat (big) ねこ</dt>
//	<lexml:key type="headword">cat</lexml:key>
//	<lexml:key type="headword">cat big</lexml:key>
//	<lexml:key type="headword">ねこ</lexml:key>
//	<dd><p>...</p></dd>
//	</dl>
//
// The entry id is an anchor that other entries link to with cross-reference
// markers in their commentary.
package lexml
