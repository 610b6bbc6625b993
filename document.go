// Copyright 2024 The go-adoc Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package adoc

// Document is the root of a parsed AsciiDoc tree: an optional [Header]
// followed by an ordered sequence of top-level [Block]s.
type Document struct {
	Header *Header
	Blocks []*Block
}

// Header holds the document title line and the attribute entries that
// follow it, up to the first blank line.
type Header struct {
	Title      string
	Attributes []Attribute
	line       int
}

// Attribute is a single ":name: value" header entry. Value is absent
// (empty string, HasValue false) when the entry has no non-blank value.
type Attribute struct {
	Name  string
	Value string
	// HasValue reports whether Value is present (non-empty after trimming).
	HasValue bool
}
