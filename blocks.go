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

// BlockKind is an enumeration of the top-level block variants.
type BlockKind uint8

const (
	// SectionKind marks a Section block (see [Block.Level], [Block.Title], [Block.Children]).
	SectionKind BlockKind = 1 + iota
	// ParagraphKind marks a Paragraph block (see [Block.Inline]).
	ParagraphKind
	// DelimBlockKind marks a DelimitedBlock (see [Block.DelimKind], [Block.Raw], [Block.Language]).
	DelimBlockKind
	// ListBlockKind marks a List block (see [Block.ListKind], [Block.Items]).
	ListBlockKind
	// MetadataBlockKind marks a BlockMetadata block (see [Block.MetaKind]).
	MetadataBlockKind
)

// DelimKind is an enumeration of delimited block variants.
type DelimKind uint8

const (
	ListingKind DelimKind = 1 + iota
	ExampleKind
	LiteralKind
	SidebarKind
	QuoteKind
)

// ListKind is an enumeration of list and list-item variants.
type ListKind uint8

const (
	UnorderedKind ListKind = 1 + iota
	OrderedKind
	DescriptionKind
)

// MetaKind is an enumeration of [Block.MetaKind] variants.
type MetaKind uint8

const (
	MetaTitleKind MetaKind = 1 + iota
	MetaAttributeKind
	MetaAnchorKind
)

// Block is a tagged union over the five top-level block variants described
// by [BlockKind]. Only the fields relevant to the current Kind are
// meaningful; see the per-kind accessor comments below.
type Block struct {
	kind BlockKind
	line int // 1-based source line this block starts on

	// SectionKind
	level    int
	title    string
	children []*Block // always empty in this subset: sections are flattened to siblings

	// ParagraphKind
	inline []InlineElement

	// DelimBlockKind
	delimKind DelimKind
	raw       string
	language  string
	hasLang   bool

	// ListBlockKind
	listKind ListKind
	items    []ListItem

	// MetadataBlockKind
	metaKind  MetaKind
	metaTitle string   // MetaTitleKind
	metaAttrs []string // MetaAttributeKind
	anchorID  string   // MetaAnchorKind
}

// Kind reports which of the five block variants this is.
func (b *Block) Kind() BlockKind { return b.kind }

// Line returns the 1-based source line the block starts on.
func (b *Block) Line() int { return b.line }

// Level returns the section level: the count of leading '=' on the heading
// line, 2 through 6 for parsed sections (a line with more '=' is not a
// section heading). A level above 6 on a Block is kept as stored and
// clamped to 6 only at HTML emission time. Valid only when
// Kind() == SectionKind.
func (b *Block) Level() int { return b.level }

// Title returns the section title. Valid only when Kind() == SectionKind.
func (b *Block) Title() string { return b.title }

// Children returns the section's nested blocks. This subset never
// populates it (sections are flattened to siblings; see DESIGN.md), but the field exists so a future, less minimal grammar can
// populate it without changing the type.
func (b *Block) Children() []*Block { return b.children }

// Inline returns the paragraph's inline content. Valid only when
// Kind() == ParagraphKind.
func (b *Block) Inline() []InlineElement { return b.inline }

// DelimKind returns the delimited-block variant. Valid only when
// Kind() == DelimBlockKind.
func (b *Block) DelimKind() DelimKind { return b.delimKind }

// Raw returns the delimited block's verbatim interior text. Valid only
// when Kind() == DelimBlockKind.
func (b *Block) Raw() string { return b.raw }

// Language returns the delimited block's language annotation and whether
// one is present. Valid only when Kind() == DelimBlockKind.
func (b *Block) Language() (string, bool) { return b.language, b.hasLang }

// ListKind returns the list variant. Valid only when Kind() == ListBlockKind.
func (b *Block) ListKind() ListKind { return b.listKind }

// Items returns the list's items. Valid only when Kind() == ListBlockKind.
func (b *Block) Items() []ListItem { return b.items }

// MetaKind returns the block-metadata variant. Valid only when
// Kind() == MetadataBlockKind.
func (b *Block) MetaKind() MetaKind { return b.metaKind }

// MetaTitle returns the ".Title text" content. Valid only when
// MetaKind() == MetaTitleKind.
func (b *Block) MetaTitle() string { return b.metaTitle }

// MetaAttrs returns the trimmed entries of a "[attr1, attr2]" line. Valid
// only when MetaKind() == MetaAttributeKind.
func (b *Block) MetaAttrs() []string { return b.metaAttrs }

// AnchorID returns the id of a "[[anchor-id]]" line. Valid only when
// MetaKind() == MetaAnchorKind.
func (b *Block) AnchorID() string { return b.anchorID }

// ListItem is a tagged union over the three list-item variants. Kind
// distinguishes Unordered/Ordered (Level, Content) from Description
// (Term, Description).
type ListItem struct {
	kind ListKind
	line int

	level   int
	content []InlineElement

	term           string
	description    []InlineElement
	hasDescription bool
}

// Kind reports which list-item variant this is.
func (li ListItem) Kind() ListKind { return li.kind }

// Line returns the 1-based source line the item starts on.
func (li ListItem) Line() int { return li.line }

// Level returns the marker nesting depth (count of leading '*' or '.').
// Valid only for UnorderedKind and OrderedKind items.
func (li ListItem) Level() int { return li.level }

// Content returns the item's inline content. Valid only for UnorderedKind
// and OrderedKind items.
func (li ListItem) Content() []InlineElement { return li.content }

// Term returns the description-list term. Valid only for DescriptionKind
// items.
func (li ListItem) Term() string { return li.term }

// Description returns the description-list definition and whether one is
// present. Valid only for DescriptionKind items.
func (li ListItem) Description() ([]InlineElement, bool) { return li.description, li.hasDescription }
