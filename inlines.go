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

// InlineKind is an enumeration of the four inline element variants.
type InlineKind uint8

const (
	// TextKind marks a run of literal, unformatted text.
	TextKind InlineKind = 1 + iota
	// FormattedKind marks a formatting span; see [InlineElement.FormatKind].
	FormattedKind
	// MacroInlineKind marks a macro invocation; see [InlineElement.MacroKind].
	MacroInlineKind
	// LineBreakKind marks a hard line break produced by a trailing " +".
	LineBreakKind
)

// FormatKind is an enumeration of the formatting-span variants.
type FormatKind uint8

const (
	StrongKind FormatKind = 1 + iota
	EmphasisKind
	MonospaceKind
	SuperscriptKind
	SubscriptKind
)

// MacroKind is an enumeration of the macro variants.
type MacroKind uint8

const (
	LinkMacroKind MacroKind = 1 + iota
	ImageMacroKind
	CrossRefMacroKind
)

// InlineElement is a tagged union over the four inline variants described
// by [InlineKind]. Only the fields relevant to the current Kind are
// meaningful; see the per-kind accessor comments below.
type InlineElement struct {
	kind InlineKind

	// TextKind
	text string

	// FormattedKind
	formatKind FormatKind
	content    []InlineElement

	// MacroInlineKind
	macroKind   MacroKind
	target      string // link/autolink URL, image path, or cross-reference id
	label       []InlineElement
	hasLabel    bool   // LinkMacroKind, CrossRefMacroKind: explicit display text given
	imageAttrs  string // ImageMacroKind: raw "alt,width,..." attribute text
	hasImgAttrs bool
}

// Kind reports which of the four inline variants this is.
func (e InlineElement) Kind() InlineKind { return e.kind }

// Text returns the literal text. Valid only when Kind() == TextKind.
func (e InlineElement) Text() string { return e.text }

// FormatKind returns the formatting-span variant. Valid only when
// Kind() == FormattedKind.
func (e InlineElement) FormatKind() FormatKind { return e.formatKind }

// Content returns the formatting span's nested inline content. Valid only
// when Kind() == FormattedKind.
func (e InlineElement) Content() []InlineElement { return e.content }

// MacroKind returns the macro variant. Valid only when
// Kind() == MacroInlineKind.
func (e InlineElement) MacroKind() MacroKind { return e.macroKind }

// Target returns the macro's URL (LinkMacroKind, including bare
// autolinks), image path (ImageMacroKind), or cross-reference id
// (CrossRefMacroKind). Valid only when Kind() == MacroInlineKind.
func (e InlineElement) Target() string { return e.target }

// Label returns the macro's display text and whether one was given
// explicitly. Valid only for LinkMacroKind and CrossRefMacroKind; a bare
// autolink reports false unless it is immediately followed by a non-empty
// "[label]", and without one its rendered label is the target URL itself.
func (e InlineElement) Label() ([]InlineElement, bool) { return e.label, e.hasLabel }

// ImageAttrs returns the image macro's raw attribute-list text (used as
// the rendered alt text) and whether one was given. Valid only when
// MacroKind() == ImageMacroKind.
func (e InlineElement) ImageAttrs() (string, bool) { return e.imageAttrs, e.hasImgAttrs }

// text returns a plain-text [InlineElement] of kind TextKind.
func text(s string) InlineElement {
	return InlineElement{kind: TextKind, text: s}
}
