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

import (
	"go4.org/bytereplacer"
	"golang.org/x/net/html/atom"
)

// htmlEscaper replaces all five reserved characters in a single
// simultaneous pass. Doing the replacement this way (rather than five
// sequential strings.ReplaceAll calls, or a switch over runs like the
// teacher's escapeHTML) makes the "& must be replaced first" ordering
// rule in spec.md §4.4 a structural guarantee rather than a matter of
// case-order discipline: every source byte is matched against the
// original input exactly once.
var htmlEscaper = bytereplacer.New(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

func escape(s string) []byte {
	return htmlEscaper.Replace([]byte(s))
}

// HTML renders d to an HTML fragment. HTML is a pure function: it
// performs no I/O and holds no state beyond the string under
// construction.
func (d *Document) HTML() string {
	st := &htmlState{
		reg:           newAnchorRegistry(),
		sectionIDs:    make(map[*Block]string),
		referencedIDs: make(map[string]bool),
	}
	st.collectAnchors(d)

	if d.Header != nil {
		st.openTag(atom.H1)
		st.dst = append(st.dst, escape(d.Header.Title)...)
		st.closeTag(atom.H1)
		st.dst = append(st.dst, '\n')
	}
	for _, b := range d.Blocks {
		st.block(b)
	}
	return string(st.dst)
}

type htmlState struct {
	dst        []byte
	reg        *anchorRegistry
	sectionIDs map[*Block]string

	// referencedIDs holds the canonical ids that some CrossReference in
	// the document actually resolves to. Only these get an id="..."
	// attribute emitted on their heading; spec.md's plain <hN>title</hN>
	// is otherwise left unchanged (see collectAnchors).
	referencedIDs map[string]bool
}

// collectAnchors walks the body twice, in document order, before any HTML
// is emitted. The first pass assigns every Section an id and registers
// every explicit [[id]] anchor, so that a CrossReference anywhere in the
// document (including one preceding its target) can resolve. The second
// pass walks every block's inline content via [Walk], recording which
// registered ids are actually the resolution target of some
// CrossReference, so block can decide which headings need an id attribute
// at all.
func (st *htmlState) collectAnchors(d *Document) {
	for _, b := range d.Blocks {
		switch b.Kind() {
		case SectionKind:
			st.sectionIDs[b] = st.reg.sectionID(b.Title())
		case MetadataBlockKind:
			if b.MetaKind() == MetaAnchorKind {
				st.reg.addExplicit(b.AnchorID())
			}
		}
	}

	for _, b := range d.Blocks {
		Walk(blockNode{b}, &WalkOptions{
			Post: func(c *Cursor) bool {
				in, ok := c.Node().(inlineNode)
				if !ok || in.e.Kind() != MacroInlineKind || in.e.MacroKind() != CrossRefMacroKind {
					return true
				}
				if id, ok := st.reg.resolve(in.e.Target()); ok {
					st.referencedIDs[id] = true
				}
				return true
			},
		})
	}
}

func (st *htmlState) openTagAttr(name atom.Atom) {
	st.dst = append(st.dst, '<')
	st.dst = append(st.dst, name.String()...)
}

func (st *htmlState) openTag(name atom.Atom) {
	st.openTagAttr(name)
	st.dst = append(st.dst, '>')
}

func (st *htmlState) closeTag(name atom.Atom) {
	st.dst = append(st.dst, "</"...)
	st.dst = append(st.dst, name.String()...)
	st.dst = append(st.dst, '>')
}

func sectionTag(level int) atom.Atom {
	if level > 6 {
		level = 6
	}
	if level < 1 {
		level = 1
	}
	switch level {
	case 1:
		return atom.H1
	case 2:
		return atom.H2
	case 3:
		return atom.H3
	case 4:
		return atom.H4
	case 5:
		return atom.H5
	default:
		return atom.H6
	}
}

func (st *htmlState) block(b *Block) {
	switch b.Kind() {
	case SectionKind:
		tag := sectionTag(b.Level())
		id := st.sectionIDs[b]
		st.openTagAttr(tag)
		if st.referencedIDs[id] {
			st.dst = append(st.dst, ` id="`...)
			st.dst = append(st.dst, escape(id)...)
			st.dst = append(st.dst, `"`...)
		}
		st.dst = append(st.dst, '>')
		st.dst = append(st.dst, escape(b.Title())...)
		st.closeTag(tag)
		st.dst = append(st.dst, '\n')
		for _, c := range b.Children() {
			st.block(c)
		}
	case ParagraphKind:
		st.openTag(atom.P)
		st.inlineSeq(b.Inline())
		st.closeTag(atom.P)
		st.dst = append(st.dst, '\n')
	case DelimBlockKind:
		st.delimBlock(b)
	case ListBlockKind:
		st.list(b)
	case MetadataBlockKind:
		// Emits nothing, per spec.md §4.4.
	}
}

func (st *htmlState) delimBlock(b *Block) {
	content := escape(b.Raw())
	switch b.DelimKind() {
	case ListingKind:
		st.openTag(atom.Pre)
		st.openTagAttr(atom.Code)
		if lang, ok := b.Language(); ok {
			st.dst = append(st.dst, ` class="language-`...)
			st.dst = append(st.dst, escape(lang)...)
			st.dst = append(st.dst, `"`...)
		}
		st.dst = append(st.dst, '>')
		st.dst = append(st.dst, content...)
		st.closeTag(atom.Code)
		st.closeTag(atom.Pre)
	case ExampleKind:
		st.dst = append(st.dst, `<div class="example">`...)
		st.dst = append(st.dst, content...)
		st.dst = append(st.dst, `</div>`...)
	case LiteralKind:
		st.openTag(atom.Pre)
		st.dst = append(st.dst, content...)
		st.closeTag(atom.Pre)
	case SidebarKind:
		st.openTag(atom.Aside)
		st.dst = append(st.dst, content...)
		st.closeTag(atom.Aside)
	case QuoteKind:
		st.openTag(atom.Blockquote)
		st.dst = append(st.dst, content...)
		st.closeTag(atom.Blockquote)
	}
	st.dst = append(st.dst, '\n')
}

func (st *htmlState) list(b *Block) {
	var tag atom.Atom
	switch b.ListKind() {
	case UnorderedKind:
		tag = atom.Ul
	case OrderedKind:
		tag = atom.Ol
	case DescriptionKind:
		tag = atom.Dl
	}
	st.openTag(tag)
	st.dst = append(st.dst, '\n')
	for _, item := range b.Items() {
		if item.Kind() == DescriptionKind {
			st.openTag(atom.Dt)
			st.dst = append(st.dst, escape(item.Term())...)
			st.closeTag(atom.Dt)
			st.dst = append(st.dst, '\n')
			if desc, ok := item.Description(); ok {
				st.openTag(atom.Dd)
				st.inlineSeq(desc)
				st.closeTag(atom.Dd)
				st.dst = append(st.dst, '\n')
			}
			continue
		}
		st.openTag(atom.Li)
		st.inlineSeq(item.Content())
		st.closeTag(atom.Li)
		st.dst = append(st.dst, '\n')
	}
	st.closeTag(tag)
	st.dst = append(st.dst, '\n')
}

func (st *htmlState) inlineSeq(elems []InlineElement) {
	for _, e := range elems {
		st.inline(e)
	}
}

func formatTag(fk FormatKind) atom.Atom {
	switch fk {
	case StrongKind:
		return atom.Strong
	case EmphasisKind:
		return atom.Em
	case MonospaceKind:
		return atom.Code
	case SuperscriptKind:
		return atom.Sup
	default: // SubscriptKind
		return atom.Sub
	}
}

func (st *htmlState) inline(e InlineElement) {
	switch e.Kind() {
	case TextKind:
		st.dst = append(st.dst, escape(e.Text())...)
	case LineBreakKind:
		st.dst = append(st.dst, "<br>\n"...)
	case FormattedKind:
		tag := formatTag(e.FormatKind())
		st.openTag(tag)
		st.inlineSeq(e.Content())
		st.closeTag(tag)
	case MacroInlineKind:
		st.macro(e)
	}
}

func (st *htmlState) macro(e InlineElement) {
	switch e.MacroKind() {
	case LinkMacroKind:
		st.openTagAttr(atom.A)
		st.dst = append(st.dst, ` href="`...)
		st.dst = append(st.dst, escape(e.Target())...)
		st.dst = append(st.dst, `">`...)
		if label, ok := e.Label(); ok {
			st.inlineSeq(label)
		} else {
			st.dst = append(st.dst, escape(e.Target())...)
		}
		st.closeTag(atom.A)
	case ImageMacroKind:
		st.openTagAttr(atom.Img)
		st.dst = append(st.dst, ` src="`...)
		st.dst = append(st.dst, escape(e.Target())...)
		st.dst = append(st.dst, `" alt="`...)
		if attrs, ok := e.ImageAttrs(); ok {
			st.dst = append(st.dst, escape(attrs)...)
		} else {
			st.dst = append(st.dst, "Image"...)
		}
		st.dst = append(st.dst, `">`...)
	case CrossRefMacroKind:
		href := e.Target()
		if resolved, ok := st.reg.resolve(href); ok {
			href = resolved
		}
		st.openTagAttr(atom.A)
		st.dst = append(st.dst, ` href="#`...)
		st.dst = append(st.dst, escape(href)...)
		st.dst = append(st.dst, `">`...)
		if label, ok := e.Label(); ok {
			st.inlineSeq(label)
		} else {
			st.dst = append(st.dst, escape(e.Target())...)
		}
		st.closeTag(atom.A)
	}
}
