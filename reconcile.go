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

import "strings"

// reconcileAttributes threads standalone "[attr,...]" paragraphs into the
// delimited block that immediately follows them, setting that block's
// language. It runs once over blocks, in place, left to right.
//
// After a merge the index is not stepped back, so a bracket-only paragraph
// that precedes the merged one is not revisited and ends up directly before
// the delimited block. A second call over the result is a no-op except in
// that case, where it merges that earlier paragraph too.
func reconcileAttributes(blocks []*Block) []*Block {
	i := 0
	for i < len(blocks) {
		attrs, ok := bracketParagraph(blocks[i])
		if !ok || i+1 >= len(blocks) || blocks[i+1].Kind() != DelimBlockKind {
			i++
			continue
		}
		lang, hasLang := deriveLanguage(attrs)
		next := *blocks[i+1]
		next.language = lang
		next.hasLang = hasLang
		blocks[i+1] = &next

		blocks = append(blocks[:i], blocks[i+1:]...)
		// Do not advance i: blocks[i] is now the former blocks[i+1].
	}
	return blocks
}

// bracketParagraph reports whether b is a Paragraph whose entire inline
// content is a single Text element shaped like "[...]", returning the
// comma-split, trimmed interior entries.
func bracketParagraph(b *Block) ([]string, bool) {
	if b.Kind() != ParagraphKind || len(b.inline) != 1 {
		return nil, false
	}
	el := b.inline[0]
	if el.Kind() != TextKind {
		return nil, false
	}
	s := el.Text()
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return nil, false
	}
	parts := strings.Split(s[1:len(s)-1], ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts, true
}

// deriveLanguage picks the language annotation from a bracket-attribute
// list's entries, per spec.md §4.3: the first entry that is non-empty and
// contains neither '=' nor ':' is taken as the language, as-is.
func deriveLanguage(attrs []string) (string, bool) {
	for _, a := range attrs {
		if a == "" {
			continue
		}
		if strings.ContainsAny(a, "=:") {
			continue
		}
		return a, true
	}
	return "", false
}
