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

import "testing"

func TestScanInlineFormatting(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantKind   FormatKind
		wantInner  string
	}{
		{"Strong", "*bold*", StrongKind, "bold"},
		{"Emphasis", "_em_", EmphasisKind, "em"},
		{"Monospace", "`code`", MonospaceKind, "code"},
		{"Superscript", "^sup^", SuperscriptKind, "sup"},
		{"Subscript", "~sub~", SubscriptKind, "sub"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := scanInline(test.input)
			if len(got) != 1 || got[0].Kind() != FormattedKind {
				t.Fatalf("scanInline(%q) = %+v; want single FormattedKind element", test.input, got)
			}
			if got[0].FormatKind() != test.wantKind {
				t.Errorf("FormatKind() = %v; want %v", got[0].FormatKind(), test.wantKind)
			}
			content := got[0].Content()
			if len(content) != 1 || content[0].Text() != test.wantInner {
				t.Errorf("Content() = %+v; want single Text %q", content, test.wantInner)
			}
		})
	}
}

func TestScanInlineUnterminatedFallsBackToText(t *testing.T) {
	got := scanInline("*never closes")
	if len(got) != 1 || got[0].Kind() != TextKind {
		t.Fatalf("scanInline(...) = %+v; want single literal Text element", got)
	}
	if got[0].Text() != "*never closes" {
		t.Errorf("Text() = %q; want %q", got[0].Text(), "*never closes")
	}
}

func TestScanInlineNoBacktrack(t *testing.T) {
	// Once the first '*' resolves against the second, the scanner never
	// reconsiders the second '*' as the opener of a new span.
	got := scanInline("*a*b*c*")
	if len(got) != 3 {
		t.Fatalf("scanInline(...) = %+v; want 3 elements", got)
	}
	if got[0].Kind() != FormattedKind || got[0].Content()[0].Text() != "a" {
		t.Errorf("elements[0] = %+v; want Formatted(a)", got[0])
	}
	if got[1].Kind() != TextKind || got[1].Text() != "b" {
		t.Errorf("elements[1] = %+v; want Text(b)", got[1])
	}
	if got[2].Kind() != FormattedKind {
		// "*c*" still forms its own span using the trailing pair of stars.
		t.Errorf("elements[2] = %+v; want Formatted", got[2])
	}
}

func TestScanInlineLinkMacro(t *testing.T) {
	got := scanInline("link:https://example.com[Example]")
	if len(got) != 1 || got[0].Kind() != MacroInlineKind || got[0].MacroKind() != LinkMacroKind {
		t.Fatalf("scanInline(...) = %+v; want single Link macro", got)
	}
	if got[0].Target() != "https://example.com" {
		t.Errorf("Target() = %q; want %q", got[0].Target(), "https://example.com")
	}
	label, ok := got[0].Label()
	if !ok || len(label) != 1 || label[0].Text() != "Example" {
		t.Errorf("Label() = %+v, %v; want single Text %q", label, ok, "Example")
	}
}

func TestScanInlineImageMacro(t *testing.T) {
	t.Run("WithAttrs", func(t *testing.T) {
		got := scanInline("image:diagram.png[Architecture diagram]")
		if len(got) != 1 || got[0].MacroKind() != ImageMacroKind {
			t.Fatalf("scanInline(...) = %+v; want single Image macro", got)
		}
		if got[0].Target() != "diagram.png" {
			t.Errorf("Target() = %q; want %q", got[0].Target(), "diagram.png")
		}
		attrs, ok := got[0].ImageAttrs()
		if !ok || attrs != "Architecture diagram" {
			t.Errorf("ImageAttrs() = %q, %v; want %q, true", attrs, ok, "Architecture diagram")
		}
	})

	t.Run("Unterminated", func(t *testing.T) {
		got := scanInline("image:broken.png no brackets here")
		if len(got) != 1 || got[0].Kind() != TextKind {
			t.Fatalf("scanInline(...) = %+v; want literal text fallback", got)
		}
		if got[0].Text() != "image:broken.png no brackets here" {
			t.Errorf("Text() = %q; want original input unchanged", got[0].Text())
		}
	})
}

func TestScanInlineAutolink(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantURL   string
		wantLabel string
		wantOK    bool
	}{
		{"Bare", "See https://example.com for details", "https://example.com", "", false},
		{"TrailingPeriod", "Visit http://example.com.", "http://example.com", "", false},
		{"WithLabel", "https://example.com[Home]", "https://example.com", "Home", true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := scanInline(test.input)
			var m InlineElement
			found := false
			for _, e := range got {
				if e.Kind() == MacroInlineKind && e.MacroKind() == LinkMacroKind {
					m = e
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("scanInline(%q) = %+v; want a Link macro element", test.input, got)
			}
			if m.Target() != test.wantURL {
				t.Errorf("Target() = %q; want %q", m.Target(), test.wantURL)
			}
			label, ok := m.Label()
			if ok != test.wantOK {
				t.Errorf("Label() ok = %v; want %v", ok, test.wantOK)
			}
			if ok && (len(label) != 1 || label[0].Text() != test.wantLabel) {
				t.Errorf("Label() = %+v; want single Text %q", label, test.wantLabel)
			}
		})
	}
}

func TestScanInlineCrossReference(t *testing.T) {
	t.Run("TargetOnly", func(t *testing.T) {
		got := scanInline("See <<intro>> for background.")
		var xref InlineElement
		for _, e := range got {
			if e.Kind() == MacroInlineKind && e.MacroKind() == CrossRefMacroKind {
				xref = e
			}
		}
		if xref.Target() != "intro" {
			t.Errorf("Target() = %q; want %q", xref.Target(), "intro")
		}
		if _, ok := xref.Label(); ok {
			t.Errorf("Label() present; want absent")
		}
	})

	t.Run("TargetAndLabel", func(t *testing.T) {
		got := scanInline("<<intro, the introduction>>")
		xref := got[0]
		if xref.Target() != "intro" {
			t.Errorf("Target() = %q; want %q", xref.Target(), "intro")
		}
		label, ok := xref.Label()
		if !ok || len(label) != 1 || label[0].Text() != "the introduction" {
			t.Errorf("Label() = %+v, %v; want single Text %q", label, ok, "the introduction")
		}
	})
}

func TestScanInlineTextMerging(t *testing.T) {
	got := scanInline("plain text with no markers")
	if len(got) != 1 || got[0].Kind() != TextKind {
		t.Fatalf("scanInline(...) = %+v; want a single merged Text element", got)
	}
	if got[0].Text() != "plain text with no markers" {
		t.Errorf("Text() = %q; want unchanged input", got[0].Text())
	}
}
