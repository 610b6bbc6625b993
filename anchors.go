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
	"fmt"

	"github.com/shurcooL/sanitized_anchor_name"
	"golang.org/x/text/cases"
)

// caseFold normalizes a cross-reference target or anchor id for
// comparison, using Unicode case folding rather than a simple ASCII
// EqualFold, so that ids and targets written with differing Unicode case
// still match.
var caseFold = cases.Fold()

// anchorRegistry collects the ids a document's section titles and
// explicit [[id]] anchors resolve to, disambiguating collisions, and
// answers case-folded cross-reference lookups. It is built and consulted
// only by the HTML emitter (C5); it is not part of the parsed AST.
type anchorRegistry struct {
	used  map[string]bool
	index map[string]string // case-folded id -> canonical id
}

func newAnchorRegistry() *anchorRegistry {
	return &anchorRegistry{
		used:  make(map[string]bool),
		index: make(map[string]string),
	}
}

// addExplicit registers an id declared by a "[[id]]" block-metadata line,
// verbatim (no slug transform: the author wrote it literally).
func (r *anchorRegistry) addExplicit(id string) string {
	return r.reserve(id)
}

// sectionID derives and registers a section's anchor id from its title
// using the GitHub-style slug transform of sanitized_anchor_name. The
// title itself is also indexed (case-folded) alongside the slug, so a
// cross-reference written against the literal title text still resolves;
// the alias is only added if the key is not already claimed, so it can
// never shadow an explicit [[id]] anchor or an earlier section's own id.
func (r *anchorRegistry) sectionID(title string) string {
	id := r.reserve(sanitized_anchor_name.Create(title))
	if key := caseFold.String(title); r.index[key] == "" {
		r.index[key] = id
	}
	return id
}

// reserve registers base, appending "_2", "_3", ... on collision, and
// returns the id actually assigned.
func (r *anchorRegistry) reserve(base string) string {
	if base == "" {
		base = "_"
	}
	id := base
	for n := 2; r.used[id]; n++ {
		id = fmt.Sprintf("%s_%d", base, n)
	}
	r.used[id] = true
	r.index[caseFold.String(id)] = id
	return id
}

// resolve looks up a cross-reference target against the registered ids,
// case-folded.
func (r *anchorRegistry) resolve(target string) (string, bool) {
	id, ok := r.index[caseFold.String(target)]
	return id, ok
}
