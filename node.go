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

// A Node is either a *[Block] or an [InlineElement], giving [Walk] a single
// type to recurse over. Unlike a block tree with nested containers, the
// only structural children a Node reports are a paragraph or list item's
// inline content, and a formatting span's nested inline content: this
// subset never nests block inside block (see [Block.Children]).
type Node interface {
	// ChildCount returns the number of children this node has.
	ChildCount() int
	// Child returns the i'th child, 0 <= i < ChildCount().
	Child(i int) Node
}

// blockNode adapts a *Block to [Node].
type blockNode struct{ b *Block }

func (n blockNode) ChildCount() int {
	switch n.b.Kind() {
	case ParagraphKind:
		return len(n.b.inline)
	case ListBlockKind:
		return len(n.b.listInlineElements())
	default:
		return 0
	}
}

func (n blockNode) Child(i int) Node {
	if n.b.Kind() == ListBlockKind {
		return inlineNode{n.b.listInlineElements()[i]}
	}
	return inlineNode{&n.b.inline[i]}
}

// listInlineElements flattens a ListBlockKind block's item content
// (Content for unordered/ordered items, Description for description-list
// items) into a single sequence of addressable elements, giving [Walk] a
// uniform view over every list-item variant.
func (b *Block) listInlineElements() []*InlineElement {
	var out []*InlineElement
	for i := range b.items {
		item := &b.items[i]
		if item.kind == DescriptionKind {
			if item.hasDescription {
				for j := range item.description {
					out = append(out, &item.description[j])
				}
			}
			continue
		}
		for j := range item.content {
			out = append(out, &item.content[j])
		}
	}
	return out
}

// inlineNode adapts an *InlineElement to [Node].
type inlineNode struct{ e *InlineElement }

func (n inlineNode) ChildCount() int {
	switch n.e.Kind() {
	case FormattedKind:
		return len(n.e.content)
	default:
		return 0
	}
}

func (n inlineNode) Child(i int) Node {
	return inlineNode{&n.e.content[i]}
}

// Cursor describes a [Node] encountered during [Walk].
type Cursor struct {
	node   Node
	parent Node
	index  int
}

// Node returns the current [Node].
func (c *Cursor) Node() Node { return c.node }

// Parent returns the parent of the current [Node].
func (c *Cursor) Parent() Node { return c.parent }

// Index returns the index >= 0 of the current [Node] among its parent's
// children, or a value < 0 if the current [Node] has no parent.
func (c *Cursor) Index() int { return c.index }

// WalkOptions is the set of parameters to [Walk].
type WalkOptions struct {
	// Pre, if not nil, is called for each node before its children are
	// traversed. If Pre returns false, the node's children are skipped and
	// Post is not called for that node.
	Pre func(c *Cursor) bool
	// Post, if not nil, is called for each node after its children are
	// traversed. If Post returns false, traversal stops immediately.
	Post func(c *Cursor) bool
}

// Walk traverses a [Node] recursively, starting with root, calling
// [WalkOptions.Pre] and [WalkOptions.Post] at each step.
func Walk(root Node, opts *WalkOptions) {
	type frame struct {
		Cursor
		post bool
	}

	stack := []frame{{Cursor: Cursor{node: root, index: -1}}}
	cursor := new(Cursor)
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if curr.post {
			if opts.Post != nil {
				*cursor = curr.Cursor
				if !opts.Post(cursor) {
					break
				}
			}
			continue
		}

		if opts.Pre != nil {
			*cursor = curr.Cursor
			if !opts.Pre(cursor) {
				continue
			}
		}
		curr.post = true
		stack = append(stack, curr)
		for i := curr.node.ChildCount() - 1; i >= 0; i-- {
			stack = append(stack, frame{
				Cursor: Cursor{
					parent: curr.node,
					node:   curr.node.Child(i),
					index:  i,
				},
			})
		}
	}
}
