// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package trie implements a prefix tree over word tokens, with per
// end-of-word postings (document id → sorted positions) as the payload.
package trie

import (
	"golang.org/x/text/cases"
)

var foldCase = cases.Fold()

// Postings maps a document id to the sorted, strictly increasing list of
// positions at which a word occurs in that document.
type Postings map[int][]int

// Node is one node of the trie. The root node has an empty key and a nil
// parent; every other node's key is the single rune it represents, and
// its accumulated path from the root (excluding the root) spells the
// word prefix it stands for.
type Node struct {
	key      rune
	parent   *Node
	children map[rune]*Node
	end      bool
	postings Postings
}

func newNode(key rune, parent *Node) *Node {
	return &Node{key: key, parent: parent, children: map[rune]*Node{}}
}

// Key returns the node's character.
func (n *Node) Key() rune { return n.key }

// Parent returns the node's parent, or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// IsEnd reports whether this node terminates a word. Once set, this flag
// is never cleared.
func (n *Node) IsEnd() bool { return n.end }

// HasChild reports whether a child exists for the given character.
func (n *Node) HasChild(key rune) bool {
	_, ok := n.children[key]
	return ok
}

// GetChild returns the child for the given character, or nil if absent.
func (n *Node) GetChild(key rune) *Node {
	return n.children[key]
}

// HasPostings reports whether the node carries a non-nil postings map.
func (n *Node) HasPostings() bool { return n.postings != nil }

// Postings returns the node's postings map, creating and attaching an
// empty one on first use.
func (n *Node) Postings() Postings {
	if n.postings == nil {
		n.postings = Postings{}
	}
	return n.postings
}

// insertChild inserts child if no child with that key exists already;
// an existing child for the same key is preserved, never overwritten.
func (n *Node) insertChild(key rune) *Node {
	if existing, ok := n.children[key]; ok {
		return existing
	}
	child := newNode(key, n)
	n.children[key] = child
	return child
}

// Trie is a prefix tree of word tokens rooted at a sentinel node.
type Trie struct {
	root *Node
}

// New returns an empty Trie.
func New() *Trie {
	return &Trie{root: newNode(0, nil)}
}

// AddWord walks from the root, creating missing children along word,
// marks the terminal node as end-of-word, and returns it. Re-adding the
// same word is a no-op beyond returning the same node: the node's
// end-of-word flag and any existing postings are left untouched.
func (t *Trie) AddWord(word string, ignoreCase bool) *Node {
	current := t.root
	for _, r := range foldWord(word, ignoreCase) {
		current = current.insertChild(r)
	}
	current.end = true
	return current
}

// HasWord reports whether word was inserted (i.e. resolves to a node with
// the end-of-word flag set).
func (t *Trie) HasWord(word string, ignoreCase bool) bool {
	node := t.GetNode(word, ignoreCase)
	return node != nil && node.end
}

// GetNode returns the node at word's final character, regardless of
// end-of-word status — this also allows retrieval of interior prefix
// nodes — or nil if any character fails to resolve.
func (t *Trie) GetNode(word string, ignoreCase bool) *Node {
	current := t.root
	for _, r := range foldWord(word, ignoreCase) {
		if !current.HasChild(r) {
			return nil
		}
		current = current.GetChild(r)
	}
	return current
}

func foldWord(word string, ignoreCase bool) []rune {
	if ignoreCase {
		word = foldCase.String(word)
	}
	return []rune(word)
}
