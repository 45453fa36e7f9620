package trie

import "errors"

// ErrBadRune indicates a word contains a byte outside 'a'–'z'.
var ErrBadRune = errors.New("trie: word must be lowercase ASCII letters")

// alphabet is the fixed fan-out of every node.
const alphabet = 26

// node is one trie node: a fixed child array indexed by letter offset, plus
// a flag marking the end of an inserted word.
type node struct {
	children [alphabet]*node
	terminal bool
}

// Trie is a prefix tree over lowercase ASCII words. The zero value is not
// usable; construct with NewTrie.
type Trie struct {
	root *node
}

// NewTrie returns an empty trie.
func NewTrie() *Trie {
	return &Trie{root: &node{}}
}

// Insert adds word to the trie, allocating nodes along its path as needed.
// Inserting a word twice is a no-op. Returns ErrBadRune if word contains a
// byte outside 'a'–'z'; the trie is unchanged in that case.
// Complexity: O(len(word)).
func (t *Trie) Insert(word string) error {
	// Validate first so a rejected word leaves no partial path behind.
	for i := 0; i < len(word); i++ {
		if word[i] < 'a' || word[i] > 'z' {
			return ErrBadRune
		}
	}

	n := t.root
	for i := 0; i < len(word); i++ {
		c := word[i] - 'a'
		if n.children[c] == nil {
			n.children[c] = &node{}
		}
		n = n.children[c]
	}
	n.terminal = true

	return nil
}

// Search reports whether word was inserted exactly. Prefixes of inserted
// words do not match unless inserted themselves.
// Complexity: O(len(word)).
func (t *Trie) Search(word string) bool {
	n := t.walk(word)

	return n != nil && n.terminal
}

// StartsWith reports whether any inserted word begins with prefix. The empty
// prefix matches any non-empty trie — and also the empty trie, since every
// word starts with "".
// Complexity: O(len(prefix)).
func (t *Trie) StartsWith(prefix string) bool {
	return t.walk(prefix) != nil
}

// walk follows s from the root, returning the final node or nil when the
// path breaks off (including on bytes outside 'a'–'z').
func (t *Trie) walk(s string) *node {
	n := t.root
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return nil
		}
		n = n.children[s[i]-'a']
		if n == nil {
			return nil
		}
	}

	return n
}
