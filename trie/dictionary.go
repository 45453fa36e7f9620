package trie

// Wildcard is the pattern byte matching any single letter in Match.
const Wildcard = '.'

// WordDictionary stores lowercase words and answers pattern queries where
// Wildcard ('.') matches any one letter. Construct with NewWordDictionary.
type WordDictionary struct {
	root *node
}

// NewWordDictionary returns an empty dictionary.
func NewWordDictionary() *WordDictionary {
	return &WordDictionary{root: &node{}}
}

// AddWord inserts word. Returns ErrBadRune for bytes outside 'a'–'z' —
// including '.', which is reserved for patterns.
// Complexity: O(len(word)).
func (d *WordDictionary) AddWord(word string) error {
	for i := 0; i < len(word); i++ {
		if word[i] < 'a' || word[i] > 'z' {
			return ErrBadRune
		}
	}

	n := d.root
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

// Match reports whether any added word matches pattern, where each Wildcard
// byte matches exactly one letter and every other byte matches itself.
// A pattern byte outside letters and Wildcard matches nothing.
// Complexity: O(len(pattern)) without wildcards; each wildcard fans out over
// up to 26 children, O(26^w · len) worst case for w wildcards.
func (d *WordDictionary) Match(pattern string) bool {
	return match(d.root, pattern)
}

// match resolves pattern against the subtree at n: literal bytes descend one
// child, wildcards try all of them.
func match(n *node, pattern string) bool {
	if n == nil {
		return false
	}
	if pattern == "" {
		return n.terminal
	}

	b := pattern[0]
	if b == Wildcard {
		for _, child := range n.children {
			if child != nil && match(child, pattern[1:]) {
				return true
			}
		}

		return false
	}
	if b < 'a' || b > 'z' {
		return false
	}

	return match(n.children[b-'a'], pattern[1:])
}
