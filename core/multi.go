package core

import "errors"

// ErrBadMultiLevel indicates a multilevel fixture attaches a child level at
// an index outside its parent level, or declares an empty level.
var ErrBadMultiLevel = errors.New("core: malformed multilevel fixture")

// MultiNode is a doubly-linked list node with an optional child level: Next
// and Child are owned links, Prev is the non-owning back reference kept
// consistent with Next.
type MultiNode struct {
	// Val is the payload carried by this node.
	Val int

	// Prev points back to the predecessor on the same level (non-owning).
	Prev *MultiNode

	// Next is the owned successor on the same level.
	Next *MultiNode

	// Child is the owned head of a nested level, or nil.
	Child *MultiNode
}

// RandomNode is a singly-linked list node with an extra non-owning Random
// reference to an arbitrary node of the same list (or nil).
type RandomNode struct {
	// Val is the payload carried by this node.
	Val int

	// Next is the owned successor, or nil at the tail.
	Next *RandomNode

	// Random points anywhere into the same list, or nil. It never owns its
	// target.
	Random *RandomNode
}

// Level describes one level of a multilevel fixture: the level's values and
// the index within the parent level under which it hangs as a child. At is
// ignored for the first level.
type Level struct {
	Vals []int
	At   int
}

// MultiFromLevels builds a multilevel doubly-linked list from level
// descriptors. Level 0 is the top level; each subsequent level becomes the
// Child of the node at index At of the level before it. Prev links are wired
// on every level. Returns ErrBadMultiLevel for empty levels or out-of-range
// attachment points.
// Complexity: O(total nodes).
func MultiFromLevels(levels []Level) (*MultiNode, error) {
	if len(levels) == 0 {
		return nil, nil
	}

	var head, parentHead *MultiNode
	for li, lvl := range levels {
		if len(lvl.Vals) == 0 {
			return nil, ErrBadMultiLevel
		}

		// Build this level as a plain doubly-linked run.
		lvlHead := &MultiNode{Val: lvl.Vals[0]}
		tail := lvlHead
		for _, v := range lvl.Vals[1:] {
			tail.Next = &MultiNode{Val: v, Prev: tail}
			tail = tail.Next
		}

		if li == 0 {
			head = lvlHead
		} else {
			anchor := parentHead
			for i := 0; i < lvl.At; i++ {
				if anchor == nil {
					return nil, ErrBadMultiLevel
				}
				anchor = anchor.Next
			}
			if anchor == nil {
				return nil, ErrBadMultiLevel
			}
			anchor.Child = lvlHead
		}
		parentHead = lvlHead
	}

	return head, nil
}

// MultiToSlice walks the top-level Next chain of head and returns its values.
// Flattened lists therefore serialize completely; unflattened child levels
// are ignored by design, so tests can distinguish the two states.
// Complexity: O(n).
func MultiToSlice(head *MultiNode) []int {
	var out []int
	for n := head; n != nil; n = n.Next {
		out = append(out, n.Val)
	}

	return out
}

// RandomFromPairs builds a random-pointer list from (value, randomIndex)
// pairs; index -1 means the Random reference is nil. Returns ErrBadCyclePos
// for any other out-of-range index.
// Complexity: O(n).
func RandomFromPairs(vals []int, random []int) (*RandomNode, error) {
	if len(vals) == 0 {
		return nil, nil
	}

	// First pass: allocate nodes and wire Next.
	nodes := make([]*RandomNode, len(vals))
	for i, v := range vals {
		nodes[i] = &RandomNode{Val: v}
		if i > 0 {
			nodes[i-1].Next = nodes[i]
		}
	}

	// Second pass: wire the non-owning Random references by index.
	for i, r := range random {
		if i >= len(nodes) {
			break
		}
		if r == -1 {
			continue
		}
		if r < 0 || r >= len(nodes) {
			return nil, ErrBadCyclePos
		}
		nodes[i].Random = nodes[r]
	}

	return nodes[0], nil
}

// RandomToPairs serializes a random-pointer list back into the
// (values, randomIndexes) form accepted by RandomFromPairs, using -1 for nil
// Random references.
// Complexity: O(n²) worst case due to index lookups; fixtures are tiny.
func RandomToPairs(head *RandomNode) ([]int, []int) {
	var order []*RandomNode
	for n := head; n != nil; n = n.Next {
		order = append(order, n)
	}

	vals := make([]int, len(order))
	random := make([]int, len(order))
	for i, n := range order {
		vals[i] = n.Val
		random[i] = -1
		for j, m := range order {
			if n.Random == m && n.Random != nil {
				random[i] = j

				break
			}
		}
	}

	return vals, random
}
