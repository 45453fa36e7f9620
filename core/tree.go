package core

// NilMarker stands in for an absent child in level-order tree encodings.
// It deliberately sits far outside the value ranges the catalog's exercises
// use, so fixtures never collide with it.
const NilMarker = int(^uint(0)>>1) - 1021

// TreeNode is a binary tree node: an integer value plus ownership of the two
// child subtrees. A nil *TreeNode is the empty tree.
type TreeNode struct {
	// Val is the payload carried by this node.
	Val int

	// Left and Right are the owned child subtrees, nil when absent.
	Left  *TreeNode
	Right *TreeNode
}

// TreeFromLevelOrder decodes the familiar level-order encoding into a tree:
// vals lists nodes level by level, NilMarker marking absent children. An
// absent node consumes its one marker slot and contributes no child slots of
// its own. Trailing NilMarker entries may be omitted. Returns
// ErrBadLevelOrder when values remain after every child slot is filled.
// Complexity: O(n) time and space.
func TreeFromLevelOrder(vals []int) (*TreeNode, error) {
	if len(vals) == 0 || vals[0] == NilMarker {
		return nil, nil
	}

	root := &TreeNode{Val: vals[0]}
	// queue holds the next parents awaiting children, in level order; only
	// real nodes enter it, so each dequeued parent owns the next two slots.
	queue := []*TreeNode{root}
	i := 1
	for len(queue) > 0 && i < len(vals) {
		parent := queue[0]
		queue = queue[1:]

		if vals[i] != NilMarker {
			parent.Left = &TreeNode{Val: vals[i]}
			queue = append(queue, parent.Left)
		}
		i++

		if i < len(vals) {
			if vals[i] != NilMarker {
				parent.Right = &TreeNode{Val: vals[i]}
				queue = append(queue, parent.Right)
			}
			i++
		}
	}

	// Leftover values have no parent slot to hang from.
	if i < len(vals) {
		return nil, ErrBadLevelOrder
	}

	return root, nil
}

// TreeToLevelOrder encodes root back into the level-order form produced by
// TreeFromLevelOrder, trimming trailing NilMarker entries. The two functions
// round-trip: decode(encode(t)) reproduces t shape-for-shape.
// Complexity: O(n).
func TreeToLevelOrder(root *TreeNode) []int {
	if root == nil {
		return nil
	}

	var out []int
	queue := []*TreeNode{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if n == nil {
			out = append(out, NilMarker)

			continue
		}
		out = append(out, n.Val)
		queue = append(queue, n.Left, n.Right)
	}

	// Trim the trailing run of markers; it carries no shape information.
	end := len(out)
	for end > 0 && out[end-1] == NilMarker {
		end--
	}

	return out[:end]
}
