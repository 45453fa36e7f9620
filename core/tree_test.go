package core

import (
	"errors"
	"reflect"
	"testing"
)

func TestTreeLevelOrderRoundTrip(t *testing.T) {
	for _, enc := range [][]int{
		{1},
		{1, 2, 3},
		{3, 9, 20, NilMarker, NilMarker, 15, 7},
		{1, 2, NilMarker, 3},
		{1, NilMarker, 2, 3}, // nil left child ahead of later values
		{5, NilMarker, 4, NilMarker, 3, NilMarker, 2}, // right spine
	} {
		root, err := TreeFromLevelOrder(enc)
		if err != nil {
			t.Fatalf("TreeFromLevelOrder(%v) returned error: %v", enc, err)
		}
		got := TreeToLevelOrder(root)
		if !reflect.DeepEqual(got, enc) {
			t.Errorf("round trip = %v; want %v", got, enc)
		}
	}
}

func TestTreeFromLevelOrderEmpty(t *testing.T) {
	root, err := TreeFromLevelOrder(nil)
	if err != nil || root != nil {
		t.Errorf("empty encoding: root=%v err=%v; want nil, nil", root, err)
	}
	root, err = TreeFromLevelOrder([]int{NilMarker})
	if err != nil || root != nil {
		t.Errorf("marker-only encoding: root=%v err=%v; want nil, nil", root, err)
	}
}

func TestTreeFromLevelOrderMalformed(t *testing.T) {
	// Both child slots of the root are absent, so index 3 has no parent
	// slot left to fill.
	_, err := TreeFromLevelOrder([]int{1, NilMarker, NilMarker, 5})
	if !errors.Is(err, ErrBadLevelOrder) {
		t.Errorf("err = %v; want ErrBadLevelOrder", err)
	}
}

func TestTreeEncodeDecodeRightSpine(t *testing.T) {
	// A nil left child ahead of later values: the encoder emits one marker
	// for it and the decoder must consume exactly that one slot.
	root := &TreeNode{
		Val: 1,
		Right: &TreeNode{
			Val:  2,
			Left: &TreeNode{Val: 3},
		},
	}

	enc := TreeToLevelOrder(root)
	if !reflect.DeepEqual(enc, []int{1, NilMarker, 2, 3}) {
		t.Fatalf("encoding = %v; want [1 NilMarker 2 3]", enc)
	}

	back, err := TreeFromLevelOrder(enc)
	if err != nil {
		t.Fatalf("decode of own encoding failed: %v", err)
	}
	if !reflect.DeepEqual(TreeToLevelOrder(back), enc) {
		t.Errorf("decode(encode) changed shape: %v", TreeToLevelOrder(back))
	}
}

func TestTreeShape(t *testing.T) {
	root, err := TreeFromLevelOrder([]int{3, 9, 20, NilMarker, NilMarker, 15, 7})
	if err != nil {
		t.Fatal(err)
	}
	if root.Val != 3 || root.Left.Val != 9 || root.Right.Val != 20 {
		t.Fatalf("unexpected top levels: %+v", root)
	}
	if root.Left.Left != nil || root.Left.Right != nil {
		t.Error("leaf 9 should have no children")
	}
	if root.Right.Left.Val != 15 || root.Right.Right.Val != 7 {
		t.Errorf("children of 20 = %v, %v; want 15, 7", root.Right.Left, root.Right.Right)
	}
}
