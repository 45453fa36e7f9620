// Package floyd_test contains unit tests for the fast/slow pointer family.
// These tests validate cycle detection and entry location against fixtures
// with cycles at known positions, midpoint selection for odd and even
// lengths, nth-from-end removal including head removal, and the in-place
// palindrome check with restoration.
package floyd_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/algopat/core"
	"github.com/katalvlaran/algopat/floyd"
)

// ------------------------------------------------------------------------
// 1. Cycle detection: acyclic fixtures, cycles at every position, self-loops.
// ------------------------------------------------------------------------

func TestHasCycle_Acyclic(t *testing.T) {
	for _, vals := range [][]int{nil, {1}, {1, 2}, {1, 2, 3, 4, 5}} {
		if floyd.HasCycle(core.FromSlice(vals)) {
			t.Errorf("HasCycle(%v) = true; want false", vals)
		}
	}
}

func TestHasCycle_EveryEntryPosition(t *testing.T) {
	vals := []int{3, 2, 0, -4, 9, 11}
	for pos := 0; pos < len(vals); pos++ {
		head, err := core.FromSliceWithCycle(vals, pos)
		if err != nil {
			t.Fatal(err)
		}
		if !floyd.HasCycle(head) {
			t.Errorf("cycle at pos %d not detected", pos)
		}
	}
}

func TestCycleEntry_ReturnsOriginalNode(t *testing.T) {
	vals := []int{3, 2, 0, -4, 9}
	for pos := 0; pos < len(vals); pos++ {
		head, err := core.FromSliceWithCycle(vals, pos)
		if err != nil {
			t.Fatal(err)
		}

		// Walk to the node originally at index pos to compare identity.
		want := head
		for i := 0; i < pos; i++ {
			want = want.Next
		}

		got := floyd.CycleEntry(head)
		if got != want {
			t.Errorf("pos %d: entry node = %p (val %d); want %p (val %d)",
				pos, got, got.Val, want, want.Val)
		}
	}
}

func TestCycleEntry_Acyclic(t *testing.T) {
	if got := floyd.CycleEntry(core.FromSlice([]int{1, 2, 3})); got != nil {
		t.Errorf("CycleEntry on acyclic list = %v; want nil", got)
	}
	if got := floyd.CycleEntry(nil); got != nil {
		t.Errorf("CycleEntry(nil) = %v; want nil", got)
	}
}

func TestCycleEntry_SelfLoop(t *testing.T) {
	head, err := core.FromSliceWithCycle([]int{1}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := floyd.CycleEntry(head); got != head {
		t.Errorf("self-loop entry = %v; want the head itself", got)
	}
}

// ------------------------------------------------------------------------
// 2. Midpoint selection.
// ------------------------------------------------------------------------

func TestMiddle(t *testing.T) {
	for _, tc := range []struct {
		vals []int
		want int
	}{
		{[]int{1}, 1},
		{[]int{1, 2}, 2},          // even: second middle
		{[]int{1, 2, 3}, 2},       // odd: exact middle
		{[]int{1, 2, 3, 4}, 3},    // even: second middle
		{[]int{1, 2, 3, 4, 5}, 3}, // odd
	} {
		got := floyd.Middle(core.FromSlice(tc.vals))
		if got == nil || got.Val != tc.want {
			t.Errorf("Middle(%v) = %v; want node with value %d", tc.vals, got, tc.want)
		}
	}
	if floyd.Middle(nil) != nil {
		t.Error("Middle(nil) should be nil")
	}
}

// ------------------------------------------------------------------------
// 3. RemoveNthFromEnd: classic example, head removal, bad indices.
// ------------------------------------------------------------------------

func TestRemoveNthFromEnd(t *testing.T) {
	head, err := floyd.RemoveNthFromEnd(core.FromSlice([]int{1, 2, 3, 4, 5}), 2)
	if err != nil {
		t.Fatal(err)
	}
	got, err := core.ToSlice(head)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []int{1, 2, 3, 5}) {
		t.Errorf("removeNthFromEnd([1..5], 2) = %v; want [1 2 3 5]", got)
	}
}

func TestRemoveNthFromEnd_Head(t *testing.T) {
	head, err := floyd.RemoveNthFromEnd(core.FromSlice([]int{1, 2}), 2)
	if err != nil {
		t.Fatal(err)
	}
	got, _ := core.ToSlice(head)
	if !reflect.DeepEqual(got, []int{2}) {
		t.Errorf("removing the head: got %v; want [2]", got)
	}

	head, err = floyd.RemoveNthFromEnd(core.FromSlice([]int{1}), 1)
	if err != nil {
		t.Fatal(err)
	}
	if head != nil {
		t.Errorf("removing the only node should leave nil, got %v", head)
	}
}

func TestRemoveNthFromEnd_BadIndex(t *testing.T) {
	if _, err := floyd.RemoveNthFromEnd(core.FromSlice([]int{1, 2}), 0); !errors.Is(err, floyd.ErrBadIndex) {
		t.Errorf("n=0: err = %v; want ErrBadIndex", err)
	}
	if _, err := floyd.RemoveNthFromEnd(core.FromSlice([]int{1, 2}), 3); !errors.Is(err, floyd.ErrBadIndex) {
		t.Errorf("n>len: err = %v; want ErrBadIndex", err)
	}
	if _, err := floyd.RemoveNthFromEnd(nil, 1); !errors.Is(err, floyd.ErrBadIndex) {
		t.Errorf("nil list: err = %v; want ErrBadIndex", err)
	}
}

// ------------------------------------------------------------------------
// 4. Palindrome check and list restoration.
// ------------------------------------------------------------------------

func TestIsPalindrome(t *testing.T) {
	for _, tc := range []struct {
		vals []int
		want bool
	}{
		{nil, true},
		{[]int{1}, true},
		{[]int{1, 1}, true},
		{[]int{1, 2}, false},
		{[]int{1, 2, 1}, true},
		{[]int{1, 2, 2, 1}, true},
		{[]int{1, 2, 3, 2, 1}, true},
		{[]int{1, 2, 3, 4}, false},
	} {
		if got := floyd.IsPalindrome(core.FromSlice(tc.vals)); got != tc.want {
			t.Errorf("IsPalindrome(%v) = %v; want %v", tc.vals, got, tc.want)
		}
	}
}

func TestIsPalindrome_RestoresList(t *testing.T) {
	for _, vals := range [][]int{{1, 2, 3, 2, 1}, {1, 2, 3, 4}, {5, 5}} {
		head := core.FromSlice(vals)
		_ = floyd.IsPalindrome(head)
		got, err := core.ToSlice(head)
		if err != nil {
			t.Fatalf("list left cyclic after IsPalindrome(%v): %v", vals, err)
		}
		if !reflect.DeepEqual(got, vals) {
			t.Errorf("list mutated by IsPalindrome: got %v; want %v", got, vals)
		}
	}
}
