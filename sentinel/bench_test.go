package sentinel_test

import (
	"testing"

	"github.com/katalvlaran/algopat/core"
	"github.com/katalvlaran/algopat/sentinel"
)

// buildSortedLists produces k sorted lists of n nodes each, values striped so
// the merge interleaves heavily.
func buildSortedLists(k, n int) []*core.ListNode {
	lists := make([]*core.ListNode, k)
	for i := 0; i < k; i++ {
		vals := make([]int, n)
		for j := 0; j < n; j++ {
			vals[j] = j*k + i
		}
		lists[i] = core.FromSlice(vals)
	}

	return lists
}

// BenchmarkMergeK measures the heap-based k-way merge on 16 lists of 512
// nodes. Lists must be rebuilt per iteration because the merge consumes them.
func BenchmarkMergeK(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		lists := buildSortedLists(16, 512)
		b.StartTimer()
		_ = sentinel.MergeK(lists)
	}
}

// BenchmarkMergeTwo measures the two-way merge on two 4096-node lists.
func BenchmarkMergeTwo(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		lists := buildSortedLists(2, 4096)
		b.StartTimer()
		_ = sentinel.MergeTwo(lists[0], lists[1])
	}
}
