package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/planora/planora/modules/projects/domain/workitem"
)

func candidates(refs ...int) []workitem.CandidateItem {
	out := make([]workitem.CandidateItem, len(refs))
	for i, ref := range refs {
		out[i] = workitem.CandidateItem{Content: "item", ParentRef: ref, Order: i}
	}
	return out
}

func TestInsertionOrder_AlreadyTopologicalKeepsInputOrder(t *testing.T) {
	// 1 is a root, 2 and 3 are its children.
	order := insertionOrder(candidates(0, 1, 1))
	require.Equal(t, []int{0, 1, 2}, order)
}

func TestInsertionOrder_ForwardReferencePlacesParentFirst(t *testing.T) {
	// First candidate points at the third, which is a root.
	order := insertionOrder(candidates(3, 3, 0))
	require.Equal(t, []int{2, 0, 1}, order)
}

func TestInsertionOrder_OutOfRangeReferenceCountsAsRoot(t *testing.T) {
	order := insertionOrder(candidates(9, 1))
	require.Equal(t, []int{0, 1}, order)
}

func TestInsertionOrder_SelfReferenceCountsAsRoot(t *testing.T) {
	order := insertionOrder(candidates(1, 1))
	require.Equal(t, []int{0, 1}, order)
}

func TestInsertionOrder_DeepChainReversed(t *testing.T) {
	// 1←2←3←4 expressed backwards in the input.
	order := insertionOrder(candidates(2, 3, 4, 0))
	require.Equal(t, []int{3, 2, 1, 0}, order)
}

func TestInsertionOrder_CycleMembersAppendedInInputOrder(t *testing.T) {
	// 1 and 2 reference each other; 3 is a root.
	order := insertionOrder(candidates(2, 1, 0))
	require.Equal(t, []int{2, 0, 1}, order)
}

func TestInsertionOrder_EmptyInput(t *testing.T) {
	require.Empty(t, insertionOrder(nil))
}
