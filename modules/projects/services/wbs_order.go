package services

import "github.com/planora/planora/modules/projects/domain/workitem"

// insertionOrder computes a topological insertion order over candidate
// parent references: every candidate with a valid parent reference is placed
// after that parent, and candidates that become insertable at the same time
// keep their original relative order. Candidates left over after the sort
// (cycles) are appended in original order; their parent references fail to
// resolve at insert time and the importer demotes them to roots.
//
// A ParentRef outside [1, len(candidates)] or pointing at the candidate
// itself counts as "no parent" for ordering purposes.
func insertionOrder(candidates []workitem.CandidateItem) []int {
	n := len(candidates)
	ordered := make([]int, 0, n)
	placed := make([]bool, n)

	validParent := func(i int) (int, bool) {
		ref := candidates[i].ParentRef
		if ref < 1 || ref > n || ref == i+1 {
			return 0, false
		}
		return ref - 1, true
	}

	remaining := n
	for remaining > 0 {
		progressed := false
		for i := 0; i < n; i++ {
			if placed[i] {
				continue
			}
			if parent, ok := validParent(i); ok && !placed[parent] {
				continue
			}
			ordered = append(ordered, i)
			placed[i] = true
			remaining--
			progressed = true
		}
		if !progressed {
			break
		}
	}

	// Cycle members: append in original order, to be demoted on insert.
	for i := 0; i < n; i++ {
		if !placed[i] {
			ordered = append(ordered, i)
		}
	}
	return ordered
}
