package services

import (
	"sort"

	"github.com/google/uuid"

	"github.com/planora/planora/modules/projects/domain/workitem"
)

// WorkItemNode wraps a WorkItem with its ordered children.
type WorkItemNode struct {
	workitem.WorkItem
	Children []*WorkItemNode
}

// BuildForest projects a flat item set into its ordered forest. Items whose
// parent id is absent from the input set become roots rather than being
// dropped. Sibling lists and the root list are sorted ascending by rank with
// ties keeping the original input order. The function is pure: same input,
// same forest.
func BuildForest(items []workitem.WorkItem) []*WorkItemNode {
	byID := make(map[uuid.UUID]*WorkItemNode, len(items))
	for i := range items {
		byID[items[i].ID] = &WorkItemNode{WorkItem: items[i]}
	}

	roots := make([]*WorkItemNode, 0, len(items))
	for i := range items {
		node := byID[items[i].ID]
		if items[i].ParentID != nil {
			if parent, ok := byID[*items[i].ParentID]; ok && parent != node {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		roots = append(roots, node)
	}

	var sortSiblings func(nodes []*WorkItemNode)
	sortSiblings = func(nodes []*WorkItemNode) {
		sort.SliceStable(nodes, func(i, j int) bool {
			return nodes[i].Order < nodes[j].Order
		})
		for _, n := range nodes {
			sortSiblings(n.Children)
		}
	}
	sortSiblings(roots)

	return roots
}

// FlattenForest is the inverse projection: a pre-order walk back to the flat
// item list.
func FlattenForest(forest []*WorkItemNode) []workitem.WorkItem {
	out := make([]workitem.WorkItem, 0, len(forest))
	var walk func(nodes []*WorkItemNode)
	walk = func(nodes []*WorkItemNode) {
		for _, n := range nodes {
			out = append(out, n.WorkItem)
			walk(n.Children)
		}
	}
	walk(forest)
	return out
}
