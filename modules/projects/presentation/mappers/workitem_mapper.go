package mappers

import (
	"github.com/planora/planora/modules/projects/domain/project"
	"github.com/planora/planora/modules/projects/domain/workitem"
	"github.com/planora/planora/modules/projects/presentation/viewmodels"
	"github.com/planora/planora/modules/projects/services"
)

func ForestToViewModel(forest []*services.WorkItemNode) []viewmodels.WorkItemNode {
	out := make([]viewmodels.WorkItemNode, 0, len(forest))
	for _, node := range forest {
		out = append(out, nodeToViewModel(node))
	}
	return out
}

func nodeToViewModel(node *services.WorkItemNode) viewmodels.WorkItemNode {
	return viewmodels.WorkItemNode{
		ID:           node.ID.String(),
		Content:      node.Content,
		Deadline:     node.Deadline,
		Status:       string(node.Status),
		Progress:     node.Progress,
		Order:        node.Order,
		AuthorID:     node.AuthorID.String(),
		RegisteredAt: node.RegisteredAt,
		CompletedAt:  node.CompletedAt,
		Children:     ForestToViewModel(node.Children),
	}
}

func WorkItemToViewModel(item *workitem.WorkItem) viewmodels.WorkItemNode {
	return nodeToViewModel(&services.WorkItemNode{WorkItem: *item})
}

func ProjectToViewModel(p *project.Project) viewmodels.Project {
	return viewmodels.Project{
		ID:           p.ID.String(),
		Name:         p.Name,
		Type:         string(p.Type),
		AuthorID:     p.AuthorID.String(),
		CompanyCode:  p.CompanyCode,
		RegisteredAt: p.RegisteredAt,
	}
}
