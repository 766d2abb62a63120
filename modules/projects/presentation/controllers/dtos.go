package controllers

import (
	"time"

	"github.com/google/uuid"

	"github.com/planora/planora/modules/projects/domain/workitem"
	"github.com/planora/planora/modules/projects/services"
)

type createProjectRequest struct {
	Name        string `json:"name" validate:"required"`
	CompanyCode string `json:"company_code"`
}

type candidateItemRequest struct {
	Content   string     `json:"content" validate:"required"`
	Deadline  *time.Time `json:"deadline"`
	ParentRef int        `json:"parent_ref" validate:"min=0"`
	Order     int        `json:"order" validate:"min=0"`
}

type importHierarchyRequest struct {
	Items []candidateItemRequest `json:"items" validate:"required,dive"`
}

func (r *importHierarchyRequest) toDomain() []workitem.CandidateItem {
	out := make([]workitem.CandidateItem, 0, len(r.Items))
	for _, item := range r.Items {
		out = append(out, workitem.CandidateItem{
			Content:   item.Content,
			Deadline:  item.Deadline,
			ParentRef: item.ParentRef,
			Order:     item.Order,
		})
	}
	return out
}

type generateHierarchyRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

type importHierarchyResponse struct {
	CreatedCount int `json:"created_count"`
}

type structureDirectiveRequest struct {
	ID       uuid.UUID  `json:"id" validate:"required"`
	ParentID *uuid.UUID `json:"parent_id"`
	Order    int        `json:"order" validate:"min=0"`
}

type applyStructureRequest struct {
	Directives []structureDirectiveRequest `json:"directives" validate:"required,dive"`
}

func (r *applyStructureRequest) toDomain() []workitem.StructureDirective {
	out := make([]workitem.StructureDirective, 0, len(r.Directives))
	for _, d := range r.Directives {
		out = append(out, workitem.StructureDirective{
			ID:       d.ID,
			ParentID: d.ParentID,
			Order:    d.Order,
		})
	}
	return out
}

type createWorkItemRequest struct {
	Content  string     `json:"content" validate:"required"`
	Deadline *time.Time `json:"deadline"`
	ParentID *uuid.UUID `json:"parent_id"`
	Order    int        `json:"order" validate:"min=0"`
}

func (r *createWorkItemRequest) toDomain() services.CreateWorkItem {
	return services.CreateWorkItem{
		Content:  r.Content,
		Deadline: r.Deadline,
		ParentID: r.ParentID,
		Order:    r.Order,
	}
}

type updateWorkItemRequest struct {
	Content  *string    `json:"content"`
	Deadline *time.Time `json:"deadline"`
	Status   *string    `json:"status"`
	Progress *int       `json:"progress"`
}

func (r *updateWorkItemRequest) toDomain() services.UpdateWorkItem {
	data := services.UpdateWorkItem{
		Content:  r.Content,
		Deadline: r.Deadline,
		Progress: r.Progress,
	}
	if r.Status != nil {
		status := workitem.Status(*r.Status)
		data.Status = &status
	}
	return data
}
