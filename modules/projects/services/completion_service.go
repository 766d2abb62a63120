package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/planora/planora/modules/projects/domain/project"
	"github.com/planora/planora/modules/projects/domain/workitem"
	"github.com/planora/planora/pkg/eventbus"
)

// CompletionService cascades leaf completion state up to the aggregate
// project status.
type CompletionService struct {
	projects  project.Repository
	items     workitem.Repository
	publisher eventbus.EventBus
}

func NewCompletionService(projects project.Repository, items workitem.Repository, publisher eventbus.EventBus) *CompletionService {
	return &CompletionService{
		projects:  projects,
		items:     items,
		publisher: publisher,
	}
}

// Recalculate promotes the project to COMPLETE when every one of its items
// is done. The transition is one-directional: a project already COMPLETE is
// never demoted here, even when items later become incomplete again.
func (s *CompletionService) Recalculate(ctx context.Context, projectID uuid.UUID) error {
	counts, err := s.items.CountByProject(ctx, projectID)
	if err != nil {
		return storageError(err)
	}
	if counts.Total == 0 || counts.Done != counts.Total {
		return nil
	}

	prj, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return storageError(err)
	}
	if prj.IsComplete() {
		return nil
	}

	if err := s.projects.UpdateType(ctx, projectID, project.TypeComplete); err != nil {
		return storageError(err)
	}
	s.publisher.Publish(&project.CompletedEvent{ProjectID: projectID})
	return nil
}
