package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/planora/planora/modules/projects/domain/project"
	"github.com/planora/planora/modules/projects/domain/workitem"
	"github.com/planora/planora/pkg/composables"
	"github.com/planora/planora/pkg/eventbus"
)

type CreateProject struct {
	Name        string
	CompanyCode string
}

// ProjectService covers the thin project surface around the hierarchy
// engine: create, read and forest projection.
type ProjectService struct {
	projects  project.Repository
	items     workitem.Repository
	publisher eventbus.EventBus
}

func NewProjectService(projects project.Repository, items workitem.Repository, publisher eventbus.EventBus) *ProjectService {
	return &ProjectService{
		projects:  projects,
		items:     items,
		publisher: publisher,
	}
}

func (s *ProjectService) Create(ctx context.Context, data CreateProject) (*project.Project, error) {
	actor, err := composables.UseActor(ctx)
	if err != nil {
		return nil, ErrForbidden
	}
	if strings.TrimSpace(data.Name) == "" {
		return nil, validationError("name is required")
	}

	prj := &project.Project{
		Name:        data.Name,
		Type:        project.TypeInProgress,
		AuthorID:    actor.ID,
		CompanyCode: data.CompanyCode,
	}
	err = runInTx(ctx, func(txCtx context.Context) error {
		id, err := s.projects.Create(txCtx, prj)
		if err != nil {
			return storageError(err)
		}
		prj.ID = id
		return nil
	})
	if err != nil {
		return nil, storageError(err)
	}

	s.publisher.Publish(project.NewCreatedEvent(prj, actor))
	return prj, nil
}

func (s *ProjectService) GetByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	prj, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, storageError(err)
	}
	return prj, nil
}

// Forest reads the project's flat item set and projects it into its ordered
// forest. Every call reflects the store's committed state; nothing is cached
// across calls.
func (s *ProjectService) Forest(ctx context.Context, projectID uuid.UUID) ([]*WorkItemNode, error) {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, storageError(err)
	}
	items, err := s.items.GetByProjectID(ctx, projectID)
	if err != nil {
		return nil, storageError(err)
	}
	return BuildForest(items), nil
}
