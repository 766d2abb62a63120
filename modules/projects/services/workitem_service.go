package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/planora/planora/modules/projects/domain/project"
	"github.com/planora/planora/modules/projects/domain/workitem"
	"github.com/planora/planora/pkg/eventbus"
)

// CreateWorkItem is the single-item create path next to the bulk importer.
type CreateWorkItem struct {
	Content  string
	Deadline *time.Time
	ParentID *uuid.UUID
	Order    int
}

// UpdateWorkItem carries a partial update; nil fields are left unchanged.
type UpdateWorkItem struct {
	Content  *string
	Deadline *time.Time
	Status   *workitem.Status
	Progress *int
}

// WorkItemService provides the item-level operations around the hierarchy
// engine. Status/progress updates trigger the completion cascade.
type WorkItemService struct {
	projects   project.Repository
	items      workitem.Repository
	completion *CompletionService
	publisher  eventbus.EventBus
	log        *logrus.Logger

	now func() time.Time
}

func NewWorkItemService(
	projects project.Repository,
	items workitem.Repository,
	completion *CompletionService,
	publisher eventbus.EventBus,
	log *logrus.Logger,
) *WorkItemService {
	return &WorkItemService{
		projects:   projects,
		items:      items,
		completion: completion,
		publisher:  publisher,
		log:        log,
		now:        time.Now,
	}
}

func (s *WorkItemService) GetByID(ctx context.Context, id uuid.UUID) (*workitem.WorkItem, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, storageError(err)
	}
	return item, nil
}

func (s *WorkItemService) Create(ctx context.Context, projectID uuid.UUID, data CreateWorkItem) (*workitem.WorkItem, error) {
	prj, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, storageError(err)
	}
	actor, err := authorizeProjectWrite(ctx, prj)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(data.Content) == "" {
		return nil, validationError("content is required")
	}
	if data.Order < 0 {
		return nil, validationError("order must be non-negative")
	}
	if data.ParentID != nil {
		parent, err := s.items.GetByID(ctx, *data.ParentID)
		if err != nil {
			return nil, storageError(err)
		}
		if parent.ProjectID != projectID {
			return nil, invalidStructureError("parent belongs to another project")
		}
	}

	item := &workitem.WorkItem{
		ProjectID: projectID,
		Content:   data.Content,
		Deadline:  data.Deadline,
		Status:    workitem.StatusTodo,
		Progress:  0,
		ParentID:  data.ParentID,
		Order:     data.Order,
		AuthorID:  actor.ID,
	}
	err = runInTx(ctx, func(txCtx context.Context) error {
		id, err := s.items.Create(txCtx, item)
		if err != nil {
			return storageError(err)
		}
		item.ID = id
		return nil
	})
	if err != nil {
		return nil, storageError(err)
	}

	s.publisher.Publish(workitem.NewCreatedEvent(item, actor))
	return item, nil
}

// Update applies a partial update to the item and re-derives its completion
// timestamp. When status or progress changed, the completion cascade runs
// afterwards as a best-effort secondary effect: a cascade failure is logged
// and reported through the returned item's project, never by rolling back
// the already-committed update.
func (s *WorkItemService) Update(ctx context.Context, id uuid.UUID, data UpdateWorkItem) (*workitem.WorkItem, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, storageError(err)
	}
	prj, err := s.projects.GetByID(ctx, item.ProjectID)
	if err != nil {
		return nil, storageError(err)
	}
	if _, err := authorizeProjectWrite(ctx, prj); err != nil {
		return nil, err
	}

	if data.Status != nil && !data.Status.Valid() {
		return nil, validationError("unknown status")
	}
	if data.Progress != nil && (*data.Progress < 0 || *data.Progress > 100) {
		return nil, validationError("progress must be within 0..100")
	}

	if data.Content != nil {
		if strings.TrimSpace(*data.Content) == "" {
			return nil, validationError("content is required")
		}
		item.Content = *data.Content
	}
	if data.Deadline != nil {
		item.Deadline = data.Deadline
	}
	completionTouched := data.Status != nil || data.Progress != nil
	if data.Status != nil {
		item.Status = *data.Status
	}
	if data.Progress != nil {
		item.Progress = *data.Progress
	}
	if completionTouched {
		item.RefreshCompletedAt(s.now())
	}

	err = runInTx(ctx, func(txCtx context.Context) error {
		return storageError(s.items.Update(txCtx, item))
	})
	if err != nil {
		return nil, storageError(err)
	}

	s.publisher.Publish(workitem.NewUpdatedEvent(item))

	if completionTouched {
		if err := s.completion.Recalculate(ctx, item.ProjectID); err != nil {
			s.log.WithError(err).WithField("project_id", item.ProjectID).
				Error("completion cascade failed after work item update")
		}
	}
	return item, nil
}

func (s *WorkItemService) Delete(ctx context.Context, projectID, id uuid.UUID) error {
	prj, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return storageError(err)
	}
	if _, err := authorizeProjectWrite(ctx, prj); err != nil {
		return err
	}

	err = runInTx(ctx, func(txCtx context.Context) error {
		return storageError(s.items.Delete(txCtx, projectID, id))
	})
	if err != nil {
		return storageError(err)
	}

	s.publisher.Publish(&workitem.DeletedEvent{ProjectID: projectID, ID: id})
	return nil
}
