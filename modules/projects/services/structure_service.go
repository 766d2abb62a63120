package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/planora/planora/modules/projects/domain/project"
	"github.com/planora/planora/modules/projects/domain/workitem"
	"github.com/planora/planora/pkg/eventbus"
)

// StructureService applies reparent/reorder batches to a project's existing
// work items.
type StructureService struct {
	projects  project.Repository
	items     workitem.Repository
	publisher eventbus.EventBus
}

func NewStructureService(projects project.Repository, items workitem.Repository, publisher eventbus.EventBus) *StructureService {
	return &StructureService{
		projects:  projects,
		items:     items,
		publisher: publisher,
	}
}

// ApplyStructure applies all directives in one transaction: either every
// update commits or none do. Directives naming items outside the project are
// silent no-ops. The resulting graph is checked before commit: a parent id
// that does not belong to the project, or a directive batch that would close
// a cycle, rejects the whole batch.
func (s *StructureService) ApplyStructure(ctx context.Context, projectID uuid.UUID, directives []workitem.StructureDirective) error {
	prj, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return storageError(err)
	}
	if _, err := authorizeProjectWrite(ctx, prj); err != nil {
		return err
	}
	if len(directives) == 0 {
		return nil
	}

	applied := 0
	err = runInTx(ctx, func(txCtx context.Context) error {
		existing, err := s.items.GetByProjectID(txCtx, projectID)
		if err != nil {
			return storageError(err)
		}
		if err := checkStructure(existing, directives); err != nil {
			return err
		}

		for _, d := range directives {
			n, err := s.items.UpdateStructure(txCtx, projectID, d)
			if err != nil {
				return storageError(err)
			}
			applied += int(n)
		}
		return nil
	})
	if err != nil {
		return storageError(err)
	}

	s.publisher.Publish(&workitem.StructureAppliedEvent{
		ProjectID: projectID,
		Count:     applied,
	})
	return nil
}

// checkStructure validates the post-mutation parent graph in memory: every
// referenced parent must be an item of the same project and the result must
// stay acyclic. Directives for unknown ids are ignored, matching the
// silent no-op update semantics.
func checkStructure(existing []workitem.WorkItem, directives []workitem.StructureDirective) error {
	parents := make(map[uuid.UUID]*uuid.UUID, len(existing))
	for i := range existing {
		parents[existing[i].ID] = existing[i].ParentID
	}

	for _, d := range directives {
		if _, ok := parents[d.ID]; !ok {
			continue
		}
		if d.ParentID != nil {
			if *d.ParentID == d.ID {
				return invalidStructureError(fmt.Sprintf("item %s cannot be its own parent", d.ID))
			}
			if _, ok := parents[*d.ParentID]; !ok {
				return invalidStructureError(fmt.Sprintf("parent %s does not belong to the project", *d.ParentID))
			}
		}
		parents[d.ID] = d.ParentID
	}

	for id := range parents {
		seen := map[uuid.UUID]bool{id: true}
		for p := parents[id]; p != nil; p = parents[*p] {
			if seen[*p] {
				return invalidStructureError(fmt.Sprintf("directives close a parent cycle through item %s", *p))
			}
			seen[*p] = true
		}
	}
	return nil
}
