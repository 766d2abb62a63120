package workitem

import (
	"context"

	"github.com/google/uuid"
)

// StructureDirective reassigns one item's parent and sibling rank.
type StructureDirective struct {
	ID       uuid.UUID
	ParentID *uuid.UUID
	Order    int
}

// ProjectCounts aggregates a project's item totals for the completion cascade.
type ProjectCounts struct {
	Total int64
	Done  int64
}

type Repository interface {
	// Create persists the item and returns the store-assigned identifier.
	Create(ctx context.Context, item *WorkItem) (uuid.UUID, error)
	// GetByID returns ErrNotFound when no such item exists.
	GetByID(ctx context.Context, id uuid.UUID) (*WorkItem, error)
	// GetByProjectID returns the project's flat item set ordered by rank,
	// then by registration time.
	GetByProjectID(ctx context.Context, projectID uuid.UUID) ([]WorkItem, error)
	// Update persists content, deadline, status, progress and the derived
	// completion timestamp.
	Update(ctx context.Context, item *WorkItem) error
	// UpdateStructure applies one directive scoped by id AND project id,
	// returning the number of rows touched (0 for foreign or absent ids).
	UpdateStructure(ctx context.Context, projectID uuid.UUID, d StructureDirective) (int64, error)
	// Delete removes the item scoped by id AND project id.
	Delete(ctx context.Context, projectID, id uuid.UUID) error
	// CountByProject returns total and done item counts for a project.
	CountByProject(ctx context.Context, projectID uuid.UUID) (ProjectCounts, error)
}
