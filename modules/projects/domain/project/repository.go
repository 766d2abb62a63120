package project

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	// Create persists the project and returns the store-assigned identifier.
	Create(ctx context.Context, p *Project) (uuid.UUID, error)
	// GetByID returns ErrNotFound when no such project exists.
	GetByID(ctx context.Context, id uuid.UUID) (*Project, error)
	// UpdateType transitions the project lifecycle state.
	UpdateType(ctx context.Context, id uuid.UUID, t Type) error
}
