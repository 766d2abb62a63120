package workitem

import (
	"github.com/google/uuid"

	"github.com/planora/planora/pkg/types"
)

type CreatedEvent struct {
	Result WorkItem
	Actor  types.Actor
}

func NewCreatedEvent(result *WorkItem, actor types.Actor) *CreatedEvent {
	return &CreatedEvent{Result: *result, Actor: actor}
}

type UpdatedEvent struct {
	Result WorkItem
}

func NewUpdatedEvent(result *WorkItem) *UpdatedEvent {
	return &UpdatedEvent{Result: *result}
}

type DeletedEvent struct {
	ProjectID uuid.UUID
	ID        uuid.UUID
}

// ImportedEvent is published after a bulk hierarchy import commits.
type ImportedEvent struct {
	ProjectID uuid.UUID
	Count     int
	Actor     types.Actor
}

// StructureAppliedEvent is published after a reparent/reorder batch commits.
type StructureAppliedEvent struct {
	ProjectID uuid.UUID
	Count     int
}
