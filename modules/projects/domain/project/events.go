package project

import (
	"github.com/google/uuid"

	"github.com/planora/planora/pkg/types"
)

type CreatedEvent struct {
	Result Project
	Actor  types.Actor
}

func NewCreatedEvent(result *Project, actor types.Actor) *CreatedEvent {
	return &CreatedEvent{Result: *result, Actor: actor}
}

// CompletedEvent is published when the completion cascade promotes a project
// to its terminal state.
type CompletedEvent struct {
	ProjectID uuid.UUID
}
