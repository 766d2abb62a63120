package project

import (
	"time"

	"github.com/google/uuid"

	"github.com/planora/planora/pkg/serrors"
)

// Type is the project lifecycle state. Complete is terminal: the completion
// cascade promotes a project into it and nothing demotes it back.
type Type string

const (
	TypeInProgress Type = "IN_PROGRESS"
	TypeComplete   Type = "COMPLETE"
)

var ErrNotFound = serrors.NewError("PROJECT_NOT_FOUND", "project not found", "Projects.Errors.NotFound")

type Project struct {
	ID           uuid.UUID
	Name         string
	Type         Type
	AuthorID     uuid.UUID
	CompanyCode  string
	RegisteredAt time.Time
}

func (p *Project) IsComplete() bool {
	return p.Type == TypeComplete
}
