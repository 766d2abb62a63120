package workitem

import (
	"time"

	"github.com/google/uuid"

	"github.com/planora/planora/pkg/serrors"
)

type Status string

const (
	StatusTodo       Status = "TODO"
	StatusInProgress Status = "IN_PROGRESS"
	StatusDone       Status = "DONE"
)

func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

var ErrNotFound = serrors.NewError("WORK_ITEM_NOT_FOUND", "work item not found", "WorkItems.Errors.NotFound")

// WorkItem is one persisted node of a project's work breakdown structure.
// ParentID, when set, references another item of the same project; items
// without a parent are the roots of the project's forest.
type WorkItem struct {
	ID           uuid.UUID
	ProjectID    uuid.UUID
	Content      string
	Deadline     *time.Time
	Status       Status
	Progress     int
	ParentID     *uuid.UUID
	Order        int
	AuthorID     uuid.UUID
	RegisteredAt time.Time

	// CompletedAt is derived: non-nil exactly when Completed() holds.
	// It is recomputed on every status/progress update, never set directly.
	CompletedAt *time.Time
}

func (w *WorkItem) Completed() bool {
	return w.Status == StatusDone || w.Progress == 100
}

// RefreshCompletedAt re-derives the completion timestamp after a
// status/progress change.
func (w *WorkItem) RefreshCompletedAt(now time.Time) {
	if w.Completed() {
		w.CompletedAt = &now
	} else {
		w.CompletedAt = nil
	}
}
