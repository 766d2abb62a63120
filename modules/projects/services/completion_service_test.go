package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/planora/planora/modules/projects/domain/project"
	"github.com/planora/planora/modules/projects/domain/workitem"
)

type completionFixture struct {
	projects  *memProjectRepo
	items     *memWorkItemRepo
	bus       *recordingBus
	svc       *CompletionService
	projectID uuid.UUID
}

func newCompletionFixture(t *testing.T) *completionFixture {
	t.Helper()
	projects := newMemProjectRepo()
	items := newMemWorkItemRepo()
	bus := &recordingBus{}
	projectID := projects.seed(project.Project{Name: "launch", AuthorID: uuid.New()})
	return &completionFixture{
		projects:  projects,
		items:     items,
		bus:       bus,
		svc:       NewCompletionService(projects, items, bus),
		projectID: projectID,
	}
}

func (f *completionFixture) projectType(t *testing.T) project.Type {
	t.Helper()
	prj, err := f.projects.GetByID(context.Background(), f.projectID)
	require.NoError(t, err)
	return prj.Type
}

func TestRecalculate_EmptyProjectStaysInProgress(t *testing.T) {
	f := newCompletionFixture(t)

	require.NoError(t, f.svc.Recalculate(context.Background(), f.projectID))
	require.Equal(t, project.TypeInProgress, f.projectType(t))
	require.Empty(t, f.bus.events)
}

func TestRecalculate_PartialCompletionStaysInProgress(t *testing.T) {
	f := newCompletionFixture(t)
	f.items.seed(workitem.WorkItem{ProjectID: f.projectID, Content: "a", Status: workitem.StatusDone})
	f.items.seed(workitem.WorkItem{ProjectID: f.projectID, Content: "b", Status: workitem.StatusTodo})

	require.NoError(t, f.svc.Recalculate(context.Background(), f.projectID))
	require.Equal(t, project.TypeInProgress, f.projectType(t))
}

func TestRecalculate_AllDonePromotesToComplete(t *testing.T) {
	f := newCompletionFixture(t)
	f.items.seed(workitem.WorkItem{ProjectID: f.projectID, Content: "a", Status: workitem.StatusDone})
	f.items.seed(workitem.WorkItem{ProjectID: f.projectID, Content: "b", Status: workitem.StatusTodo, Progress: 100})

	require.NoError(t, f.svc.Recalculate(context.Background(), f.projectID))
	require.Equal(t, project.TypeComplete, f.projectType(t))

	require.Len(t, f.bus.events, 1)
	completed, ok := f.bus.events[0].(*project.CompletedEvent)
	require.True(t, ok)
	require.Equal(t, f.projectID, completed.ProjectID)
}

func TestRecalculate_AlreadyCompleteIsIdempotent(t *testing.T) {
	f := newCompletionFixture(t)
	f.items.seed(workitem.WorkItem{ProjectID: f.projectID, Content: "a", Status: workitem.StatusDone})

	require.NoError(t, f.svc.Recalculate(context.Background(), f.projectID))
	require.NoError(t, f.svc.Recalculate(context.Background(), f.projectID))

	// The promotion and its event happen exactly once.
	require.Equal(t, project.TypeComplete, f.projectType(t))
	require.Len(t, f.bus.events, 1)
}

func TestRecalculate_CompletionIsSticky(t *testing.T) {
	f := newCompletionFixture(t)
	id := f.items.seed(workitem.WorkItem{ProjectID: f.projectID, Content: "a", Status: workitem.StatusDone})

	require.NoError(t, f.svc.Recalculate(context.Background(), f.projectID))
	require.Equal(t, project.TypeComplete, f.projectType(t))

	// The item regresses, but the project never leaves its terminal state.
	item := f.items.items[id]
	item.Status = workitem.StatusInProgress
	item.Progress = 50
	f.items.items[id] = item

	require.NoError(t, f.svc.Recalculate(context.Background(), f.projectID))
	require.Equal(t, project.TypeComplete, f.projectType(t))
}

func TestRecalculate_CountFailureSurfaces(t *testing.T) {
	f := newCompletionFixture(t)
	f.items.countErr = context.DeadlineExceeded

	err := f.svc.Recalculate(context.Background(), f.projectID)
	require.ErrorIs(t, err, ErrStorage)
}
