package mappers

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/planora/planora/modules/projects/domain/project"
	"github.com/planora/planora/modules/projects/domain/workitem"
	"github.com/planora/planora/modules/projects/services"
)

func TestForestToViewModel_PreservesNesting(t *testing.T) {
	rootID, childID := uuid.New(), uuid.New()
	forest := services.BuildForest([]workitem.WorkItem{
		{ID: rootID, Content: "root", Status: workitem.StatusTodo, Order: 0},
		{ID: childID, Content: "child", Status: workitem.StatusDone, Progress: 100, ParentID: &rootID, Order: 0},
	})

	vms := ForestToViewModel(forest)
	require.Len(t, vms, 1)
	require.Equal(t, rootID.String(), vms[0].ID)
	require.Equal(t, "TODO", vms[0].Status)
	require.Len(t, vms[0].Children, 1)
	require.Equal(t, childID.String(), vms[0].Children[0].ID)
	require.Equal(t, "DONE", vms[0].Children[0].Status)
}

func TestForestToViewModel_EmptyForest(t *testing.T) {
	require.Empty(t, ForestToViewModel(nil))
}

func TestWorkItemToViewModel(t *testing.T) {
	item := &workitem.WorkItem{
		ID:       uuid.New(),
		Content:  "design",
		Status:   workitem.StatusInProgress,
		Progress: 40,
		Order:    2,
	}

	vm := WorkItemToViewModel(item)
	require.Equal(t, item.ID.String(), vm.ID)
	require.Equal(t, "IN_PROGRESS", vm.Status)
	require.Equal(t, 40, vm.Progress)
	require.Empty(t, vm.Children)
}

func TestProjectToViewModel(t *testing.T) {
	prj := &project.Project{
		ID:          uuid.New(),
		Name:        "launch",
		Type:        project.TypeInProgress,
		AuthorID:    uuid.New(),
		CompanyCode: "ACME",
	}

	vm := ProjectToViewModel(prj)
	require.Equal(t, prj.ID.String(), vm.ID)
	require.Equal(t, "IN_PROGRESS", vm.Type)
	require.Equal(t, "ACME", vm.CompanyCode)
}
