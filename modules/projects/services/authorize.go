package services

import (
	"context"

	"github.com/planora/planora/modules/projects/domain/project"
	"github.com/planora/planora/pkg/composables"
	"github.com/planora/planora/pkg/types"
)

// authorizeProjectWrite enforces who may mutate a project's work breakdown:
// its author, an administrator, or a manager within the project's company
// scope.
func authorizeProjectWrite(ctx context.Context, prj *project.Project) (types.Actor, error) {
	actor, err := composables.UseActor(ctx)
	if err != nil {
		return types.Actor{}, ErrForbidden
	}
	if actor.ID == prj.AuthorID || actor.IsAdmin() {
		return actor, nil
	}
	if actor.IsManager() && actor.CompanyCode != "" && actor.CompanyCode == prj.CompanyCode {
		return actor, nil
	}
	return types.Actor{}, ErrForbidden.WithTemplateData(map[string]string{
		"ProjectID": prj.ID.String(),
		"ActorID":   actor.ID.String(),
	})
}
