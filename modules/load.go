package modules

import (
	"github.com/planora/planora/modules/projects"
	"github.com/planora/planora/pkg/application"
)

var BuiltInModules = []application.Module{
	projects.NewModule(),
}

func Load(app application.Application, externalModules ...application.Module) error {
	return application.Load(app, externalModules...)
}
