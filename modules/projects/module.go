package projects

import (
	"github.com/planora/planora/modules/projects/infrastructure/ai"
	"github.com/planora/planora/modules/projects/infrastructure/persistence"
	"github.com/planora/planora/modules/projects/presentation/controllers"
	"github.com/planora/planora/modules/projects/services"
	"github.com/planora/planora/pkg/application"
	"github.com/planora/planora/pkg/configuration"
)

func NewModule() application.Module {
	return &Module{}
}

type Module struct{}

func (m *Module) Register(app application.Application) error {
	conf := configuration.Use()

	projectRepo := persistence.NewProjectRepository()
	workItemRepo := persistence.NewWorkItemRepository()

	var generator services.CandidateGenerator
	if conf.OpenAI.Enabled() {
		generator = ai.NewOpenAIGenerator(conf.OpenAI.Key, conf.OpenAI.Model)
	}

	completion := services.NewCompletionService(projectRepo, workItemRepo, app.EventPublisher())
	app.RegisterServices(
		services.NewProjectService(projectRepo, workItemRepo, app.EventPublisher()),
		services.NewWorkItemService(projectRepo, workItemRepo, completion, app.EventPublisher(), app.Logger()),
		services.NewStructureService(projectRepo, workItemRepo, app.EventPublisher()),
		services.NewWBSImportService(projectRepo, workItemRepo, generator, app.EventPublisher(), app.Logger()),
		completion,
	)

	app.RegisterControllers(
		controllers.NewProjectsAPIController(app),
	)

	return nil
}

func (m *Module) Name() string {
	return "projects"
}
