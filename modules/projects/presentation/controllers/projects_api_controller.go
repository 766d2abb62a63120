package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/planora/planora/modules/projects/domain/project"
	"github.com/planora/planora/modules/projects/domain/workitem"
	"github.com/planora/planora/modules/projects/presentation/mappers"
	"github.com/planora/planora/modules/projects/services"
	"github.com/planora/planora/pkg/application"
	"github.com/planora/planora/pkg/constants"
	"github.com/planora/planora/pkg/httpapi"
	"github.com/planora/planora/pkg/serrors"
)

type ProjectsAPIController struct {
	app       application.Application
	projects  *services.ProjectService
	workItems *services.WorkItemService
	structure *services.StructureService
	importer  *services.WBSImportService
	apiPrefix string
}

func NewProjectsAPIController(app application.Application) application.Controller {
	return &ProjectsAPIController{
		app:       app,
		projects:  app.Service(services.ProjectService{}).(*services.ProjectService),
		workItems: app.Service(services.WorkItemService{}).(*services.WorkItemService),
		structure: app.Service(services.StructureService{}).(*services.StructureService),
		importer:  app.Service(services.WBSImportService{}).(*services.WBSImportService),
		apiPrefix: "/api/v1",
	}
}

func (c *ProjectsAPIController) Key() string {
	return c.apiPrefix
}

func (c *ProjectsAPIController) Register(r *mux.Router) {
	api := r.PathPrefix(c.apiPrefix).Subrouter()

	api.HandleFunc("/projects", c.CreateProject).Methods(http.MethodPost)
	api.HandleFunc("/projects/{id}", c.GetProject).Methods(http.MethodGet)

	api.HandleFunc("/projects/{id}/wbs", c.GetForest).Methods(http.MethodGet)
	api.HandleFunc("/projects/{id}/wbs/import", c.ImportHierarchy).Methods(http.MethodPost)
	api.HandleFunc("/projects/{id}/wbs/generate", c.GenerateHierarchy).Methods(http.MethodPost)
	api.HandleFunc("/projects/{id}/wbs/structure", c.ApplyStructure).Methods(http.MethodPatch)

	api.HandleFunc("/projects/{id}/work-items", c.CreateWorkItem).Methods(http.MethodPost)
	api.HandleFunc("/projects/{id}/work-items/{itemId}", c.DeleteWorkItem).Methods(http.MethodDelete)
	api.HandleFunc("/work-items/{id}", c.GetWorkItem).Methods(http.MethodGet)
	api.HandleFunc("/work-items/{id}", c.UpdateWorkItem).Methods(http.MethodPatch)
}

func (c *ProjectsAPIController) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	prj, err := c.projects.Create(r.Context(), services.CreateProject{
		Name:        req.Name,
		CompanyCode: req.CompanyCode,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusCreated, mappers.ProjectToViewModel(prj))
}

func (c *ProjectsAPIController) GetProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	prj, err := c.projects.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, mappers.ProjectToViewModel(prj))
}

func (c *ProjectsAPIController) GetForest(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	forest, err := c.projects.Forest(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, mappers.ForestToViewModel(forest))
}

func (c *ProjectsAPIController) ImportHierarchy(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req importHierarchyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := c.importer.ImportHierarchy(r.Context(), id, req.toDomain())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusCreated, importHierarchyResponse{CreatedCount: created})
}

func (c *ProjectsAPIController) GenerateHierarchy(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req generateHierarchyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := c.importer.ImportGenerated(r.Context(), id, req.Prompt)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusCreated, importHierarchyResponse{CreatedCount: created})
}

func (c *ProjectsAPIController) ApplyStructure(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req applyStructureRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := c.structure.ApplyStructure(r.Context(), id, req.toDomain()); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (c *ProjectsAPIController) CreateWorkItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req createWorkItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	item, err := c.workItems.Create(r.Context(), id, req.toDomain())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusCreated, mappers.WorkItemToViewModel(item))
}

func (c *ProjectsAPIController) GetWorkItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	item, err := c.workItems.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, mappers.WorkItemToViewModel(item))
}

func (c *ProjectsAPIController) UpdateWorkItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req updateWorkItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	item, err := c.workItems.Update(r.Context(), id, req.toDomain())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	_ = httpapi.WriteJSON(w, http.StatusOK, mappers.WorkItemToViewModel(item))
}

func (c *ProjectsAPIController) DeleteWorkItem(w http.ResponseWriter, r *http.Request) {
	projectID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	itemID, ok := pathUUID(w, r, "itemId")
	if !ok {
		return
	}
	if err := c.workItems.Delete(r.Context(), projectID, itemID); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	if err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "INVALID_ID", "path id must be a uuid", nil)
		return uuid.Nil, false
	}
	return id, true
}

func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		_ = httpapi.WriteError(w, http.StatusBadRequest, "INVALID_BODY", "request body is not valid JSON", nil)
		return false
	}
	if err := constants.Validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		meta := map[string]string{}
		if errors.As(err, &verrs) {
			for field, fe := range serrors.ProcessValidatorErrors(verrs, func(string) string { return "" }) {
				meta[field] = fe.Message
			}
		}
		_ = httpapi.WriteError(w, http.StatusBadRequest, "INVALID_BODY", "request body failed validation", meta)
		return false
	}
	return true
}

func writeServiceError(w http.ResponseWriter, err error) {
	var base *serrors.BaseError
	if !errors.As(err, &base) {
		_ = httpapi.WriteError(w, http.StatusInternalServerError, "INTERNAL", err.Error(), nil)
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, project.ErrNotFound), errors.Is(err, workitem.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, services.ErrEmptyCandidates),
		errors.Is(err, services.ErrInvalidCandidate),
		errors.Is(err, services.ErrInvalidStructure),
		errors.Is(err, services.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrGeneratorDisabled):
		status = http.StatusServiceUnavailable
	case errors.Is(err, services.ErrGeneratorFailed):
		status = http.StatusBadGateway
	}
	_ = httpapi.WriteError(w, status, base.Code, base.Message, base.TemplateData)
}
