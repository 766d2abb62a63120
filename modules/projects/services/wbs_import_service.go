package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/planora/planora/modules/projects/domain/project"
	"github.com/planora/planora/modules/projects/domain/workitem"
	"github.com/planora/planora/pkg/eventbus"
)

// CandidateGenerator produces an ordered flat candidate list from a free-form
// prompt. The engine treats it as opaque: only structural well-formedness of
// the result is checked here.
type CandidateGenerator interface {
	Generate(ctx context.Context, projectName, prompt string) ([]workitem.CandidateItem, error)
}

// WBSImportService turns a flat candidate list into a persisted, validated
// tree of work items inside one transaction.
type WBSImportService struct {
	projects  project.Repository
	items     workitem.Repository
	generator CandidateGenerator
	publisher eventbus.EventBus
	log       *logrus.Logger
}

func NewWBSImportService(
	projects project.Repository,
	items workitem.Repository,
	generator CandidateGenerator,
	publisher eventbus.EventBus,
	log *logrus.Logger,
) *WBSImportService {
	return &WBSImportService{
		projects:  projects,
		items:     items,
		generator: generator,
		publisher: publisher,
		log:       log,
	}
}

// ImportHierarchy persists candidates as work items of the given project and
// returns the created count. Parent references are 1-based positions into
// the candidates slice; references that cannot be resolved demote the item
// to a root with a logged warning instead of failing the import. All inserts
// happen in a single transaction: any failure leaves the project untouched.
func (s *WBSImportService) ImportHierarchy(ctx context.Context, projectID uuid.UUID, candidates []workitem.CandidateItem) (int, error) {
	prj, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return 0, storageError(err)
	}
	actor, err := authorizeProjectWrite(ctx, prj)
	if err != nil {
		return 0, err
	}
	if err := validateCandidates(candidates); err != nil {
		return 0, err
	}

	order := insertionOrder(candidates)
	ids := newTransientIDMap()

	created := 0
	err = runInTx(ctx, func(txCtx context.Context) error {
		for _, idx := range order {
			cand := candidates[idx]

			parentID, ok := ids.resolve(TransientID(cand.ParentRef))
			if !ok {
				s.log.WithFields(logrus.Fields{
					"project_id": projectID,
					"position":   idx + 1,
					"parent_ref": cand.ParentRef,
				}).Warn("wbs import: unresolved parent reference, demoting item to root")
				parentID = nil
			}

			item := &workitem.WorkItem{
				ProjectID: projectID,
				Content:   cand.Content,
				Deadline:  cand.Deadline,
				Status:    workitem.StatusTodo,
				Progress:  0,
				ParentID:  parentID,
				Order:     cand.Order,
				AuthorID:  actor.ID,
			}
			id, err := s.items.Create(txCtx, item)
			if err != nil {
				return storageError(err)
			}
			ids.bind(TransientID(idx+1), id)
			created++
		}
		return nil
	})
	if err != nil {
		return 0, storageError(err)
	}

	s.publisher.Publish(&workitem.ImportedEvent{
		ProjectID: projectID,
		Count:     created,
		Actor:     actor,
	})
	return created, nil
}

// ImportGenerated asks the candidate generator for a breakdown and imports
// it in the same request.
func (s *WBSImportService) ImportGenerated(ctx context.Context, projectID uuid.UUID, prompt string) (int, error) {
	if s.generator == nil {
		return 0, ErrGeneratorDisabled
	}
	prj, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return 0, storageError(err)
	}
	if _, err := authorizeProjectWrite(ctx, prj); err != nil {
		return 0, err
	}

	candidates, err := s.generator.Generate(ctx, prj.Name, prompt)
	if err != nil {
		return 0, ErrGeneratorFailed.Wrap(err)
	}
	return s.ImportHierarchy(ctx, projectID, candidates)
}

func validateCandidates(candidates []workitem.CandidateItem) error {
	if len(candidates) == 0 {
		return ErrEmptyCandidates
	}
	for i, cand := range candidates {
		if strings.TrimSpace(cand.Content) == "" {
			return invalidCandidateError(i+1, "content is required")
		}
		if cand.Order < 0 {
			return invalidCandidateError(i+1, "order must be non-negative")
		}
		if cand.ParentRef < 0 {
			return invalidCandidateError(i+1, "parent_ref must be a 1-based position or 0")
		}
	}
	return nil
}
