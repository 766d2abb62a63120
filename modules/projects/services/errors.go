package services

import (
	"context"
	"fmt"

	"github.com/planora/planora/pkg/composables"
	"github.com/planora/planora/pkg/serrors"
)

var (
	ErrForbidden = serrors.NewError("WBS_FORBIDDEN", "actor may not modify this project", "Authorization.PermissionDenied")

	ErrEmptyCandidates  = serrors.NewError("WBS_EMPTY_CANDIDATES", "candidate list is empty", "Projects.Errors.EmptyCandidates")
	ErrInvalidCandidate = serrors.NewError("WBS_INVALID_CANDIDATE", "candidate is malformed", "Projects.Errors.InvalidCandidate")

	ErrInvalidStructure = serrors.NewError("WBS_INVALID_STRUCTURE", "structure batch is invalid", "Projects.Errors.InvalidStructure")

	ErrValidation = serrors.NewError("WBS_VALIDATION", "request is malformed", "Projects.Errors.Validation")

	ErrGeneratorDisabled = serrors.NewError("WBS_GENERATOR_DISABLED", "candidate generator is not configured", "Projects.Errors.GeneratorDisabled")
	ErrGeneratorFailed   = serrors.NewError("WBS_GENERATOR_FAILED", "candidate generation failed", "Projects.Errors.GeneratorFailed")

	ErrStorage = serrors.NewError("WBS_STORAGE", "storage failure", "")
)

// storageError wraps any persistence failure once, without double-wrapping
// errors that already carry a structured code.
func storageError(err error) error {
	if err == nil {
		return nil
	}
	if serrors.CodeOf(err) != "" {
		return err
	}
	return ErrStorage.Wrap(err)
}

func invalidCandidateError(position int, reason string) error {
	return ErrInvalidCandidate.WithTemplateData(map[string]string{
		"Position": fmt.Sprintf("%d", position),
		"Reason":   reason,
	})
}

func validationError(reason string) error {
	return ErrValidation.WithTemplateData(map[string]string{
		"Reason": reason,
	})
}

func invalidStructureError(reason string) error {
	return ErrInvalidStructure.WithTemplateData(map[string]string{
		"Reason": reason,
	})
}

// inTx is swapped out by unit tests that have no database pool behind the
// context.
var inTx = composables.InTx

func runInTx(ctx context.Context, fn func(context.Context) error) error {
	return inTx(ctx, fn)
}
