package usecase

import (
	"errors"
	"fmt"

	"rfq_console/internal/domain/entities"
)

var (
	ErrInvalidRFQID       = errors.New("invalid rfq id")
	ErrInvalidSKUID       = errors.New("invalid sku id")
	ErrInvalidSession     = errors.New("invalid session")
	ErrWorkspaceNotFound  = errors.New("workspace not found")
	ErrSKUNotFound        = errors.New("sku not found")
	ErrInvalidEditorKind  = errors.New("invalid editor kind")
	ErrInvalidScope       = errors.New("invalid product scope")
	ErrEditorNotOpen      = errors.New("editor not open")
	ErrEditorReadOnly     = errors.New("editor is read-only")
	ErrActionNotAllowed   = errors.New("action not allowed for this stage and role")
	ErrBusy               = errors.New("another request for this action is in progress")
	ErrStaleProductState  = errors.New("stale state, please refresh")
	ErrNotBOMDraft        = errors.New("draft is not a BOM entry")
	ErrOverheadRequired   = errors.New("factory overhead percentage is required")
	ErrOverheadInvalid    = errors.New("factory overhead percentage must be a number")
	ErrRawMaterialMissing = errors.New("raw material not found")
)

// DraftValidationError carries the field errors of a rejected draft.
type DraftValidationError struct {
	Errors entities.FieldErrors
}

func (e *DraftValidationError) Error() string {
	return fmt.Sprintf("draft has %d invalid field(s)", len(e.Errors))
}

// OverheadStep names a step of the overhead sequence.
type OverheadStep string

const (
	OverheadStepSave      OverheadStep = "save"
	OverheadStepCalculate OverheadStep = "calculate"
	OverheadStepRefresh   OverheadStep = "refresh"
)

// OverheadStepError reports which step of the overhead sequence failed.
type OverheadStepError struct {
	Step OverheadStep
	Err  error
}

func (e *OverheadStepError) Error() string {
	return fmt.Sprintf("factory overhead %s step failed: %v", e.Step, e.Err)
}

func (e *OverheadStepError) Unwrap() error { return e.Err }

// Partial reports whether the percentage had already been persisted.
func (e *OverheadStepError) Partial() bool {
	return e.Step != OverheadStepSave
}
