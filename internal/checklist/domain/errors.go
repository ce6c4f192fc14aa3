package domain

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest           = errors.New("bad request")
	ErrJurisdictionNotFound = errors.New("jurisdiction not found")
	ErrBlueprintNotFound    = errors.New("permit blueprint not found")
	ErrBlueprintInvalid     = errors.New("permit blueprint invalid")
	ErrStoreWrite           = errors.New("checklist store write failed")

	ErrMissingFields    = fmt.Errorf("%w: missing projectId or projectAddress", ErrBadRequest)
	ErrInvalidProjectID = fmt.Errorf("%w: invalid projectId", ErrBadRequest)
)

// ValidationError reports a document that does not conform to its schema.
// Field is the offending field path, e.g. "checklistItems[2].title".
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Reason)
}

// Is makes every ValidationError match ErrBlueprintInvalid.
func (e *ValidationError) Is(target error) bool {
	return target == ErrBlueprintInvalid
}
