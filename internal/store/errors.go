package store

import (
	"errors"
	"fmt"
)

// ErrNotFound marks a lookup whose target id does not exist. Handlers map it
// to a 404 or a user-facing flash message.
var ErrNotFound = errors.New("record not found")

// ErrMaterialInUse is returned when deleting a material that product line
// items still reference.
var ErrMaterialInUse = errors.New("material is referenced by a product")

// ValidationError reports user input the store refuses to persist, such as an
// empty or duplicate name or a negative price.
type ValidationError struct {
	Msg string
}

func (e ValidationError) Error() string {
	return e.Msg
}

func validationErrorf(format string, args ...any) error {
	return ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// QuantitySpecError reports a malformed quantity specification for a product
// line item, e.g. an area quantity missing its "x" separator.
type QuantitySpecError struct {
	Spec   string
	Reason string
}

func (e QuantitySpecError) Error() string {
	return fmt.Sprintf("invalid quantity %q: %s", e.Spec, e.Reason)
}
