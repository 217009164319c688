package fooditem

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError reports required fields that are missing or invalid on
// create/update. The operation was not attempted.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "missing or invalid fields: " + strings.Join(e.Missing, ", ")
}

// NotFoundError reports an update/delete referencing an id that is not in
// the collection. No partial effect occurred.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("food item %q not found", e.ID)
}

// PreconditionError reports a call made in a state where the operation is
// not allowed, such as Create without an authenticated actor.
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string {
	return e.Reason
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var n *NotFoundError
	return errors.As(err, &n)
}

// IsPrecondition reports whether err is a PreconditionError.
func IsPrecondition(err error) bool {
	var p *PreconditionError
	return errors.As(err, &p)
}
