package crm

import (
	"errors"
	"fmt"
)

var (
	// ErrNoFields is returned by update operations when no actionable field was
	// supplied. Callers surface it as a warning, not an error.
	ErrNoFields = errors.New("no fields provided to update")

	// ErrAlreadyPaid is returned when marking an invoice paid that already is.
	ErrAlreadyPaid = errors.New("invoice is already marked as paid")

	// ErrRevenueExists is returned on explicit revenue creation when a revenue
	// row already exists for the invoice.
	ErrRevenueExists = errors.New("revenue record already exists for invoice")

	// ErrNoEmail is returned when sending email to a contact without an address.
	ErrNoEmail = errors.New("contact has no email address")
)

// NotFoundError reports that a referenced entity does not exist within the
// caller's account scope.
type NotFoundError struct {
	Entity string
	Ref    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.Ref)
}

func notFound(entity string, ref any) *NotFoundError {
	return &NotFoundError{Entity: entity, Ref: fmt.Sprint(ref)}
}

// AmbiguousError reports that name resolution matched more than one candidate.
// Callers must not pick one; they report the candidates back for disambiguation.
type AmbiguousError struct {
	Name       string
	Candidates []Contact
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("multiple contacts found with name %q", e.Name)
}

// IsWarning reports whether err is one of the no-op conditions that map to a
// warning envelope rather than an error.
func IsWarning(err error) bool {
	return errors.Is(err, ErrNoFields) ||
		errors.Is(err, ErrAlreadyPaid) ||
		errors.Is(err, ErrRevenueExists)
}
