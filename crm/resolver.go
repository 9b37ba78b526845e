package crm

import (
	"context"
	"strings"
)

// ResolveContactByName maps a free-text name fragment to exactly one contact.
// Zero matches yield NotFoundError, two or more yield AmbiguousError carrying
// the full candidate list. Callers never guess among candidates.
func (s *Service) ResolveContactByName(ctx context.Context, accountID, name string) (Contact, error) {
	matches, err := s.FindContactsByName(ctx, accountID, name)
	if err != nil {
		return Contact{}, err
	}
	switch len(matches) {
	case 0:
		return Contact{}, notFound("contact", strings.TrimSpace(name))
	case 1:
		return matches[0], nil
	default:
		return Contact{}, &AmbiguousError{Name: strings.TrimSpace(name), Candidates: matches}
	}
}

// WithContactByName is the resolve-then-delegate primitive behind every
// name-based operation: resolve the name, then run the id-based operation with
// the resolved contact. Resolution failures pass through untouched so every
// name-based tool reports not-found and ambiguity identically.
func WithContactByName[T any](ctx context.Context, s *Service, accountID, name string, fn func(Contact) (T, error)) (T, error) {
	var zero T
	contact, err := s.ResolveContactByName(ctx, accountID, name)
	if err != nil {
		return zero, err
	}
	return fn(contact)
}
