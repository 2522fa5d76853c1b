package validation

import "personcheck/pkg/domain"

// Validator classifies raw person input. A nil error means the returned
// Person is accepted; otherwise the error carries one of the reason kinds
// declared in this package.
//
//go:generate mockgen -package mockvalidation -source=interface.go -destination=mock/mockvalidation.go *
type Validator interface {
	Validate(in domain.PersonInput) (domain.Person, error)
}
