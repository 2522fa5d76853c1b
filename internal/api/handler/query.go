// Package handler holds the pieces shared by the HTTP handlers: query
// parameter names and mapping of validation outcomes to labels.
package handler

import (
	"net/url"
	"personcheck/internal/validation"
	"personcheck/pkg/domain"
)

// Query parameter names.
const (
	ParamFullName = "full_name"
	ParamAge      = "age"
	ParamHeight   = "height"
)

// PersonInput extracts the raw input from query parameters. A missing
// parameter yields an empty string; repeated parameters use the first value.
func PersonInput(q url.Values) domain.PersonInput {
	return domain.PersonInput{
		FullName: q.Get(ParamFullName),
		Age:      q.Get(ParamAge),
		Height:   q.Get(ParamHeight),
	}
}

// Query encodes in back into query parameters.
func Query(in domain.PersonInput) url.Values {
	return url.Values{
		ParamFullName: {in.FullName},
		ParamAge:      {in.Age},
		ParamHeight:   {in.Height},
	}
}

// ReasonName returns the reason code of a validation failure, or "" when err
// is nil or not a validation failure.
func ReasonName(err error) string {
	if r := validation.ReasonOf(err); r != nil {
		return r.Error()
	}

	return ""
}
