package validation

import (
	"errors"
	"personcheck/pkg/serrors"
)

// Reason kinds. Each one is a sub-kind of serrors.ErrBadRequest.
var (
	ErrInvalidName        = serrors.NewSubKind(serrors.ErrBadRequest, "INVALID_NAME")
	ErrInvalidAgeFormat   = serrors.NewSubKind(serrors.ErrBadRequest, "INVALID_AGE_FORMAT")
	ErrInvalidAgeRange    = serrors.NewSubKind(serrors.ErrBadRequest, "INVALID_AGE_RANGE")
	ErrInvalidHeightEmpty = serrors.NewSubKind(serrors.ErrBadRequest, "INVALID_HEIGHT_EMPTY")
	ErrInvalidHeightChars = serrors.NewSubKind(serrors.ErrBadRequest, "INVALID_HEIGHT_CHARS")
	ErrInvalidHeightRange = serrors.NewSubKind(serrors.ErrBadRequest, "INVALID_HEIGHT_RANGE")
)

// Reasons lists every reason kind in rule order.
func Reasons() []serrors.Kind {
	return []serrors.Kind{
		ErrInvalidName,
		ErrInvalidAgeFormat,
		ErrInvalidAgeRange,
		ErrInvalidHeightEmpty,
		ErrInvalidHeightChars,
		ErrInvalidHeightRange,
	}
}

// ReasonOf returns the reason kind carried by err, or nil if err is not a
// validation failure.
func ReasonOf(err error) serrors.Kind {
	k := serrors.KindOf(err)
	if k == nil {
		return nil
	}
	for _, r := range Reasons() {
		if errors.Is(k, r) {
			return r
		}
	}

	return nil
}
