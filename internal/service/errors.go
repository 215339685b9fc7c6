package service

import "errors"

// Validation errors. Handlers map these to 400.
var (
	ErrUnknownStrategy  = errors.New("unknown cooling strategy")
	ErrUnknownTarget    = errors.New("unknown notification target")
	ErrEmptyLabel       = errors.New("profile label is empty")
	ErrLabelTooLong     = errors.New("profile label is too long")
	ErrInvalidTimeRange = errors.New("invalid time range: from must be <= to")
	ErrInvalidFilter    = errors.New("invalid alert filter")
)

var ErrProfileNotFound = errors.New("profile not found")

// IsValidation reports whether err was caused by bad caller input.
func IsValidation(err error) bool {
	return errors.Is(err, ErrUnknownStrategy) ||
		errors.Is(err, ErrUnknownTarget) ||
		errors.Is(err, ErrEmptyLabel) ||
		errors.Is(err, ErrLabelTooLong) ||
		errors.Is(err, ErrInvalidTimeRange) ||
		errors.Is(err, ErrInvalidFilter)
}
