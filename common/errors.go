package common

import "errors"

var (
	// ErrorInvalidInput is returned when there is nothing to summarize,
	// e.g. an empty value sequence or an empty record set.
	ErrorInvalidInput = errors.New("invalid input")

	// ErrorInvalidOption is returned for a missing accessor or an unknown
	// named option.
	ErrorInvalidOption = errors.New("invalid option")
)
