package domain

import "errors"

var (
	// ErrAlertNotFound is returned when an alert is not found
	ErrAlertNotFound = errors.New("alert not found")

	// ErrSymbolInvalid is returned when a symbol cannot be resolved against the quote source
	ErrSymbolInvalid = errors.New("symbol cannot be resolved")
)
