// Package core defines sentinel errors shared across the codec.
package core

import "errors"

// Sentinel errors. Callers match with errors.Is; wrapping layers add context
// with %w and never translate one kind into another.
var (
	// Codec errors
	ErrBadField    = errors.New("netseg: bad field")
	ErrMissingData = errors.New("netseg: missing data")

	// Configuration errors
	ErrConfigInvalid = errors.New("netseg: invalid configuration")
)
