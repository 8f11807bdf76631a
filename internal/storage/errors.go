package storage

import "errors"

var (
	ErrOrderNotFound = errors.New("order not found")

	// ErrInvalidRange rejects a from > to query before any aggregation runs.
	ErrInvalidRange = errors.New("invalid range: from is after to")
)
