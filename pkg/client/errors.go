package client

import "errors"

var (
	// ErrNotFound marks lookups whose filter matched no rows. Callers map it
	// to their own taxonomy with errors.Is.
	ErrNotFound = errors.New("record not found")
)
