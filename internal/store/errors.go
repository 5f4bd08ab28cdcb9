package store

import "errors"

// Error values returned by the table stores
var (
	ErrUnknownBackend   = errors.New("unknown store backend")
	ErrNotConfigured    = errors.New("store backend not configured")
	ErrUnknownSortField = errors.New("unknown sort field")
	ErrInvalidFields    = errors.New("invalid record fields")
)
