package domain

import "errors"

// Domain-level errors
var (
	ErrProductNotFound = errors.New("product not found")
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidSortKey  = errors.New("invalid sort key")
	ErrInvalidCount    = errors.New("invalid count")
)
