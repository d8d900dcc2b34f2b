package lead

import "errors"

// Domain-specific errors for the lead package.
var (
	ErrNotFound   = errors.New("lead not found")
	ErrEmptyPhone = errors.New("phone is empty")
)
