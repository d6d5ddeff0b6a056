package financial

import "errors"

var (
	ErrEventNotFound       = errors.New("event not found")
	ErrCategoryNotFound    = errors.New("invalid category")
	ErrDescriptionRequired = errors.New("description is required")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInvalidType         = errors.New("type must be income or expense")
)
