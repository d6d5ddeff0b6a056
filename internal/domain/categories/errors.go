package categories

import "errors"

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrNameRequired     = errors.New("category name is required")
	ErrNameTaken        = errors.New("category name already exists")
	ErrCategoryInUse    = errors.New("category in use")
)
