package clients

import "errors"

var (
	ErrClientNotFound = errors.New("client not found")
	ErrNameRequired   = errors.New("client name is required")
)
