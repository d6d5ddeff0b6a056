package events

import "errors"

var (
	ErrEventNotFound         = errors.New("event not found")
	ErrClientNotFound        = errors.New("client not found")
	ErrMissingFields         = errors.New("name, type, date, location and client are required")
	ErrInvalidEventType      = errors.New("invalid event type")
	ErrPastEventDate         = errors.New("event date must not be in the past")
	ErrNameRequired          = errors.New("name is required")
	ErrTextRequired          = errors.New("text is required")
	ErrInvalidStartMonth     = errors.New("startMonth must be YYYY-MM")
	ErrInvalidTermMonths     = errors.New("termMonths must be 12, 24 or 36")
	ErrChecklistItemNotFound = errors.New("checklist item not found")
	ErrGroupItemNotFound     = errors.New("group item not found")
)
