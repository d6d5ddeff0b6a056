package collections

import "errors"

var (
	ErrParticipantNotFound   = errors.New("participant not found in this event")
	ErrInvalidReferenceMonth = errors.New("referenceMonth must be YYYY-MM")
	ErrNegativeAmount        = errors.New("amount must be zero or positive")
)
