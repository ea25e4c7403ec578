package entities

import "errors"

// Domain errors
var (
	ErrEmptyMeetingID = errors.New("meeting id is empty")
	ErrUnknownField   = errors.New("unknown meeting artifact")
)
