package mentor

import "errors"

var (
	ErrMentorNotFound = errors.New("mentor not found")
	ErrEmailExists    = errors.New("mentor email already exists")
)
