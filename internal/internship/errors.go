package internship

import "errors"

var (
	ErrInternshipNotFound = errors.New("internship not found")
	ErrNotAuthorized      = errors.New("no authenticated user")
)
