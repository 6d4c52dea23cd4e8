package coursetask

import "errors"

var ErrTaskNotFound = errors.New("course task not found")
