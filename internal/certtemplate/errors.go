package certtemplate

import "errors"

var ErrTemplateNotFound = errors.New("certificate template not found")
