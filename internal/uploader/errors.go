package uploader

import "errors"

var (
	ErrInvalidFolder   = errors.New("invalid upload folder")
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrFileNotFound    = errors.New("file not found")
)
