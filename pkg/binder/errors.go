package binder

import "errors"

var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrInvalidForm          = errors.New("failed to bind form data")
	ErrInvalidQuery         = errors.New("failed to bind query parameters")
	ErrInvalidPath          = errors.New("failed to bind path parameters")
	ErrInvalidJSON          = errors.New("failed to bind JSON request body")
	ErrInvalidTarget        = errors.New("target must be a non-nil pointer to struct")
)
