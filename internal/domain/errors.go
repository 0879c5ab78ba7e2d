package domain

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidManifest = errors.New("invalid manifest")
	ErrSpecUnavailable = errors.New("archetype spec unavailable")
	ErrUnsupportedFile = errors.New("unsupported file")
)
