// internal/services/errors.go
package services

import "errors"

var (
	// ErrNotFound covers empty single-row lookups and, deliberately,
	// the empty product list (the API 404s on an empty catalog).
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned for duplicate unique keys that are
	// checked proactively (metatag address).
	ErrConflict = errors.New("already exists")

	// ErrInvalidImage is returned when a payload decodes as base64
	// but not as a raster image.
	ErrInvalidImage = errors.New("invalid image payload")
)
