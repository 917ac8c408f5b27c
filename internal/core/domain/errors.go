package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidDocument indicates a stored document exists but could not be decoded.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrUnauthorized indicates the store rejected the session credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown document type or importer.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrNotConfigured indicates required API settings are missing.
	ErrNotConfigured = errors.New("not configured")
)
