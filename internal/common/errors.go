// Package common defines sentinel errors shared by the storage, service and
// CLI layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// CLI-level errors.
	ErrorValidation       = errors.New("validation error")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
