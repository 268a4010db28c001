package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown field kind or product sync mode.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrRemoteUnavailable indicates the remote instance could not be queried.
	// The resolver treats it as "nothing resolved".
	ErrRemoteUnavailable = errors.New("remote instance unavailable")

	// ErrCommerceDisabled indicates product lookups were requested while
	// the commerce integration is switched off.
	ErrCommerceDisabled = errors.New("commerce integration disabled")
)
