// Package common defines shared constants and sentinel errors used across
// client and server layers of stockpos. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Validation errors. Wrap with details, match with errors.Is.
	ErrValidation = errors.New("validation error")

	// Sale recording against a stale or exhausted stock snapshot.
	ErrInsufficientStock = errors.New("insufficient stock")

	// Transport-level error: the gateway cannot be reached.
	ErrUnavailable = errors.New("gateway unavailable")
)
