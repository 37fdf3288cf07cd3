package apperrors

import "errors"

// Sentinel errors for the business layer. Services wrap these with
// fmt.Errorf("...: %w", ...) and handlers match them with errors.Is to pick
// the HTTP status code.
var (
	// ErrValidation marks malformed or missing required input.
	ErrValidation = errors.New("validation error")

	// ErrNotFound marks a reference to an entity id that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidOperation marks well-formed input that violates a business
	// invariant (wrong order state, coupon already redeemed, mixed currencies).
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrConfiguration marks missing or corrupt seed data, e.g. the "Created"
	// order state. Not a user error; surfaces as a 500.
	ErrConfiguration = errors.New("configuration error")

	// ErrInvalidCredentials marks a failed login attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
