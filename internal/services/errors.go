package services

import "errors"

// Typed failures surfaced to callers. Handlers map these to HTTP status
// codes with errors.Is; none of them leaves state partially mutated.
var (
	// Authentication
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotVerified        = errors.New("account is not verified")
	ErrInvalidCode        = errors.New("invalid or expired login code")

	// Validation
	ErrInvalidMobile = errors.New("mobile number must be exactly 10 digits")
	ErrUsernameTaken = errors.New("username already taken")
	ErrContactTaken  = errors.New("mobile number already registered")

	// Lookup
	ErrEmailNotFound  = errors.New("no account registered with this email")
	ErrMobileNotFound = errors.New("no artisan registered with this mobile number")

	// Authorization
	ErrPermissionDenied = errors.New("role does not permit this operation")

	// Catalog / orders
	ErrUnknownSeller     = errors.New("seller does not reference an existing artisan")
	ErrInvalidStatus     = errors.New("unknown order status")
	ErrInvalidTransition = errors.New("order status transition not allowed")
)
