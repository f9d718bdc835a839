package errs

import "errors"

// Domain-specific sentinel errors for CQRS usecase layers
var (
	// Loyalty errors
	ErrLoyaltyMisconfigured = errors.New("loyalty configuration invalid")

	// Idempotency errors
	ErrIdempotencyKeyRequired = errors.New("idempotency key required")
	ErrIdempotencyInProgress  = errors.New("idempotency in progress")
	ErrIdempotencyCheckFailed = errors.New("idempotency check failed")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
