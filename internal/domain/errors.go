package domain

import "errors"

// Error kinds raised by the wallet ledger core.
// Callers classify failures with errors.Is; messages carry the detail.
var (
	// ErrInvalidArgument reports malformed construction input
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound reports a lookup of an identifier absent from the addressed collection
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists reports an attempt to add an entity whose identifier is already present
	ErrAlreadyExists = errors.New("already exists")

	// ErrIllegalState reports an operation not allowed in the entity's current state
	ErrIllegalState = errors.New("illegal state")

	// ErrNoHorizon reports a future value request with neither a maturity date nor a caller horizon
	ErrNoHorizon = errors.New("no projection horizon")
)
