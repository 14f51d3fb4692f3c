package errs

import "errors"

// Sentinel errors shared across the usecase and handler layers.
var (
	ErrReservationNotFound     = errors.New("reservation not found")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
