package engine

import "errors"

var (
	ErrResourceNotFound    = errors.New("resource not found")
	ErrHierarchyDepth      = errors.New("resource hierarchy exceeds maximum depth")
	ErrReservationNotFound = errors.New("reservation not found in conflict index")
)
