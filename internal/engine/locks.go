package engine

import (
	"sync"

	"github.com/google/uuid"
)

// propertyLocks serializes admissions per root property. Conflict scope never
// crosses a property boundary, so property-level mutual exclusion is the
// smallest unit that keeps the check-then-act sequence safe; requests for
// different properties run fully in parallel.
type propertyLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func newPropertyLocks() *propertyLocks {
	return &propertyLocks{locks: make(map[uuid.UUID]*sync.Mutex)}
}

func (pl *propertyLocks) acquire(propertyID uuid.UUID) func() {
	pl.mu.Lock()
	lock, ok := pl.locks[propertyID]
	if !ok {
		lock = &sync.Mutex{}
		pl.locks[propertyID] = lock
	}
	pl.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
