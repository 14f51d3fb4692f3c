package engine

import (
	"sort"
	"sync"

	"booking-admission/internal/domain/interval"
	"booking-admission/internal/domain/reservation"

	"github.com/google/uuid"
)

type indexEntry struct {
	res *reservation.Reservation
	// maxEnd is the latest end among this entry and all earlier ones, which
	// lets overlap queries stop walking backward early.
	maxEnd int64
}

// ConflictIndex holds the active (Pending/Confirmed) reservation intervals of
// each resource, ordered by start time. Overlap lookups binary-search the
// insertion point and walk back pruning on the running max-end, so they stay
// sub-linear as a resource's history grows.
//
// The index is mutated only by the engine's accept path and by external
// status-transition notifications arriving through Remove.
type ConflictIndex struct {
	mu         sync.RWMutex
	byResource map[uuid.UUID][]indexEntry
	locations  map[uuid.UUID]uuid.UUID // reservation id -> resource id
}

func NewConflictIndex() *ConflictIndex {
	return &ConflictIndex{
		byResource: make(map[uuid.UUID][]indexEntry),
		locations:  make(map[uuid.UUID]uuid.UUID),
	}
}

// Insert registers a reservation's interval. Non-occupying reservations
// (Rejected/Cancelled) are ignored so warm-start can feed the raw set.
func (ci *ConflictIndex) Insert(res *reservation.Reservation) {
	if !res.Occupies() {
		return
	}

	ci.mu.Lock()
	defer ci.mu.Unlock()

	entries := ci.byResource[res.ResourceID()]
	pos := sort.Search(len(entries), func(i int) bool {
		return entries[i].res.Slot().Start().After(res.Slot().Start())
	})

	entries = append(entries, indexEntry{})
	copy(entries[pos+1:], entries[pos:])
	entries[pos] = indexEntry{res: res}

	recomputeMaxEnd(entries, pos)
	ci.byResource[res.ResourceID()] = entries
	ci.locations[res.ID()] = res.ResourceID()
}

// Remove drops a reservation's interval, e.g. on cancellation or external
// rejection. It reports whether the reservation was present.
func (ci *ConflictIndex) Remove(reservationID uuid.UUID) bool {
	ci.mu.Lock()
	defer ci.mu.Unlock()

	resourceID, ok := ci.locations[reservationID]
	if !ok {
		return false
	}
	delete(ci.locations, reservationID)

	entries := ci.byResource[resourceID]
	for i, e := range entries {
		if e.res.ID() == reservationID {
			entries = append(entries[:i], entries[i+1:]...)
			if len(entries) == 0 {
				delete(ci.byResource, resourceID)
			} else {
				recomputeMaxEnd(entries, i)
				ci.byResource[resourceID] = entries
			}
			return true
		}
	}
	return false
}

// AnyOverlap returns some active reservation on the resource whose interval
// overlaps iv, or nil.
func (ci *ConflictIndex) AnyOverlap(resourceID uuid.UUID, iv interval.Interval) *reservation.Reservation {
	ci.mu.RLock()
	defer ci.mu.RUnlock()

	entries := ci.byResource[resourceID]
	// First entry starting at or after the candidate's end cannot overlap,
	// nor can anything after it.
	hi := sort.Search(len(entries), func(i int) bool {
		return !entries[i].res.Slot().Start().Before(iv.End())
	})

	for i := hi - 1; i >= 0; i-- {
		if entries[i].maxEnd <= iv.Start().UnixNano() {
			break
		}
		if entries[i].res.Slot().Overlaps(iv) {
			return entries[i].res
		}
	}
	return nil
}

// Size reports the number of indexed reservations, for metrics.
func (ci *ConflictIndex) Size() int {
	ci.mu.RLock()
	defer ci.mu.RUnlock()
	return len(ci.locations)
}

func recomputeMaxEnd(entries []indexEntry, from int) {
	for i := from; i < len(entries); i++ {
		end := entries[i].res.Slot().End().UnixNano()
		if i > 0 && entries[i-1].maxEnd > end {
			end = entries[i-1].maxEnd
		}
		entries[i].maxEnd = end
	}
}
