// Package memstore provides an in-memory implementation of the engine's
// repositories. It backs unit tests and fixture-driven development hosting.
package memstore

import (
	"context"
	"sync"

	"booking-admission/internal/domain/reservation"
	"booking-admission/internal/domain/resource"
	"booking-admission/internal/domain/rule"
	"booking-admission/internal/engine"

	"github.com/google/uuid"
)

// Compile-time interface checks.
var (
	_ engine.ResourceRepository    = (*Store)(nil)
	_ engine.RuleRepository        = (*Store)(nil)
	_ engine.ReservationRepository = (*Store)(nil)
	_ engine.ReservationSink       = (*Store)(nil)
)

// Store is a thread-safe in-memory store for resources, rules, and
// reservations.
type Store struct {
	mu           sync.RWMutex
	resources    map[uuid.UUID]*resource.Resource
	children     map[uuid.UUID][]uuid.UUID
	rules        map[uuid.UUID][]*rule.Rule // keyed by target resource id
	reservations map[uuid.UUID]*reservation.Reservation
}

func New() *Store {
	return &Store{
		resources:    make(map[uuid.UUID]*resource.Resource),
		children:     make(map[uuid.UUID][]uuid.UUID),
		rules:        make(map[uuid.UUID][]*rule.Rule),
		reservations: make(map[uuid.UUID]*reservation.Reservation),
	}
}

func (s *Store) AddResource(res *resource.Resource) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resources[res.ID()] = res
	if res.ParentID() != nil {
		s.children[*res.ParentID()] = append(s.children[*res.ParentID()], res.ID())
	}
}

func (s *Store) AddRule(r *rule.Rule) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rules[r.ResourceID()] = append(s.rules[r.ResourceID()], r)
}

func (s *Store) Get(_ context.Context, id uuid.UUID) (*resource.Resource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res, ok := s.resources[id]
	if !ok {
		return nil, engine.ErrResourceNotFound
	}
	return res, nil
}

func (s *Store) Children(_ context.Context, id uuid.UUID) ([]*resource.Resource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.children[id]
	out := make([]*resource.Resource, 0, len(ids))
	for _, childID := range ids {
		if res, ok := s.resources[childID]; ok {
			out = append(out, res)
		}
	}
	return out, nil
}

func (s *Store) ListActiveRules(_ context.Context, resourceID uuid.UUID) ([]*rule.Rule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*rule.Rule
	for _, r := range s.rules[resourceID] {
		if r.IsActive() {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *Store) ActiveReservations(_ context.Context, resourceID uuid.UUID) ([]*reservation.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*reservation.Reservation
	for _, res := range s.reservations {
		if res.ResourceID() == resourceID && res.Occupies() {
			out = append(out, res)
		}
	}
	return out, nil
}

func (s *Store) Save(_ context.Context, res *reservation.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reservations[res.ID()] = res
	return nil
}

func (s *Store) Reservation(id uuid.UUID) (*reservation.Reservation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	res, ok := s.reservations[id]
	return res, ok
}
