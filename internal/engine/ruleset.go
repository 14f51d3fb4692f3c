package engine

import (
	"context"
	"time"

	"booking-admission/internal/domain/rule"

	"github.com/google/uuid"
)

// RuleSet is an immutable snapshot of the rules declared on each resource of
// one ancestor chain, indexed by (resource id, rule type). It is built once
// per admission inside the critical section, so evaluation never observes a
// concurrent rule edit.
type RuleSet struct {
	byResource map[uuid.UUID]map[rule.Type][]*rule.Rule
}

// GatherRules loads the active rules of every chain node into a snapshot.
func GatherRules(ctx context.Context, repo RuleRepository, chain Chain) (*RuleSet, error) {
	set := &RuleSet{byResource: make(map[uuid.UUID]map[rule.Type][]*rule.Rule, len(chain))}

	for _, res := range chain {
		rules, err := repo.ListActiveRules(ctx, res.ID())
		if err != nil {
			return nil, err
		}

		byType := make(map[rule.Type][]*rule.Rule)
		for _, r := range rules {
			byType[r.RuleType()] = append(byType[r.RuleType()], r)
		}
		set.byResource[res.ID()] = byType
	}
	return set, nil
}

// For returns the rules of one type applicable on the given date, ordered
// nearest-resource-first following the chain. Rules outside their
// applicability window are dropped here; composition semantics are the
// evaluator's concern.
func (s *RuleSet) For(chain Chain, t rule.Type, date time.Time) []*rule.Rule {
	var out []*rule.Rule
	for _, res := range chain {
		for _, r := range s.byResource[res.ID()][t] {
			if r.AppliesOn(date) {
				out = append(out, r)
			}
		}
	}
	return out
}
