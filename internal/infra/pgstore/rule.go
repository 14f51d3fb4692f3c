package pgstore

import (
	"context"
	"time"

	"booking-admission/internal/domain/resource"
	"booking-admission/internal/domain/rule"
	"booking-admission/internal/infra"
	"booking-admission/internal/pkg/errs"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RuleStore reads rule records from Postgres and parses their payloads at the
// boundary, so a malformed stored value surfaces as a configuration error
// instead of reaching the evaluator. It satisfies engine.RuleRepository.
type RuleStore struct {
	pool *pgxpool.Pool
}

func NewRuleStore(pool *pgxpool.Pool) *RuleStore {
	return &RuleStore{pool: pool}
}

func (s *RuleStore) ListActiveRules(ctx context.Context, resourceID uuid.UUID) ([]*rule.Rule, error) {
	query, args, err := psql.Select(
		"id",
		"resource_id",
		"level",
		"name",
		"rule_type",
		"payload",
		"window_from",
		"window_to",
	).
		From("rules").
		Where(squirrel.Eq{
			"resource_id": resourceID,
			"status":      string(rule.StatusActive),
		}).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("build rule select", err)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("query rules by resource", err)
	}
	defer rows.Close()

	var rules []*rule.Rule
	for rows.Next() {
		var (
			id         uuid.UUID
			resID      uuid.UUID
			level      string
			name       string
			ruleType   string
			payload    []byte
			windowFrom *time.Time
			windowTo   *time.Time
		)
		if err := rows.Scan(&id, &resID, &level, &name, &ruleType, &payload, &windowFrom, &windowTo); err != nil {
			return nil, infra.WrapRepoErr("scan rule row", err)
		}

		parsed, err := rule.ParsePayload(rule.Type(ruleType), payload)
		if err != nil {
			// The raw error already wraps rule.ErrMalformedPayload; keep that
			// mark so the engine classifies it as a configuration fault.
			return nil, errs.Wrap(err, "rule "+id.String())
		}

		r, err := rule.NewRule(
			id,
			resID,
			resource.Level(level),
			name,
			rule.Type(ruleType),
			parsed,
			rule.Window{From: windowFrom, To: windowTo},
			rule.StatusActive,
		)
		if err != nil {
			return nil, errs.Wrap(err, "rule "+id.String())
		}
		rules = append(rules, r)
	}
	return rules, rows.Err()
}
