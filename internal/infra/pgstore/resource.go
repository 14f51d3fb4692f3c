package pgstore

import (
	"context"
	"errors"
	"time"

	"booking-admission/internal/domain/resource"
	"booking-admission/internal/engine"
	"booking-admission/internal/infra"
	"booking-admission/internal/pkg/errs"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var resourceColumns = []string{
	"id",
	"parent_id",
	"name",
	"level",
	"granularity",
	"capacity",
	"status",
	"time_zone",
	"created_at",
	"updated_at",
}

// ResourceStore reads the resource tree from Postgres. It satisfies
// engine.ResourceRepository.
type ResourceStore struct {
	pool *pgxpool.Pool
}

func NewResourceStore(pool *pgxpool.Pool) *ResourceStore {
	return &ResourceStore{pool: pool}
}

func (s *ResourceStore) Get(ctx context.Context, id uuid.UUID) (*resource.Resource, error) {
	query, args, err := psql.Select(resourceColumns...).
		From("resources").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("build resource select", err)
	}

	res, err := scanResource(s.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.Mark(
				infra.WrapRepoErr("resource not found", err, infra.KindNotFound),
				engine.ErrResourceNotFound,
			)
		}
		return nil, infra.WrapRepoErr("query resource by id", err)
	}
	return res, nil
}

func (s *ResourceStore) Children(ctx context.Context, id uuid.UUID) ([]*resource.Resource, error) {
	query, args, err := psql.Select(resourceColumns...).
		From("resources").
		Where(squirrel.Eq{"parent_id": id}).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("build children select", err)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("query resource children", err)
	}
	defer rows.Close()

	var children []*resource.Resource
	for rows.Next() {
		res, err := scanResource(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("scan resource row", err)
		}
		children = append(children, res)
	}
	return children, rows.Err()
}

// ListIDs returns every resource id, for warm-starting the conflict index.
func (s *ResourceStore) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	query, _, err := psql.Select("id").From("resources").ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("build resource id select", err)
	}

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("query resource ids", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("scan resource id", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func scanResource(row pgx.Row) (*resource.Resource, error) {
	var (
		id          uuid.UUID
		parentID    *uuid.UUID
		name        string
		level       string
		granularity string
		capacity    int
		status      string
		timeZone    string
		createdAt   time.Time
		updatedAt   time.Time
	)

	if err := row.Scan(&id, &parentID, &name, &level, &granularity, &capacity, &status, &timeZone, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	return resource.ReconstructResource(
		id,
		parentID,
		name,
		resource.Level(level),
		resource.Granularity(granularity),
		capacity,
		resource.Status(status),
		timeZone,
		createdAt,
		updatedAt,
	), nil
}
