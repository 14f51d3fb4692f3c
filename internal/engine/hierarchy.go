package engine

import (
	"context"
	"time"

	"booking-admission/internal/domain/resource"
	"booking-admission/internal/pkg/errs"

	"github.com/google/uuid"
)

// maxChainDepth guards against cyclic parent links slipping past
// configuration-time validation. The modeled tree is three levels deep.
const maxChainDepth = 8

// Chain is a resource and its ancestors, self first, root property last.
type Chain []*resource.Resource

func (c Chain) Target() *resource.Resource {
	return c[0]
}

func (c Chain) Root() *resource.Resource {
	return c[len(c)-1]
}

// Location resolves the time zone rules are evaluated in: the nearest
// resource in the chain that declares one, which in practice is the root
// property.
func (c Chain) Location(fallback *time.Location) (*time.Location, error) {
	for _, r := range c {
		if r.TimeZone() != "" {
			return r.Location()
		}
	}
	return fallback, nil
}

// ResolveChain walks parent links from id up to the root property. Missing
// and inactive nodes both resolve to ErrResourceNotFound: an admission
// against a deactivated resource must not see its subtree.
func ResolveChain(ctx context.Context, repo ResourceRepository, id uuid.UUID) (Chain, error) {
	var chain Chain

	next := &id
	for next != nil {
		if len(chain) >= maxChainDepth {
			return nil, ErrHierarchyDepth
		}

		res, err := repo.Get(ctx, *next)
		if err != nil {
			return nil, err
		}
		if !res.IsActive() {
			return nil, errs.Mark(errs.New("resource "+res.ID().String()+" is inactive"), ErrResourceNotFound)
		}

		chain = append(chain, res)
		next = res.ParentID()
	}
	return chain, nil
}

// Descendants returns every node below id, depth first. Used to extend the
// conflict scope of a whole-resource booking over all of its children.
func Descendants(ctx context.Context, repo ResourceRepository, id uuid.UUID) ([]*resource.Resource, error) {
	children, err := repo.Children(ctx, id)
	if err != nil {
		return nil, err
	}

	var all []*resource.Resource
	for _, child := range children {
		all = append(all, child)
		below, err := Descendants(ctx, repo, child.ID())
		if err != nil {
			return nil, err
		}
		all = append(all, below...)
	}
	return all, nil
}

// ConflictScope lists every resource whose reservations can collide with a
// booking of the chain's target: the ancestor chain (a whole-booked ancestor
// blocks all descendants) plus the target's own subtree (booking the whole
// resource blocks each child). Siblings are never in scope.
func ConflictScope(ctx context.Context, repo ResourceRepository, chain Chain) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(chain))
	for _, r := range chain {
		ids = append(ids, r.ID())
	}

	below, err := Descendants(ctx, repo, chain.Target().ID())
	if err != nil {
		return nil, err
	}
	for _, r := range below {
		ids = append(ids, r.ID())
	}
	return ids, nil
}
