//go:build unit

package engine_test

import (
	"context"
	"testing"
	"time"

	"booking-admission/internal/domain/resource"
	"booking-admission/internal/engine"
	"booking-admission/internal/infra/memstore"
	"booking-admission/internal/pkg/errs"
	"booking-admission/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTree builds property -> building -> (room, sibling) in a fresh store.
func newTree(t *testing.T) (*memstore.Store, *resource.Resource, *resource.Resource, *resource.Resource, *resource.Resource) {
	t.Helper()
	store := memstore.New()

	property := builder.NewResourceBuilder().WithName("Seaside Hotel").Build()
	building := builder.NewResourceBuilder().WithName("East Wing").AsBuildingOf(property.ID()).Build()
	room := builder.NewResourceBuilder().WithName("Room 101").AsRoomOf(building.ID()).Build()
	sibling := builder.NewResourceBuilder().WithName("Room 102").AsRoomOf(building.ID()).Build()

	store.AddResource(property)
	store.AddResource(building)
	store.AddResource(room)
	store.AddResource(sibling)
	return store, property, building, room, sibling
}

// cyclicPair returns two buildings whose parent links point at each other.
func cyclicPair(t *testing.T) (*resource.Resource, *resource.Resource) {
	t.Helper()
	aID := uuid.New()
	bID := uuid.New()
	a := resource.ReconstructResource(aID, &bID, "A", resource.LevelBuilding,
		resource.GranularityWhole, 5, resource.StatusActive, "", time.Now(), time.Now())
	b := resource.ReconstructResource(bID, &aID, "B", resource.LevelBuilding,
		resource.GranularityWhole, 5, resource.StatusActive, "", time.Now(), time.Now())
	return a, b
}

func TestResolveChain(t *testing.T) {
	ctx := context.Background()

	t.Run("walks from leaf to root", func(t *testing.T) {
		store, property, building, room, _ := newTree(t)

		chain, err := engine.ResolveChain(ctx, store, room.ID())
		require.NoError(t, err)
		require.Len(t, chain, 3)
		assert.Equal(t, room.ID(), chain.Target().ID())
		assert.Equal(t, building.ID(), chain[1].ID())
		assert.Equal(t, property.ID(), chain.Root().ID())
	})

	t.Run("property resolves to itself", func(t *testing.T) {
		store, property, _, _, _ := newTree(t)

		chain, err := engine.ResolveChain(ctx, store, property.ID())
		require.NoError(t, err)
		require.Len(t, chain, 1)
		assert.Equal(t, property.ID(), chain.Root().ID())
	})

	t.Run("unknown resource", func(t *testing.T) {
		store, _, _, _, _ := newTree(t)

		_, err := engine.ResolveChain(ctx, store, uuid.New())
		assert.ErrorIs(t, err, engine.ErrResourceNotFound)
	})

	t.Run("inactive node anywhere in the chain hides the subtree", func(t *testing.T) {
		store := memstore.New()
		property := builder.NewResourceBuilder().WithStatus(resource.StatusInactive).Build()
		room := builder.NewResourceBuilder().AsRoomOf(property.ID()).Build()
		store.AddResource(property)
		store.AddResource(room)

		_, err := engine.ResolveChain(ctx, store, room.ID())
		require.Error(t, err)
		assert.True(t, errs.Is(err, engine.ErrResourceNotFound))
	})

	t.Run("cyclic parent links hit the depth guard", func(t *testing.T) {
		store := memstore.New()
		a, b := cyclicPair(t)
		store.AddResource(a)
		store.AddResource(b)

		_, err := engine.ResolveChain(ctx, store, a.ID())
		assert.ErrorIs(t, err, engine.ErrHierarchyDepth)
	})
}

func TestChainLocation(t *testing.T) {
	ctx := context.Background()

	t.Run("root property declares the zone", func(t *testing.T) {
		store := memstore.New()
		property := builder.NewResourceBuilder().WithTimeZone("Asia/Tokyo").Build()
		room := builder.NewResourceBuilder().AsRoomOf(property.ID()).Build()
		store.AddResource(property)
		store.AddResource(room)

		chain, err := engine.ResolveChain(ctx, store, room.ID())
		require.NoError(t, err)

		loc, err := chain.Location(time.UTC)
		require.NoError(t, err)
		assert.Equal(t, "Asia/Tokyo", loc.String())
	})

	t.Run("no declared zone uses the fallback", func(t *testing.T) {
		store := memstore.New()
		propertyID := uuid.New()
		property := resource.ReconstructResource(propertyID, nil, "Hotel", resource.LevelProperty,
			resource.GranularityWhole, 10, resource.StatusActive, "", time.Now(), time.Now())
		store.AddResource(property)

		chain, err := engine.ResolveChain(ctx, store, propertyID)
		require.NoError(t, err)

		berlin, err := time.LoadLocation("Europe/Berlin")
		require.NoError(t, err)
		loc, err := chain.Location(berlin)
		require.NoError(t, err)
		assert.Equal(t, berlin, loc)
	})
}

func TestConflictScope(t *testing.T) {
	ctx := context.Background()
	store, property, building, room, sibling := newTree(t)

	t.Run("room scope is its ancestor chain", func(t *testing.T) {
		chain, err := engine.ResolveChain(ctx, store, room.ID())
		require.NoError(t, err)

		scope, err := engine.ConflictScope(ctx, store, chain)
		require.NoError(t, err)

		assert.ElementsMatch(t, []uuid.UUID{room.ID(), building.ID(), property.ID()}, scope)
		assert.NotContains(t, scope, sibling.ID(), "siblings never block each other")
	})

	t.Run("building scope adds its descendants", func(t *testing.T) {
		chain, err := engine.ResolveChain(ctx, store, building.ID())
		require.NoError(t, err)

		scope, err := engine.ConflictScope(ctx, store, chain)
		require.NoError(t, err)

		assert.ElementsMatch(t, []uuid.UUID{
			building.ID(), property.ID(), room.ID(), sibling.ID(),
		}, scope)
	})
}
