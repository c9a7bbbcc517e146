package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShouwangH/garage-demo/internal/logger"
	"github.com/ShouwangH/garage-demo/internal/models"
	"github.com/ShouwangH/garage-demo/internal/storage"
)

func newTestStore(t *testing.T) (*storage.Memory, *logger.Logger) {
	t.Helper()
	return storage.NewMemory(), logger.New("test")
}

func TestListingRepository_FallsBackToSeedsWhenEmpty(t *testing.T) {
	store, log := newTestStore(t)
	repo := NewListingRepository(store, log)

	listings := repo.List(context.Background())

	assert.Len(t, listings, len(SeedListings()))
	assert.Equal(t, "listing-001", listings[0].ID)
}

func TestListingRepository_SaveRoundTrip(t *testing.T) {
	store, log := newTestStore(t)
	repo := NewListingRepository(store, log)
	ctx := context.Background()

	repo.Save(ctx, []models.Listing{{ID: "only-one", Title: "Test Pumper"}})

	listings := repo.List(ctx)
	require.Len(t, listings, 1)
	assert.Equal(t, "only-one", listings[0].ID)
}

func TestListingRepository_MalformedDataFallsBackToSeeds(t *testing.T) {
	store, log := newTestStore(t)
	repo := NewListingRepository(store, log)

	store.SetRaw(KeyListings, []byte("{not json"))

	listings := repo.List(context.Background())
	assert.Len(t, listings, len(SeedListings()))
}

func TestSavedSearchRepository_EmptyByDefault(t *testing.T) {
	store, log := newTestStore(t)
	repo := NewSavedSearchRepository(store, log)

	assert.Empty(t, repo.List(context.Background()))
}

func TestSavedSearchRepository_SaveRoundTrip(t *testing.T) {
	store, log := newTestStore(t)
	repo := NewSavedSearchRepository(store, log)
	ctx := context.Background()

	repo.Save(ctx, []models.SavedSearch{{
		ID:     "s1",
		Name:   "Watcher",
		Status: models.StatusActive,
		Filters: models.SearchFilters{
			State: models.Ptr("TX"),
		},
	}})

	searches := repo.List(ctx)
	require.Len(t, searches, 1)
	assert.Equal(t, "s1", searches[0].ID)
	require.NotNil(t, searches[0].Filters.State)
	assert.Equal(t, "TX", *searches[0].Filters.State)
}

func TestBootstrapper_InitializeSeedsOnce(t *testing.T) {
	store, log := newTestStore(t)
	boot := NewBootstrapper(store, log)
	listings := NewListingRepository(store, log)
	searches := NewSavedSearchRepository(store, log)
	ctx := context.Background()

	require.NoError(t, boot.Initialize(ctx))
	assert.Len(t, listings.List(ctx), len(SeedListings()))
	assert.Len(t, searches.List(ctx), len(DefaultSavedSearches()))

	// A second Initialize never clobbers user changes.
	listings.Save(ctx, []models.Listing{{ID: "kept"}})
	require.NoError(t, boot.Initialize(ctx))

	current := listings.List(ctx)
	require.Len(t, current, 1)
	assert.Equal(t, "kept", current[0].ID)
}

func TestBootstrapper_ResetRestoresSeeds(t *testing.T) {
	store, log := newTestStore(t)
	boot := NewBootstrapper(store, log)
	listings := NewListingRepository(store, log)
	searches := NewSavedSearchRepository(store, log)
	ctx := context.Background()

	require.NoError(t, boot.Initialize(ctx))
	listings.Save(ctx, []models.Listing{})
	searches.Save(ctx, []models.SavedSearch{})

	require.NoError(t, boot.Reset(ctx))

	assert.Len(t, listings.List(ctx), len(SeedListings()))
	assert.Len(t, searches.List(ctx), len(DefaultSavedSearches()))
}
