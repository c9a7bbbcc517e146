package repository

import (
	"context"

	"github.com/ShouwangH/garage-demo/internal/logger"
	"github.com/ShouwangH/garage-demo/internal/models"
	"github.com/ShouwangH/garage-demo/internal/storage"
)

// Storage keys for the two collections plus the one-time seed flag.
const (
	KeyListings      = "garage-listings"
	KeySavedSearches = "garage-saved-searches"
	KeyInitialized   = "garage-initialized"
)

// ListingRepository provides access to the listing collection. The whole
// collection is persisted as one document, mirroring the size of the data
// set (tens of listings).
type ListingRepository interface {
	// List returns the current listing collection. Missing or unreadable
	// stored data degrades to the seed listings, never an error.
	List(ctx context.Context) []models.Listing

	// Save replaces the persisted collection. Persistence is fire-and-forget:
	// failures are logged and never propagated.
	Save(ctx context.Context, listings []models.Listing)
}

type kvListingRepository struct {
	store storage.Store
	log   *logger.Logger
}

// NewListingRepository creates a ListingRepository over the given store.
func NewListingRepository(store storage.Store, log *logger.Logger) ListingRepository {
	return &kvListingRepository{store: store, log: log}
}

func (r *kvListingRepository) List(ctx context.Context) []models.Listing {
	var listings []models.Listing
	found, err := r.store.Get(ctx, KeyListings, &listings)
	if err != nil {
		r.log.Error("Failed to read listings, falling back to seed data", err, nil)
		return SeedListings()
	}
	if !found {
		return SeedListings()
	}
	return listings
}

func (r *kvListingRepository) Save(ctx context.Context, listings []models.Listing) {
	if err := r.store.Set(ctx, KeyListings, listings); err != nil {
		r.log.Error("Failed to persist listings", err, map[string]interface{}{
			"count": len(listings),
		})
	}
}
