package repository

import (
	"context"

	"github.com/ShouwangH/garage-demo/internal/logger"
	"github.com/ShouwangH/garage-demo/internal/models"
	"github.com/ShouwangH/garage-demo/internal/storage"
)

// SavedSearchRepository provides access to the saved-search collection.
type SavedSearchRepository interface {
	// List returns the current saved searches. Missing or unreadable stored
	// data degrades to an empty collection.
	List(ctx context.Context) []models.SavedSearch

	// Save replaces the persisted collection. Failures are logged, not
	// propagated.
	Save(ctx context.Context, searches []models.SavedSearch)
}

type kvSavedSearchRepository struct {
	store storage.Store
	log   *logger.Logger
}

// NewSavedSearchRepository creates a SavedSearchRepository over the given store.
func NewSavedSearchRepository(store storage.Store, log *logger.Logger) SavedSearchRepository {
	return &kvSavedSearchRepository{store: store, log: log}
}

func (r *kvSavedSearchRepository) List(ctx context.Context) []models.SavedSearch {
	var searches []models.SavedSearch
	found, err := r.store.Get(ctx, KeySavedSearches, &searches)
	if err != nil {
		r.log.Error("Failed to read saved searches, falling back to empty set", err, nil)
		return []models.SavedSearch{}
	}
	if !found {
		return []models.SavedSearch{}
	}
	return searches
}

func (r *kvSavedSearchRepository) Save(ctx context.Context, searches []models.SavedSearch) {
	if err := r.store.Set(ctx, KeySavedSearches, searches); err != nil {
		r.log.Error("Failed to persist saved searches", err, map[string]interface{}{
			"count": len(searches),
		})
	}
}
