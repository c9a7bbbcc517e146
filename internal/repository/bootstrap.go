package repository

import (
	"context"

	"github.com/ShouwangH/garage-demo/internal/logger"
	"github.com/ShouwangH/garage-demo/internal/storage"
)

// Bootstrapper seeds and resets the demo data set. Seeding runs once,
// gated by the initialized flag.
type Bootstrapper struct {
	store storage.Store
	log   *logger.Logger
}

// NewBootstrapper creates a Bootstrapper over the given store.
func NewBootstrapper(store storage.Store, log *logger.Logger) *Bootstrapper {
	return &Bootstrapper{store: store, log: log}
}

// Initialize seeds the demo listings and the default saved search on first
// run. Subsequent calls are no-ops.
func (b *Bootstrapper) Initialize(ctx context.Context) error {
	var initialized bool
	if _, err := b.store.Get(ctx, KeyInitialized, &initialized); err != nil {
		return err
	}
	if initialized {
		return nil
	}

	if err := b.store.Set(ctx, KeyListings, SeedListings()); err != nil {
		return err
	}
	if err := b.store.Set(ctx, KeySavedSearches, DefaultSavedSearches()); err != nil {
		return err
	}
	if err := b.store.Set(ctx, KeyInitialized, true); err != nil {
		return err
	}

	b.log.Info("Seeded demo data", map[string]interface{}{
		"listings":       len(SeedListings()),
		"saved_searches": len(DefaultSavedSearches()),
	})
	return nil
}

// Reset clears both collections and the initialized flag, then reseeds.
func (b *Bootstrapper) Reset(ctx context.Context) error {
	for _, key := range []string{KeyListings, KeySavedSearches, KeyInitialized} {
		if err := b.store.Remove(ctx, key); err != nil {
			return err
		}
	}
	return b.Initialize(ctx)
}
