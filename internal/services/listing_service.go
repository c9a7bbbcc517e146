package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ShouwangH/garage-demo/internal/logger"
	"github.com/ShouwangH/garage-demo/internal/matching"
	"github.com/ShouwangH/garage-demo/internal/models"
	"github.com/ShouwangH/garage-demo/internal/repository"
)

// ListingService defines the business logic for browsing and managing the
// listing collection.
type ListingService interface {
	// List returns the listings matching the filter set, ordered by the
	// given sort option. An empty filter set matches everything.
	List(ctx context.Context, filters models.SearchFilters, sortBy models.SortOption) []models.Listing

	// Add inserts a new listing at the front of the collection. A missing
	// ID or creation timestamp is assigned.
	Add(ctx context.Context, listing models.Listing) models.Listing

	// Remove deletes a listing by id. Removing an unknown id is a no-op.
	Remove(ctx context.Context, id string)

	// Simulate adds the next listing from the demo rotation with a fresh id
	// and timestamp, and returns it.
	Simulate(ctx context.Context) models.Listing

	// Reset restores the seeded demo data set.
	Reset(ctx context.Context) error
}

type listingService struct {
	repo repository.ListingRepository
	boot *repository.Bootstrapper
	log  *logger.Logger

	mu       sync.Mutex
	simIndex int
}

// NewListingService creates a new ListingService.
func NewListingService(repo repository.ListingRepository, boot *repository.Bootstrapper, log *logger.Logger) ListingService {
	return &listingService{
		repo: repo,
		boot: boot,
		log:  log,
	}
}

func (s *listingService) List(ctx context.Context, filters models.SearchFilters, sortBy models.SortOption) []models.Listing {
	listings := s.repo.List(ctx)
	matched := matching.MatchingListings(listings, filters)

	s.log.Debug("Filtered listings", map[string]interface{}{
		"total":   len(listings),
		"matched": len(matched),
		"sort":    string(sortBy),
	})

	return matching.SortListings(matched, sortBy)
}

func (s *listingService) Add(ctx context.Context, listing models.Listing) models.Listing {
	if listing.ID == "" {
		listing.ID = uuid.New().String()
	}
	if listing.CreatedAt.IsZero() {
		listing.CreatedAt = time.Now().UTC()
	}

	listings := s.repo.List(ctx)
	updated := append([]models.Listing{listing}, listings...)
	s.repo.Save(ctx, updated)

	s.log.Info("Listing added", map[string]interface{}{
		"listing_id": listing.ID,
		"title":      listing.Title,
	})

	return listing
}

func (s *listingService) Remove(ctx context.Context, id string) {
	listings := s.repo.List(ctx)

	updated := make([]models.Listing, 0, len(listings))
	removed := false
	for _, l := range listings {
		if l.ID == id {
			removed = true
			continue
		}
		updated = append(updated, l)
	}

	if !removed {
		// Idempotent delete: unknown ids are not an error.
		return
	}

	s.repo.Save(ctx, updated)
	s.log.Info("Listing removed", map[string]interface{}{"listing_id": id})
}

func (s *listingService) Simulate(ctx context.Context) models.Listing {
	templates := repository.SimulatableListings()

	s.mu.Lock()
	template := templates[s.simIndex%len(templates)]
	s.simIndex++
	s.mu.Unlock()

	template.ID = "sim-" + uuid.New().String()
	template.CreatedAt = time.Now().UTC()

	return s.Add(ctx, template)
}

func (s *listingService) Reset(ctx context.Context) error {
	if err := s.boot.Reset(ctx); err != nil {
		s.log.Error("Failed to reset demo data", err, nil)
		return err
	}

	s.mu.Lock()
	s.simIndex = 0
	s.mu.Unlock()

	s.log.Info("Demo data reset", nil)
	return nil
}
