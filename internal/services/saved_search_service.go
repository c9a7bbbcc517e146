package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ShouwangH/garage-demo/internal/logger"
	"github.com/ShouwangH/garage-demo/internal/matching"
	"github.com/ShouwangH/garage-demo/internal/models"
	"github.com/ShouwangH/garage-demo/internal/repository"
)

// Name length bounds for saved searches, applied to the trimmed value.
const (
	MinSearchNameLength = 3
	MaxSearchNameLength = 50
)

// emailPattern accepts the local@domain.tld shape; anything stricter is a
// losing battle and anything looser accepts garbage.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Service-level errors
var (
	ErrInvalidName      = errors.New("search name must be between 3 and 50 characters")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrInvalidFrequency = errors.New("frequency must be instant, daily, or weekly")
	ErrDuplicateSearch  = errors.New("a saved search with these filters already exists")
)

// SavedSearchService is the saved-search registry: CRUD over saved-search
// records, duplicate detection, status lifecycle, and live match-count
// enrichment.
type SavedSearchService interface {
	// Create validates the input, rejects duplicates of an existing filter
	// set, and stores a new active search with a fresh id and timestamp.
	Create(ctx context.Context, input models.SavedSearchInput) (*models.SavedSearch, error)

	// Update merges the provided fields into an existing search. Returns
	// nil, nil when the id is unknown.
	Update(ctx context.Context, id string, update models.SavedSearchUpdate) (*models.SavedSearch, error)

	// Delete removes a search by id. Unknown ids are a silent no-op.
	Delete(ctx context.Context, id string)

	// ToggleStatus flips active to paused and back. Unknown ids are a
	// silent no-op.
	ToggleStatus(ctx context.Context, id string)

	// ListWithCounts returns every search enriched with its live match
	// count against the current listing collection. Counts are computed on
	// every read, never stored.
	ListWithCounts(ctx context.Context) []models.SavedSearchWithCount

	// GetWithCount returns one enriched search, or nil when unknown.
	GetWithCount(ctx context.Context, id string) *models.SavedSearchWithCount

	// FindSimilar returns the first search whose filter set is field-wise
	// equal to the candidate, or nil.
	FindSimilar(ctx context.Context, filters models.SearchFilters) *models.SavedSearch

	// MatchingActive returns the active searches whose filters match the
	// given listing. Paused searches never notify.
	MatchingActive(ctx context.Context, listing models.Listing) []models.SavedSearch

	// Counts returns the status partition summary.
	Counts(ctx context.Context) models.SearchCounts
}

type savedSearchService struct {
	searches repository.SavedSearchRepository
	listings repository.ListingRepository
	log      *logger.Logger
}

// NewSavedSearchService creates a new SavedSearchService.
func NewSavedSearchService(searches repository.SavedSearchRepository, listings repository.ListingRepository, log *logger.Logger) SavedSearchService {
	return &savedSearchService{
		searches: searches,
		listings: listings,
		log:      log,
	}
}

func (s *savedSearchService) Create(ctx context.Context, input models.SavedSearchInput) (*models.SavedSearch, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)

	if err := validateName(input.Name); err != nil {
		return nil, err
	}
	if err := validateEmail(input.Email); err != nil {
		return nil, err
	}
	if err := validateFrequency(input.Frequency); err != nil {
		return nil, err
	}

	if existing := s.FindSimilar(ctx, input.Filters); existing != nil {
		s.log.Warn("Rejected duplicate saved search", map[string]interface{}{
			"existing_id":   existing.ID,
			"existing_name": existing.Name,
		})
		return nil, fmt.Errorf("%w: %q", ErrDuplicateSearch, existing.Name)
	}

	search := models.SavedSearch{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Email:     input.Email,
		Frequency: input.Frequency,
		Status:    models.StatusActive,
		CreatedAt: time.Now().UTC(),
		Filters:   input.Filters,
	}

	current := s.searches.List(ctx)
	s.searches.Save(ctx, append([]models.SavedSearch{search}, current...))

	s.log.Info("Saved search created", map[string]interface{}{
		"search_id": search.ID,
		"name":      search.Name,
		"frequency": string(search.Frequency),
	})

	return &search, nil
}

func (s *savedSearchService) Update(ctx context.Context, id string, update models.SavedSearchUpdate) (*models.SavedSearch, error) {
	if update.Name != nil {
		trimmed := strings.TrimSpace(*update.Name)
		if err := validateName(trimmed); err != nil {
			return nil, err
		}
		update.Name = &trimmed
	}
	if update.Email != nil {
		trimmed := strings.TrimSpace(*update.Email)
		if err := validateEmail(trimmed); err != nil {
			return nil, err
		}
		update.Email = &trimmed
	}
	if update.Frequency != nil {
		if err := validateFrequency(*update.Frequency); err != nil {
			return nil, err
		}
	}

	current := s.searches.List(ctx)

	var updated *models.SavedSearch
	for i := range current {
		if current[i].ID != id {
			continue
		}
		if update.Name != nil {
			current[i].Name = *update.Name
		}
		if update.Email != nil {
			current[i].Email = *update.Email
		}
		if update.Frequency != nil {
			current[i].Frequency = *update.Frequency
		}
		if update.Filters != nil {
			current[i].Filters = *update.Filters
		}
		updated = &current[i]
		break
	}

	if updated == nil {
		return nil, nil
	}

	s.searches.Save(ctx, current)
	s.log.Info("Saved search updated", map[string]interface{}{"search_id": id})

	result := *updated
	return &result, nil
}

func (s *savedSearchService) Delete(ctx context.Context, id string) {
	current := s.searches.List(ctx)

	updated := make([]models.SavedSearch, 0, len(current))
	removed := false
	for _, search := range current {
		if search.ID == id {
			removed = true
			continue
		}
		updated = append(updated, search)
	}

	if !removed {
		return
	}

	s.searches.Save(ctx, updated)
	s.log.Info("Saved search deleted", map[string]interface{}{"search_id": id})
}

func (s *savedSearchService) ToggleStatus(ctx context.Context, id string) {
	current := s.searches.List(ctx)

	toggled := false
	for i := range current {
		if current[i].ID != id {
			continue
		}
		if current[i].Status == models.StatusActive {
			current[i].Status = models.StatusPaused
		} else {
			current[i].Status = models.StatusActive
		}
		toggled = true
		s.log.Info("Saved search status toggled", map[string]interface{}{
			"search_id": id,
			"status":    string(current[i].Status),
		})
		break
	}

	if !toggled {
		return
	}

	s.searches.Save(ctx, current)
}

func (s *savedSearchService) ListWithCounts(ctx context.Context) []models.SavedSearchWithCount {
	searches := s.searches.List(ctx)
	listings := s.listings.List(ctx)

	enriched := make([]models.SavedSearchWithCount, 0, len(searches))
	for _, search := range searches {
		enriched = append(enriched, models.SavedSearchWithCount{
			SavedSearch: search,
			MatchCount:  matching.CountMatches(listings, search.Filters),
		})
	}
	return enriched
}

func (s *savedSearchService) GetWithCount(ctx context.Context, id string) *models.SavedSearchWithCount {
	for _, search := range s.searches.List(ctx) {
		if search.ID == id {
			return &models.SavedSearchWithCount{
				SavedSearch: search,
				MatchCount:  matching.CountMatches(s.listings.List(ctx), search.Filters),
			}
		}
	}
	return nil
}

func (s *savedSearchService) FindSimilar(ctx context.Context, filters models.SearchFilters) *models.SavedSearch {
	for _, search := range s.searches.List(ctx) {
		if search.Filters.Equal(filters) {
			result := search
			return &result
		}
	}
	return nil
}

func (s *savedSearchService) MatchingActive(ctx context.Context, listing models.Listing) []models.SavedSearch {
	var matched []models.SavedSearch
	for _, search := range s.searches.List(ctx) {
		if search.Status != models.StatusActive {
			continue
		}
		if matching.Matches(listing, search.Filters) {
			matched = append(matched, search)
		}
	}
	return matched
}

func (s *savedSearchService) Counts(ctx context.Context) models.SearchCounts {
	counts := models.SearchCounts{}
	for _, search := range s.searches.List(ctx) {
		switch search.Status {
		case models.StatusActive:
			counts.Active++
		case models.StatusPaused:
			counts.Paused++
		}
		counts.Total++
	}
	return counts
}

func validateName(name string) error {
	if len(name) < MinSearchNameLength || len(name) > MaxSearchNameLength {
		return fmt.Errorf("%w: got %d characters", ErrInvalidName, len(name))
	}
	return nil
}

func validateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	return nil
}

func validateFrequency(frequency models.NotificationFrequency) error {
	switch frequency {
	case models.FrequencyInstant, models.FrequencyDaily, models.FrequencyWeekly:
		return nil
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidFrequency, frequency)
	}
}
