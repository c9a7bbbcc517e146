package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ShouwangH/garage-demo/internal/logger"
	"github.com/ShouwangH/garage-demo/internal/models"
)

// MockListingRepository is a mock implementation of ListingRepository for testing
type MockListingRepository struct {
	mock.Mock
}

func (m *MockListingRepository) List(ctx context.Context) []models.Listing {
	args := m.Called(ctx)
	listings, _ := args.Get(0).([]models.Listing)
	return listings
}

func (m *MockListingRepository) Save(ctx context.Context, listings []models.Listing) {
	m.Called(ctx, listings)
}

func previewSearch() models.SavedSearch {
	return models.SavedSearch{
		ID:        "search-1",
		Name:      "Texas Pumpers",
		Email:     "chief@example.com",
		Frequency: models.FrequencyInstant,
		Status:    models.StatusActive,
		Filters: models.SearchFilters{
			Category: models.Ptr(models.CategoryFireApparatus),
			State:    models.Ptr("TX"),
		},
	}
}

func TestBuildPreview_SubjectAndRecipient(t *testing.T) {
	mockRepo := new(MockListingRepository)
	log := logger.New("test")
	service := NewNotificationService(mockRepo, log)
	ctx := context.Background()

	mockRepo.On("List", ctx).Return([]models.Listing{
		{ID: "l1", Title: "2015 Pierce Arrow XT", Price: 285000, Mileage: 42000,
			Category: models.CategoryFireApparatus, State: "TX", City: "Houston"},
	})

	preview := service.BuildPreview(ctx, previewSearch())

	assert.Equal(t, "chief@example.com", preview.To)
	assert.Equal(t, "Garage Alerts <alerts@shopgarage.com>", preview.From)
	assert.Equal(t, `1 new listing matches "Texas Pumpers"`, preview.Subject)
	assert.Equal(t, 1, preview.TotalMatches)
	mockRepo.AssertExpectations(t)
}

func TestBuildPreview_TruncatesToThreeListings(t *testing.T) {
	mockRepo := new(MockListingRepository)
	log := logger.New("test")
	service := NewNotificationService(mockRepo, log)
	ctx := context.Background()

	listings := make([]models.Listing, 5)
	for i := range listings {
		listings[i] = models.Listing{
			ID: string(rune('a' + i)), Title: "Pumper", Price: 100000 + i,
			Category: models.CategoryFireApparatus, State: "TX", City: "Dallas",
		}
	}
	mockRepo.On("List", ctx).Return(listings)

	preview := service.BuildPreview(ctx, previewSearch())

	assert.Equal(t, 5, preview.TotalMatches)
	assert.Len(t, preview.Listings, 3)
	assert.Contains(t, preview.Subject, "5 new listings match")
}

func TestBuildPreview_FormattedFieldsAndBrowseURL(t *testing.T) {
	mockRepo := new(MockListingRepository)
	log := logger.New("test")
	service := NewNotificationService(mockRepo, log)
	ctx := context.Background()

	mockRepo.On("List", ctx).Return([]models.Listing{
		{ID: "l1", Title: "2015 Pierce Arrow XT", Price: 285000, Mileage: 42000,
			Category: models.CategoryFireApparatus, State: "TX", City: "Houston"},
	})

	preview := service.BuildPreview(ctx, previewSearch())

	require.Len(t, preview.Listings, 1)
	assert.Equal(t, "$285,000", preview.Listings[0].Price)
	assert.Equal(t, "42,000 mi", preview.Listings[0].Mileage)
	assert.Equal(t, "Houston, TX", preview.Listings[0].Location)

	assert.Contains(t, preview.BrowseURL, "category=Fire+Apparatus")
	assert.Contains(t, preview.BrowseURL, "state=TX")
	assert.Equal(t, "Fire Apparatus · Texas", preview.FilterSummary)
}

func TestBuildPreview_NoMatches(t *testing.T) {
	mockRepo := new(MockListingRepository)
	log := logger.New("test")
	service := NewNotificationService(mockRepo, log)
	ctx := context.Background()

	mockRepo.On("List", ctx).Return([]models.Listing{})

	preview := service.BuildPreview(ctx, previewSearch())

	assert.Equal(t, 0, preview.TotalMatches)
	assert.Empty(t, preview.Listings)
	assert.Contains(t, preview.Subject, "0 new listings match")
}

func TestFormatFilterSummary(t *testing.T) {
	tests := []struct {
		name     string
		filters  models.SearchFilters
		expected string
	}{
		{"empty", models.SearchFilters{}, "All listings"},
		{
			"price range",
			models.SearchFilters{PriceMin: models.Ptr(85000), PriceMax: models.Ptr(150000)},
			"$85k-$150k",
		},
		{
			"price min only",
			models.SearchFilters{PriceMin: models.Ptr(50000)},
			"$50k+",
		},
		{
			"price max only",
			models.SearchFilters{PriceMax: models.Ptr(2500000)},
			"Under $2.5M",
		},
		{
			"year max only",
			models.SearchFilters{YearMax: models.Ptr(2010)},
			"Pre-2010",
		},
		{
			"pump and tank",
			models.SearchFilters{PumpSizeMin: models.Ptr(1000), TankSizeMin: models.Ptr(2000)},
			"1,000+ GPM · 2,000+ gal",
		},
		{
			"two manufacturers listed",
			models.SearchFilters{Manufacturers: []string{"Pierce", "KME"}},
			"Pierce, KME",
		},
		{
			"many manufacturers counted",
			models.SearchFilters{Manufacturers: []string{"Pierce", "KME", "E-One"}},
			"3 manufacturers",
		},
		{
			"combined",
			models.SearchFilters{
				Category:    models.Ptr(models.CategoryTankers),
				State:       models.Ptr("TX"),
				ListingType: models.Ptr(models.FilterAuction),
			},
			"Tankers · Texas · Auction",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatFilterSummary(tt.filters))
		})
	}
}
