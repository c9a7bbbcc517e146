package services

import (
	"context"
	"fmt"

	"github.com/ShouwangH/garage-demo/internal/filterstate"
	"github.com/ShouwangH/garage-demo/internal/logger"
	"github.com/ShouwangH/garage-demo/internal/matching"
	"github.com/ShouwangH/garage-demo/internal/models"
	"github.com/ShouwangH/garage-demo/internal/repository"
)

// How many listings an email preview shows before cutting off.
const previewListingLimit = 3

// EmailPreview is the simulated notification email for a saved search.
// Nothing is ever delivered; this is the payload a real sender would render.
type EmailPreview struct {
	From          string         `json:"from"`
	To            string         `json:"to"`
	Subject       string         `json:"subject"`
	Intro         string         `json:"intro"`
	FilterSummary string         `json:"filterSummary"`
	Listings      []EmailListing `json:"listings"`
	TotalMatches  int            `json:"totalMatches"`
	BrowseURL     string         `json:"browseUrl"`
}

// EmailListing is one listing row in the email body.
type EmailListing struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Price    string `json:"price"`
	Mileage  string `json:"mileage"`
	Location string `json:"location"`
}

// NotificationService builds simulated email notifications for saved
// searches.
type NotificationService interface {
	// BuildPreview assembles the notification email for a saved search
	// against the current listing collection.
	BuildPreview(ctx context.Context, search models.SavedSearch) EmailPreview
}

type notificationService struct {
	listings repository.ListingRepository
	log      *logger.Logger
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(listings repository.ListingRepository, log *logger.Logger) NotificationService {
	return &notificationService{listings: listings, log: log}
}

func (s *notificationService) BuildPreview(ctx context.Context, search models.SavedSearch) EmailPreview {
	matched := matching.MatchingListings(s.listings.List(ctx), search.Filters)

	noun := "listings match"
	if len(matched) == 1 {
		noun = "listing matches"
	}

	preview := EmailPreview{
		From:    "Garage Alerts <alerts@shopgarage.com>",
		To:      search.Email,
		Subject: fmt.Sprintf("%d new %s %q", len(matched), noun, search.Name),
		Intro: fmt.Sprintf("We found %d %s matching your saved search %q.",
			len(matched), pluralize(len(matched), "listing"), search.Name),
		FilterSummary: FormatFilterSummary(search.Filters),
		TotalMatches:  len(matched),
		BrowseURL:     browseURL(search.Filters),
	}

	limit := previewListingLimit
	if len(matched) < limit {
		limit = len(matched)
	}
	preview.Listings = make([]EmailListing, 0, limit)
	for _, listing := range matched[:limit] {
		preview.Listings = append(preview.Listings, EmailListing{
			ID:       listing.ID,
			Title:    listing.Title,
			Price:    formatPrice(listing.Price),
			Mileage:  formatNumber(listing.Mileage) + " mi",
			Location: listing.City + ", " + listing.State,
		})
	}

	s.log.Debug("Built email preview", map[string]interface{}{
		"search_id": search.ID,
		"matches":   len(matched),
	})

	return preview
}

// browseURL builds the shareable browse link carrying the search's filters.
func browseURL(filters models.SearchFilters) string {
	query := filterstate.Encode(filters).Encode()
	if query == "" {
		return "/"
	}
	return "/?" + query
}

func pluralize(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
