package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apierrors "github.com/ShouwangH/garage-demo/internal/errors"
	"github.com/ShouwangH/garage-demo/internal/filterstate"
	"github.com/ShouwangH/garage-demo/internal/matching"
	"github.com/ShouwangH/garage-demo/internal/middleware"
	"github.com/ShouwangH/garage-demo/internal/models"
	"github.com/ShouwangH/garage-demo/internal/services"
)

// ListingHandler handles listing-related HTTP requests.
type ListingHandler struct {
	listings services.ListingService
	searches services.SavedSearchService
}

// NewListingHandler creates a new ListingHandler instance.
func NewListingHandler(listings services.ListingService, searches services.SavedSearchService) *ListingHandler {
	return &ListingHandler{
		listings: listings,
		searches: searches,
	}
}

// CreateListingRequest represents the body for creating a listing.
type CreateListingRequest struct {
	Title        string `json:"title" binding:"required"`
	Year         int    `json:"year" binding:"required,min=1900,max=2100"`
	Manufacturer string `json:"manufacturer" binding:"required"`
	Category     string `json:"category" binding:"required,oneof='Fire Apparatus' 'Ambulances' 'Rescue Trucks' 'Tankers'"`
	Type         string `json:"type" binding:"required"`
	Price        int    `json:"price" binding:"required,min=0"`
	Mileage      int    `json:"mileage" binding:"min=0"`
	PumpGPM      *int   `json:"pumpGPM" binding:"omitempty,min=0"`
	TankGallons  *int   `json:"tankGallons" binding:"omitempty,min=0"`
	City         string `json:"city" binding:"required"`
	State        string `json:"state" binding:"required,len=2"`
	ImageURL     string `json:"imageUrl"`
	ListingType  string `json:"listingType" binding:"required,oneof=buy_now auction"`
}

// ListingsResponse represents the response for the listing browse endpoint.
type ListingsResponse struct {
	Listings          []models.Listing `json:"listings"`
	Count             int              `json:"count"`
	Sort              string           `json:"sort"`
	ActiveFilterCount int              `json:"activeFilterCount"`
	HasActiveFilters  bool             `json:"hasActiveFilters"`
}

// SimulateResponse represents the response for the simulate endpoint. It
// carries the new listing plus the active saved searches it matched, so the
// demo can show which alerts would have fired.
type SimulateResponse struct {
	Listing  models.Listing       `json:"listing"`
	Notified []NotifiedSearchData `json:"notified"`
}

// NotifiedSearchData identifies a saved search that matched a new listing.
type NotifiedSearchData struct {
	SearchID  string `json:"searchId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Frequency string `json:"frequency"`
}

// List handles GET /api/v1/listings endpoint.
// Filters come from the query string; unknown parameters and unparseable
// values are ignored rather than rejected, so stale shared links still load.
func (h *ListingHandler) List(c *gin.Context) {
	query := c.Request.URL.Query()
	filters := filterstate.Decode(query)

	sortBy := models.SortOption(c.DefaultQuery("sort", string(models.SortRelevance)))
	switch sortBy {
	case models.SortRelevance, models.SortPriceAsc, models.SortPriceDesc, models.SortRecent:
	default:
		sortBy = models.SortRelevance
	}

	results := h.listings.List(c.Request.Context(), filters, sortBy)

	c.JSON(http.StatusOK, ListingsResponse{
		Listings:          results,
		Count:             len(results),
		Sort:              string(sortBy),
		ActiveFilterCount: filterstate.ActiveFilterCount(filters),
		HasActiveFilters:  matching.HasActiveFilters(filters),
	})
}

// Create handles POST /api/v1/listings endpoint.
func (h *ListingHandler) Create(c *gin.Context) {
	var req CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return
		}
		apierrors.BadRequest(c, "Invalid request body", nil)
		return
	}

	listing := h.listings.Add(c.Request.Context(), models.Listing{
		Title:        req.Title,
		Year:         req.Year,
		Manufacturer: req.Manufacturer,
		Category:     models.Category(req.Category),
		Type:         models.VehicleType(req.Type),
		Price:        req.Price,
		Mileage:      req.Mileage,
		PumpGPM:      req.PumpGPM,
		TankGallons:  req.TankGallons,
		City:         req.City,
		State:        req.State,
		ImageURL:     req.ImageURL,
		ListingType:  models.ListingType(req.ListingType),
	})

	c.JSON(http.StatusCreated, listing)
}

// Delete handles DELETE /api/v1/listings/:id endpoint.
// Deleting an unknown id succeeds; the end state is the same either way.
func (h *ListingHandler) Delete(c *gin.Context) {
	h.listings.Remove(c.Request.Context(), c.Param("id"))
	c.Status(http.StatusNoContent)
}

// Simulate handles POST /api/v1/listings/simulate endpoint.
// It adds the next demo listing and reports which active saved searches
// matched it.
func (h *ListingHandler) Simulate(c *gin.Context) {
	log := middleware.GetLogger(c)

	listing := h.listings.Simulate(c.Request.Context())
	matched := h.searches.MatchingActive(c.Request.Context(), listing)

	notified := make([]NotifiedSearchData, 0, len(matched))
	for _, search := range matched {
		notified = append(notified, NotifiedSearchData{
			SearchID:  search.ID,
			Name:      search.Name,
			Email:     search.Email,
			Frequency: string(search.Frequency),
		})
	}

	if log != nil {
		log.Info("Simulated new listing", map[string]interface{}{
			"listing_id": listing.ID,
			"title":      listing.Title,
			"notified":   len(notified),
		})
	}

	c.JSON(http.StatusCreated, SimulateResponse{
		Listing:  listing,
		Notified: notified,
	})
}

// Reset handles POST /api/v1/demo/reset endpoint.
// Restores the seeded listings and saved searches.
func (h *ListingHandler) Reset(c *gin.Context) {
	if err := h.listings.Reset(c.Request.Context()); err != nil {
		apierrors.InternalServerError(c, "Failed to reset demo data", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "reset"})
}
