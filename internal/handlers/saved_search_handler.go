package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apierrors "github.com/ShouwangH/garage-demo/internal/errors"
	"github.com/ShouwangH/garage-demo/internal/middleware"
	"github.com/ShouwangH/garage-demo/internal/models"
	"github.com/ShouwangH/garage-demo/internal/services"
)

// SavedSearchHandler handles saved-search HTTP requests.
type SavedSearchHandler struct {
	searches      services.SavedSearchService
	notifications services.NotificationService
}

// NewSavedSearchHandler creates a new SavedSearchHandler instance.
func NewSavedSearchHandler(searches services.SavedSearchService, notifications services.NotificationService) *SavedSearchHandler {
	return &SavedSearchHandler{
		searches:      searches,
		notifications: notifications,
	}
}

// CreateSavedSearchRequest represents the body for creating a saved search.
// Name and email bounds are enforced again in the service; the binding tags
// only catch structurally missing fields.
type CreateSavedSearchRequest struct {
	Name      string               `json:"name" binding:"required"`
	Email     string               `json:"email" binding:"required"`
	Frequency string               `json:"frequency" binding:"required,oneof=instant daily weekly"`
	Filters   models.SearchFilters `json:"filters"`
}

// SavedSearchListResponse represents the response for the list endpoint.
type SavedSearchListResponse struct {
	Searches []models.SavedSearchWithCount `json:"searches"`
	Counts   models.SearchCounts           `json:"counts"`
}

// List handles GET /api/v1/saved-searches endpoint.
// Match counts are computed against the live listing collection on every
// read.
func (h *SavedSearchHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	c.JSON(http.StatusOK, SavedSearchListResponse{
		Searches: h.searches.ListWithCounts(ctx),
		Counts:   h.searches.Counts(ctx),
	})
}

// Create handles POST /api/v1/saved-searches endpoint.
func (h *SavedSearchHandler) Create(c *gin.Context) {
	var req CreateSavedSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return
		}
		apierrors.BadRequest(c, "Invalid request body", nil)
		return
	}

	search, err := h.searches.Create(c.Request.Context(), models.SavedSearchInput{
		Name:      req.Name,
		Email:     req.Email,
		Frequency: models.NotificationFrequency(req.Frequency),
		Filters:   req.Filters,
	})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, search)
}

// Update handles PUT /api/v1/saved-searches/:id endpoint.
// The body is a partial update; absent fields are left unchanged.
func (h *SavedSearchHandler) Update(c *gin.Context) {
	var update models.SavedSearchUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		apierrors.BadRequest(c, "Invalid request body", nil)
		return
	}

	search, err := h.searches.Update(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if search == nil {
		apierrors.NotFound(c, "Saved search not found")
		return
	}

	c.JSON(http.StatusOK, search)
}

// Delete handles DELETE /api/v1/saved-searches/:id endpoint.
// Deleting an unknown id succeeds.
func (h *SavedSearchHandler) Delete(c *gin.Context) {
	h.searches.Delete(c.Request.Context(), c.Param("id"))
	c.Status(http.StatusNoContent)
}

// ToggleStatus handles POST /api/v1/saved-searches/:id/toggle endpoint.
// Flips active to paused and back. Toggling an unknown id is a no-op and
// responds 204.
func (h *SavedSearchHandler) ToggleStatus(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	h.searches.ToggleStatus(ctx, id)

	search := h.searches.GetWithCount(ctx, id)
	if search == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, search)
}

// EmailPreview handles GET /api/v1/saved-searches/:id/email-preview endpoint.
// Builds the notification email this search would send right now. Nothing is
// delivered.
func (h *SavedSearchHandler) EmailPreview(c *gin.Context) {
	ctx := c.Request.Context()

	search := h.searches.GetWithCount(ctx, c.Param("id"))
	if search == nil {
		apierrors.NotFound(c, "Saved search not found")
		return
	}

	if log := middleware.GetLogger(c); log != nil {
		log.Info("Building email preview", map[string]interface{}{
			"search_id": search.ID,
		})
	}

	c.JSON(http.StatusOK, h.notifications.BuildPreview(ctx, search.SavedSearch))
}

// writeServiceError maps saved-search service errors to HTTP responses.
func (h *SavedSearchHandler) writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrDuplicateSearch):
		apierrors.Conflict(c, err.Error(), nil)
	case errors.Is(err, services.ErrInvalidName),
		errors.Is(err, services.ErrInvalidEmail),
		errors.Is(err, services.ErrInvalidFrequency):
		apierrors.BadRequest(c, err.Error(), nil)
	default:
		apierrors.InternalServerError(c, "Failed to process saved search", err)
	}
}
