package models

import "time"

// NotificationFrequency controls how often a saved search would email.
type NotificationFrequency string

const (
	FrequencyInstant NotificationFrequency = "instant"
	FrequencyDaily   NotificationFrequency = "daily"
	FrequencyWeekly  NotificationFrequency = "weekly"
)

// SearchStatus is the lifecycle state of a saved search.
type SearchStatus string

const (
	StatusActive SearchStatus = "active"
	StatusPaused SearchStatus = "paused"
)

// SavedSearch is a persisted filter set plus notification preferences.
// Filters are captured by value at save time; later listing changes never
// alter the filter set, only the computed match count.
type SavedSearch struct {
	ID        string                `json:"id"`
	Name      string                `json:"name"`
	Email     string                `json:"email"`
	Frequency NotificationFrequency `json:"frequency"`
	Status    SearchStatus          `json:"status"`
	CreatedAt time.Time             `json:"createdAt"`
	Filters   SearchFilters         `json:"filters"`
}

// SavedSearchInput carries the caller-supplied fields for create/update.
// Pointer fields on update mean "leave unchanged".
type SavedSearchInput struct {
	Name      string                `json:"name"`
	Email     string                `json:"email"`
	Frequency NotificationFrequency `json:"frequency"`
	Filters   SearchFilters         `json:"filters"`
}

// SavedSearchUpdate is a partial update; nil fields are left unchanged.
type SavedSearchUpdate struct {
	Name      *string                `json:"name,omitempty"`
	Email     *string                `json:"email,omitempty"`
	Frequency *NotificationFrequency `json:"frequency,omitempty"`
	Filters   *SearchFilters         `json:"filters,omitempty"`
}

// SavedSearchWithCount is a read-time view of a saved search enriched with
// its live match count. Never persisted.
type SavedSearchWithCount struct {
	SavedSearch
	MatchCount int `json:"matchCount"`
}

// SearchCounts is the status partition summary for the registry.
type SearchCounts struct {
	Active int `json:"active"`
	Paused int `json:"paused"`
	Total  int `json:"total"`
}
