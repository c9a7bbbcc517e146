package models

import (
	"time"
)

// Category is the top-level vehicle category for a listing.
type Category string

const (
	CategoryFireApparatus Category = "Fire Apparatus"
	CategoryAmbulances    Category = "Ambulances"
	CategoryRescueTrucks  Category = "Rescue Trucks"
	CategoryTankers       Category = "Tankers"
)

// VehicleType is the subtype within a category.
type VehicleType string

const (
	VehiclePumper     VehicleType = "Pumper"
	VehicleTanker     VehicleType = "Tanker"
	VehicleAerial     VehicleType = "Aerial"
	VehicleRescue     VehicleType = "Rescue"
	VehicleAmbulance  VehicleType = "Ambulance"
	VehicleBrushTruck VehicleType = "Brush Truck"
	VehicleLadder     VehicleType = "Ladder"
)

// ListingType distinguishes fixed-price listings from auctions.
type ListingType string

const (
	ListingBuyNow  ListingType = "buy_now"
	ListingAuction ListingType = "auction"
)

// SortOption selects the ordering of a listing result set.
type SortOption string

const (
	SortRelevance SortOption = "relevance"
	SortPriceAsc  SortOption = "price_asc"
	SortPriceDesc SortOption = "price_desc"
	SortRecent    SortOption = "recent"
)

// Listing represents a single fire apparatus for sale.
// Listings are immutable once created: they are seeded or added, and only
// ever removed, never edited in place.
//
// PumpGPM and TankGallons use pointers to distinguish "not applicable"
// (e.g. an ambulance has no pump) from an actual zero value.
type Listing struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Year         int         `json:"year"`
	Manufacturer string      `json:"manufacturer"`
	Category     Category    `json:"category"`
	Type         VehicleType `json:"type"`
	Price        int         `json:"price"`
	Mileage      int         `json:"mileage"`
	PumpGPM      *int        `json:"pumpGPM"`
	TankGallons  *int        `json:"tankGallons"`
	City         string      `json:"city"`
	State        string      `json:"state"`
	ImageURL     string      `json:"imageUrl"`
	ListingType  ListingType `json:"listingType"`
	CreatedAt    time.Time   `json:"createdAt"`
}
