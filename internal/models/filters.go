package models

import "sort"

// ListingTypeFilter is the tri-state listing type constraint. "all" and an
// absent filter are equivalent for matching purposes.
type ListingTypeFilter string

const (
	FilterAll     ListingTypeFilter = "all"
	FilterBuyNow  ListingTypeFilter = "buy_now"
	FilterAuction ListingTypeFilter = "auction"
)

// SearchFilters is a sparse set of listing constraints. Every field is
// optional; a nil field means "no constraint on this dimension", which is
// not the same as a zero value. Each min/max pair is independently optional
// and independently bounded.
type SearchFilters struct {
	Category      *Category          `json:"category,omitempty"`
	ListingType   *ListingTypeFilter `json:"listingType,omitempty"`
	PriceMin      *int               `json:"priceMin,omitempty"`
	PriceMax      *int               `json:"priceMax,omitempty"`
	YearMin       *int               `json:"yearMin,omitempty"`
	YearMax       *int               `json:"yearMax,omitempty"`
	MileageMin    *int               `json:"mileageMin,omitempty"`
	MileageMax    *int               `json:"mileageMax,omitempty"`
	Manufacturers []string           `json:"manufacturers,omitempty"`
	PumpSizeMin   *int               `json:"pumpSizeMin,omitempty"`
	TankSizeMin   *int               `json:"tankSizeMin,omitempty"`
	State         *string            `json:"state,omitempty"`
}

// Equal reports whether two filter sets are field-wise equal. Manufacturer
// lists are compared as order-independent sets; a nil list and an empty list
// both mean unconstrained. This is the equality used for duplicate detection
// of saved searches.
func (f SearchFilters) Equal(other SearchFilters) bool {
	return equalPtr((*string)(f.Category), (*string)(other.Category)) &&
		equalPtr((*string)(f.ListingType), (*string)(other.ListingType)) &&
		equalPtr(f.PriceMin, other.PriceMin) &&
		equalPtr(f.PriceMax, other.PriceMax) &&
		equalPtr(f.YearMin, other.YearMin) &&
		equalPtr(f.YearMax, other.YearMax) &&
		equalPtr(f.MileageMin, other.MileageMin) &&
		equalPtr(f.MileageMax, other.MileageMax) &&
		equalPtr(f.PumpSizeMin, other.PumpSizeMin) &&
		equalPtr(f.TankSizeMin, other.TankSizeMin) &&
		equalPtr(f.State, other.State) &&
		equalManufacturerSets(f.Manufacturers, other.Manufacturers)
}

// IsZero reports whether no field carries a constraint value. Note that an
// explicit listingType of "all" is a value here even though it matches
// everything; use matching.HasActiveFilters for the effective check.
func (f SearchFilters) IsZero() bool {
	return f.Category == nil &&
		f.ListingType == nil &&
		f.PriceMin == nil &&
		f.PriceMax == nil &&
		f.YearMin == nil &&
		f.YearMax == nil &&
		f.MileageMin == nil &&
		f.MileageMax == nil &&
		len(f.Manufacturers) == 0 &&
		f.PumpSizeMin == nil &&
		f.TankSizeMin == nil &&
		f.State == nil
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalManufacturerSets(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as := append([]string(nil), a...)
	bs := append([]string(nil), b...)
	sort.Strings(as)
	sort.Strings(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

// Ptr returns a pointer to v. Convenience for building sparse filter sets.
func Ptr[T any](v T) *T {
	return &v
}
