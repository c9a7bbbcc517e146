// Package matching implements the filter predicate and matching engine for
// listings: a conjunctive test of independent filter clauses, collection
// filtering, match counting, and sort orderings.
package matching

import (
	"sort"

	"github.com/ShouwangH/garage-demo/internal/models"
)

// Matches reports whether a single listing satisfies every clause of the
// given filter set. Absent clauses pass; the test short-circuits on the
// first failing clause. Pure and total: no filter combination errors.
func Matches(listing models.Listing, filters models.SearchFilters) bool {
	if filters.Category != nil && listing.Category != *filters.Category {
		return false
	}

	// "all" behaves the same as no listing type constraint.
	if filters.ListingType != nil && *filters.ListingType != models.FilterAll &&
		string(listing.ListingType) != string(*filters.ListingType) {
		return false
	}

	if filters.PriceMin != nil && listing.Price < *filters.PriceMin {
		return false
	}
	if filters.PriceMax != nil && listing.Price > *filters.PriceMax {
		return false
	}

	if filters.YearMin != nil && listing.Year < *filters.YearMin {
		return false
	}
	if filters.YearMax != nil && listing.Year > *filters.YearMax {
		return false
	}

	if filters.MileageMin != nil && listing.Mileage < *filters.MileageMin {
		return false
	}
	if filters.MileageMax != nil && listing.Mileage > *filters.MileageMax {
		return false
	}

	// Manufacturer set is an OR within the clause: the listing must match
	// any one of the selected manufacturers.
	if len(filters.Manufacturers) > 0 && !contains(filters.Manufacturers, listing.Manufacturer) {
		return false
	}

	// A nil pump size is "not applicable" and disqualifies the listing when
	// a minimum is active. Same for tank size.
	if filters.PumpSizeMin != nil {
		if listing.PumpGPM == nil || *listing.PumpGPM < *filters.PumpSizeMin {
			return false
		}
	}
	if filters.TankSizeMin != nil {
		if listing.TankGallons == nil || *listing.TankGallons < *filters.TankSizeMin {
			return false
		}
	}

	if filters.State != nil && listing.State != *filters.State {
		return false
	}

	return true
}

// MatchingListings returns the listings satisfying the filter set, in their
// original relative order.
func MatchingListings(listings []models.Listing, filters models.SearchFilters) []models.Listing {
	matched := make([]models.Listing, 0, len(listings))
	for _, listing := range listings {
		if Matches(listing, filters) {
			matched = append(matched, listing)
		}
	}
	return matched
}

// CountMatches returns how many listings satisfy the filter set. Implemented
// as a counting fold so callers that only need the number never materialize
// the matched slice.
func CountMatches(listings []models.Listing, filters models.SearchFilters) int {
	count := 0
	for _, listing := range listings {
		if Matches(listing, filters) {
			count++
		}
	}
	return count
}

// SortListings returns a new slice ordered by the given sort option. The
// input is never mutated, and the sort is stable so ties keep their original
// relative order. Unknown options fall back to most-recent-first, which is
// also what "relevance" currently means: no scoring model exists yet, so
// relevance stays an alias for recent.
func SortListings(listings []models.Listing, sortBy models.SortOption) []models.Listing {
	sorted := append([]models.Listing(nil), listings...)

	switch sortBy {
	case models.SortPriceAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price < sorted[j].Price
		})
	case models.SortPriceDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price > sorted[j].Price
		})
	case models.SortRecent, models.SortRelevance:
		fallthrough
	default:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		})
	}

	return sorted
}

// HasActiveFilters reports whether at least one clause constrains anything.
// An explicit listing type of "all" does not count as active.
func HasActiveFilters(filters models.SearchFilters) bool {
	return filters.Category != nil ||
		(filters.ListingType != nil && *filters.ListingType != models.FilterAll) ||
		filters.PriceMin != nil ||
		filters.PriceMax != nil ||
		filters.YearMin != nil ||
		filters.YearMax != nil ||
		filters.MileageMin != nil ||
		filters.MileageMax != nil ||
		len(filters.Manufacturers) > 0 ||
		filters.PumpSizeMin != nil ||
		filters.TankSizeMin != nil ||
		filters.State != nil
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
