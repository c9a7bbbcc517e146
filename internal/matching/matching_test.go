package matching

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShouwangH/garage-demo/internal/models"
)

func testListing(overrides func(*models.Listing)) models.Listing {
	listing := models.Listing{
		ID:           "listing-1",
		Title:        "2015 Pierce Arrow XT Pumper",
		Year:         2015,
		Manufacturer: "Pierce",
		Category:     models.CategoryFireApparatus,
		Type:         models.VehiclePumper,
		Price:        100000,
		Mileage:      42000,
		PumpGPM:      models.Ptr(1500),
		TankGallons:  models.Ptr(1000),
		City:         "Houston",
		State:        "TX",
		ListingType:  models.ListingBuyNow,
		CreatedAt:    time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	if overrides != nil {
		overrides(&listing)
	}
	return listing
}

func TestMatches_EmptyFiltersPassEverything(t *testing.T) {
	assert.True(t, Matches(testListing(nil), models.SearchFilters{}))
}

func TestMatches_Category(t *testing.T) {
	listing := testListing(nil)

	assert.True(t, Matches(listing, models.SearchFilters{
		Category: models.Ptr(models.CategoryFireApparatus),
	}))
	assert.False(t, Matches(listing, models.SearchFilters{
		Category: models.Ptr(models.CategoryTankers),
	}))
}

func TestMatches_ListingTypeAllIsNoConstraint(t *testing.T) {
	listing := testListing(nil) // buy_now

	assert.True(t, Matches(listing, models.SearchFilters{
		ListingType: models.Ptr(models.FilterAll),
	}))
	assert.True(t, Matches(listing, models.SearchFilters{
		ListingType: models.Ptr(models.FilterBuyNow),
	}))
	assert.False(t, Matches(listing, models.SearchFilters{
		ListingType: models.Ptr(models.FilterAuction),
	}))
}

func TestMatches_PriceBoundsAreInclusive(t *testing.T) {
	listing := testListing(nil) // price 100000

	filters := models.SearchFilters{
		PriceMin: models.Ptr(50000),
		PriceMax: models.Ptr(100000),
	}
	assert.True(t, Matches(listing, filters))

	over := testListing(func(l *models.Listing) { l.Price = 100001 })
	assert.False(t, Matches(over, filters))

	atMin := testListing(func(l *models.Listing) { l.Price = 50000 })
	assert.True(t, Matches(atMin, filters))
}

func TestMatches_IndependentBounds(t *testing.T) {
	listing := testListing(nil)

	// Only a minimum set.
	assert.True(t, Matches(listing, models.SearchFilters{YearMin: models.Ptr(2010)}))
	assert.False(t, Matches(listing, models.SearchFilters{YearMin: models.Ptr(2020)}))

	// Only a maximum set.
	assert.True(t, Matches(listing, models.SearchFilters{MileageMax: models.Ptr(50000)}))
	assert.False(t, Matches(listing, models.SearchFilters{MileageMax: models.Ptr(40000)}))
}

func TestMatches_ManufacturerSetIsAnyOf(t *testing.T) {
	listing := testListing(nil) // Pierce

	assert.True(t, Matches(listing, models.SearchFilters{
		Manufacturers: []string{"KME", "Pierce"},
	}))
	assert.False(t, Matches(listing, models.SearchFilters{
		Manufacturers: []string{"KME", "E-One"},
	}))
	// Empty set means unconstrained.
	assert.True(t, Matches(listing, models.SearchFilters{Manufacturers: []string{}}))
}

func TestMatches_NilPumpDisqualifiesUnderActiveMinimum(t *testing.T) {
	withPump := testListing(func(l *models.Listing) {
		l.Price = 100000
		l.PumpGPM = models.Ptr(1500)
	})
	noPump := testListing(func(l *models.Listing) {
		l.Price = 85000
		l.PumpGPM = nil
	})

	filters := models.SearchFilters{PumpSizeMin: models.Ptr(1000)}

	assert.True(t, Matches(withPump, filters))
	assert.False(t, Matches(noPump, filters))

	// Without the minimum active, a nil pump passes.
	assert.True(t, Matches(noPump, models.SearchFilters{}))
}

func TestMatches_TankSizeMin(t *testing.T) {
	listing := testListing(nil) // 1000 gallons

	assert.True(t, Matches(listing, models.SearchFilters{TankSizeMin: models.Ptr(1000)}))
	assert.False(t, Matches(listing, models.SearchFilters{TankSizeMin: models.Ptr(1500)}))

	noTank := testListing(func(l *models.Listing) { l.TankGallons = nil })
	assert.False(t, Matches(noTank, models.SearchFilters{TankSizeMin: models.Ptr(500)}))
}

func TestMatches_State(t *testing.T) {
	listing := testListing(nil) // TX

	assert.True(t, Matches(listing, models.SearchFilters{State: models.Ptr("TX")}))
	assert.False(t, Matches(listing, models.SearchFilters{State: models.Ptr("CA")}))
}

func TestMatches_MonotonicUnderRelaxation(t *testing.T) {
	listing := testListing(nil)

	full := models.SearchFilters{
		Category:      models.Ptr(models.CategoryFireApparatus),
		PriceMax:      models.Ptr(90000), // fails
		Manufacturers: []string{"Pierce"},
		State:         models.Ptr("TX"),
	}
	require.False(t, Matches(listing, full))

	// Dropping the failing clause can only keep or increase the result.
	relaxed := full
	relaxed.PriceMax = nil
	assert.True(t, Matches(listing, relaxed))
}

func TestMatchingListings_PreservesOrderAndAgreesWithPredicate(t *testing.T) {
	listings := []models.Listing{
		testListing(func(l *models.Listing) { l.ID = "a"; l.Price = 60000 }),
		testListing(func(l *models.Listing) { l.ID = "b"; l.Price = 120000 }),
		testListing(func(l *models.Listing) { l.ID = "c"; l.Price = 80000 }),
	}
	filters := models.SearchFilters{PriceMax: models.Ptr(100000)}

	matched := MatchingListings(listings, filters)

	require.Len(t, matched, 2)
	assert.Equal(t, "a", matched[0].ID)
	assert.Equal(t, "c", matched[1].ID)
	for _, l := range matched {
		assert.True(t, Matches(l, filters))
	}
}

func TestCountMatches_EqualsMatchedLength(t *testing.T) {
	listings := []models.Listing{
		testListing(func(l *models.Listing) { l.ID = "a"; l.State = "TX" }),
		testListing(func(l *models.Listing) { l.ID = "b"; l.State = "CA" }),
		testListing(func(l *models.Listing) { l.ID = "c"; l.State = "TX" }),
	}

	cases := []models.SearchFilters{
		{},
		{State: models.Ptr("TX")},
		{State: models.Ptr("NY")},
		{PriceMin: models.Ptr(1)},
	}
	for _, filters := range cases {
		assert.Equal(t, len(MatchingListings(listings, filters)), CountMatches(listings, filters))
	}
}

func TestSortListings_PriceOrdering(t *testing.T) {
	listings := []models.Listing{
		testListing(func(l *models.Listing) { l.ID = "a"; l.Price = 120000 }),
		testListing(func(l *models.Listing) { l.ID = "b"; l.Price = 60000 }),
		testListing(func(l *models.Listing) { l.ID = "c"; l.Price = 80000 }),
	}

	asc := SortListings(listings, models.SortPriceAsc)
	for i := 1; i < len(asc); i++ {
		assert.LessOrEqual(t, asc[i-1].Price, asc[i].Price)
	}

	desc := SortListings(listings, models.SortPriceDesc)
	for i := 1; i < len(desc); i++ {
		assert.GreaterOrEqual(t, desc[i-1].Price, desc[i].Price)
	}
}

func TestSortListings_StableOnTies(t *testing.T) {
	listings := []models.Listing{
		testListing(func(l *models.Listing) { l.ID = "first"; l.Price = 75000 }),
		testListing(func(l *models.Listing) { l.ID = "second"; l.Price = 75000 }),
		testListing(func(l *models.Listing) { l.ID = "third"; l.Price = 75000 }),
	}

	sorted := SortListings(listings, models.SortPriceAsc)

	require.Len(t, sorted, 3)
	assert.Equal(t, "first", sorted[0].ID)
	assert.Equal(t, "second", sorted[1].ID)
	assert.Equal(t, "third", sorted[2].ID)
}

func TestSortListings_RecentAndRelevance(t *testing.T) {
	old := testListing(func(l *models.Listing) {
		l.ID = "old"
		l.CreatedAt = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	})
	newer := testListing(func(l *models.Listing) {
		l.ID = "newer"
		l.CreatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	})
	listings := []models.Listing{old, newer}

	recent := SortListings(listings, models.SortRecent)
	require.Len(t, recent, 2)
	assert.Equal(t, "newer", recent[0].ID)

	// Relevance has no scoring model and behaves exactly like recent.
	relevance := SortListings(listings, models.SortRelevance)
	assert.Equal(t, recent, relevance)
}

func TestSortListings_DoesNotMutateInput(t *testing.T) {
	listings := []models.Listing{
		testListing(func(l *models.Listing) { l.ID = "a"; l.Price = 120000 }),
		testListing(func(l *models.Listing) { l.ID = "b"; l.Price = 60000 }),
	}

	_ = SortListings(listings, models.SortPriceAsc)

	assert.Equal(t, "a", listings[0].ID)
	assert.Equal(t, "b", listings[1].ID)
}

func TestHasActiveFilters(t *testing.T) {
	assert.False(t, HasActiveFilters(models.SearchFilters{}))
	assert.False(t, HasActiveFilters(models.SearchFilters{
		ListingType: models.Ptr(models.FilterAll),
	}))
	assert.False(t, HasActiveFilters(models.SearchFilters{Manufacturers: []string{}}))

	assert.True(t, HasActiveFilters(models.SearchFilters{Category: models.Ptr(models.CategoryTankers)}))
	assert.True(t, HasActiveFilters(models.SearchFilters{ListingType: models.Ptr(models.FilterAuction)}))
	assert.True(t, HasActiveFilters(models.SearchFilters{PriceMin: models.Ptr(0)}))
	assert.True(t, HasActiveFilters(models.SearchFilters{Manufacturers: []string{"Pierce"}}))
	assert.True(t, HasActiveFilters(models.SearchFilters{State: models.Ptr("TX")}))
}
