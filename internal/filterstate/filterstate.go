// Package filterstate maps the structured SearchFilters record to and from
// a flat URL query representation, so filter state survives navigation and
// is shareable as a link. The codec is pure and independent of any router:
// decode tolerates anything (bad integers become unset, unknown keys are
// ignored), encode emits only recognized keys, and the round trip is stable.
package filterstate

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/ShouwangH/garage-demo/internal/models"
)

// Recognized query keys, matching the SearchFilters field names.
const (
	KeyCategory      = "category"
	KeyListingType   = "listingType"
	KeyPriceMin      = "priceMin"
	KeyPriceMax      = "priceMax"
	KeyYearMin       = "yearMin"
	KeyYearMax       = "yearMax"
	KeyMileageMin    = "mileageMin"
	KeyMileageMax    = "mileageMax"
	KeyManufacturers = "manufacturers"
	KeyPumpSizeMin   = "pumpSizeMin"
	KeyTankSizeMin   = "tankSizeMin"
	KeyState         = "state"
)

var recognizedKeys = []string{
	KeyCategory, KeyListingType,
	KeyPriceMin, KeyPriceMax,
	KeyYearMin, KeyYearMax,
	KeyMileageMin, KeyMileageMax,
	KeyManufacturers, KeyPumpSizeMin, KeyTankSizeMin, KeyState,
}

// Decode parses a query representation into a SearchFilters record. Each key
// is parsed independently: missing or unparseable values leave the field
// unset, never error. The manufacturers value is a comma-joined list.
func Decode(values url.Values) models.SearchFilters {
	var filters models.SearchFilters

	if v := values.Get(KeyCategory); v != "" {
		filters.Category = models.Ptr(models.Category(v))
	}
	if v := values.Get(KeyListingType); v != "" {
		filters.ListingType = models.Ptr(models.ListingTypeFilter(v))
	}

	filters.PriceMin = parseInt(values.Get(KeyPriceMin))
	filters.PriceMax = parseInt(values.Get(KeyPriceMax))
	filters.YearMin = parseInt(values.Get(KeyYearMin))
	filters.YearMax = parseInt(values.Get(KeyYearMax))
	filters.MileageMin = parseInt(values.Get(KeyMileageMin))
	filters.MileageMax = parseInt(values.Get(KeyMileageMax))
	filters.PumpSizeMin = parseInt(values.Get(KeyPumpSizeMin))
	filters.TankSizeMin = parseInt(values.Get(KeyTankSizeMin))

	if v := values.Get(KeyManufacturers); v != "" {
		filters.Manufacturers = strings.Split(v, ",")
	}
	if v := values.Get(KeyState); v != "" {
		filters.State = models.Ptr(v)
	}

	return filters
}

// Encode serializes a SearchFilters record to its query representation.
// Unset fields produce no key; the manufacturers list is comma-joined.
// Encode(Decode(v)) yields an equivalent set of recognized keys.
func Encode(filters models.SearchFilters) url.Values {
	values := url.Values{}

	if filters.Category != nil {
		values.Set(KeyCategory, string(*filters.Category))
	}
	if filters.ListingType != nil {
		values.Set(KeyListingType, string(*filters.ListingType))
	}
	setInt(values, KeyPriceMin, filters.PriceMin)
	setInt(values, KeyPriceMax, filters.PriceMax)
	setInt(values, KeyYearMin, filters.YearMin)
	setInt(values, KeyYearMax, filters.YearMax)
	setInt(values, KeyMileageMin, filters.MileageMin)
	setInt(values, KeyMileageMax, filters.MileageMax)
	if len(filters.Manufacturers) > 0 {
		values.Set(KeyManufacturers, strings.Join(filters.Manufacturers, ","))
	}
	setInt(values, KeyPumpSizeMin, filters.PumpSizeMin)
	setInt(values, KeyTankSizeMin, filters.TankSizeMin)
	if filters.State != nil {
		values.Set(KeyState, *filters.State)
	}

	return values
}

// ActiveFilterCount counts independently-toggleable filter groups, not raw
// fields: each min/max pair counts once even when both ends are set.
func ActiveFilterCount(filters models.SearchFilters) int {
	count := 0
	if filters.Category != nil {
		count++
	}
	if filters.ListingType != nil && *filters.ListingType != models.FilterAll {
		count++
	}
	if filters.PriceMin != nil || filters.PriceMax != nil {
		count++
	}
	if filters.YearMin != nil || filters.YearMax != nil {
		count++
	}
	if filters.MileageMin != nil || filters.MileageMax != nil {
		count++
	}
	if len(filters.Manufacturers) > 0 {
		count++
	}
	if filters.PumpSizeMin != nil {
		count++
	}
	if filters.TankSizeMin != nil {
		count++
	}
	if filters.State != nil {
		count++
	}
	return count
}

// Store holds a query representation and keeps it in sync with structured
// filter updates. Keys outside the recognized set are carried through
// untouched, so filter edits never clobber unrelated query state.
type Store struct {
	values url.Values
}

// NewStore creates a Store seeded from an existing query representation.
// The input is copied; the caller's url.Values is never mutated.
func NewStore(values url.Values) *Store {
	copied := url.Values{}
	for key, vals := range values {
		copied[key] = append([]string(nil), vals...)
	}
	return &Store{values: copied}
}

// Filters decodes the current representation into a SearchFilters record.
func (s *Store) Filters() models.SearchFilters {
	return Decode(s.values)
}

// Values returns a copy of the current query representation.
func (s *Store) Values() url.Values {
	copied := url.Values{}
	for key, vals := range s.values {
		copied[key] = append([]string(nil), vals...)
	}
	return copied
}

// Set updates a single recognized key. Empty values remove the key; slices
// serialize comma-joined. Unrecognized keys are ignored.
func (s *Store) Set(key string, value string) {
	if !isRecognized(key) {
		return
	}
	if value == "" {
		s.values.Del(key)
		return
	}
	s.values.Set(key, value)
}

// SetFilters applies a partial filter record: every recognized key present
// in the patch is rewritten, keys the patch leaves unset in the encoded form
// are removed only when explicitly cleared via Set or Clear. To replace the
// full filter state, use Replace.
func (s *Store) SetFilters(patch models.SearchFilters) {
	for key, vals := range Encode(patch) {
		s.values[key] = append([]string(nil), vals...)
	}
}

// Replace swaps the entire recognized filter state for the given record,
// keeping unrecognized keys intact.
func (s *Store) Replace(filters models.SearchFilters) {
	s.Clear()
	s.SetFilters(filters)
}

// Clear removes every recognized filter key at once, resetting to the empty
// filter set. Unrecognized keys survive.
func (s *Store) Clear() {
	for _, key := range recognizedKeys {
		s.values.Del(key)
	}
}

func parseInt(raw string) *int {
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}

func setInt(values url.Values, key string, v *int) {
	if v == nil {
		return
	}
	values.Set(key, strconv.Itoa(*v))
}

func isRecognized(key string) bool {
	for _, k := range recognizedKeys {
		if k == key {
			return true
		}
	}
	return false
}
