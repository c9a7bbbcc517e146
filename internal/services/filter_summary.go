package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ShouwangH/garage-demo/internal/models"
)

// FormatFilterSummary renders a filter set as a short human-readable line,
// e.g. "Fire Apparatus · $85k-$150k · 1,000+ GPM · Pierce, KME · Texas".
func FormatFilterSummary(filters models.SearchFilters) string {
	var parts []string

	if filters.Category != nil {
		parts = append(parts, string(*filters.Category))
	}

	switch {
	case filters.PriceMin != nil && filters.PriceMax != nil:
		parts = append(parts, formatPriceShort(*filters.PriceMin)+"-"+formatPriceShort(*filters.PriceMax))
	case filters.PriceMin != nil:
		parts = append(parts, formatPriceShort(*filters.PriceMin)+"+")
	case filters.PriceMax != nil:
		parts = append(parts, "Under "+formatPriceShort(*filters.PriceMax))
	}

	switch {
	case filters.YearMin != nil && filters.YearMax != nil:
		parts = append(parts, fmt.Sprintf("%d-%d", *filters.YearMin, *filters.YearMax))
	case filters.YearMin != nil:
		parts = append(parts, fmt.Sprintf("%d+", *filters.YearMin))
	case filters.YearMax != nil:
		parts = append(parts, fmt.Sprintf("Pre-%d", *filters.YearMax))
	}

	if filters.PumpSizeMin != nil {
		parts = append(parts, formatNumber(*filters.PumpSizeMin)+"+ GPM")
	}
	if filters.TankSizeMin != nil {
		parts = append(parts, formatNumber(*filters.TankSizeMin)+"+ gal")
	}

	if len(filters.Manufacturers) > 0 {
		if len(filters.Manufacturers) <= 2 {
			parts = append(parts, strings.Join(filters.Manufacturers, ", "))
		} else {
			parts = append(parts, fmt.Sprintf("%d manufacturers", len(filters.Manufacturers)))
		}
	}

	if filters.State != nil {
		parts = append(parts, models.StateName(*filters.State))
	}

	if filters.ListingType != nil && *filters.ListingType != models.FilterAll {
		if *filters.ListingType == models.FilterBuyNow {
			parts = append(parts, "Buy Now")
		} else {
			parts = append(parts, "Auction")
		}
	}

	if len(parts) == 0 {
		return "All listings"
	}
	return strings.Join(parts, " · ")
}

// formatPrice renders a whole-dollar amount: $85,000.
func formatPrice(price int) string {
	return "$" + formatNumber(price)
}

// formatPriceShort renders a compact amount: $85k, $1.2M.
func formatPriceShort(price int) string {
	if price >= 1000000 {
		return strings.TrimSuffix(fmt.Sprintf("$%.1f", float64(price)/1000000), ".0") + "M"
	}
	if price >= 1000 {
		return fmt.Sprintf("$%dk", price/1000)
	}
	return fmt.Sprintf("$%d", price)
}

// formatNumber inserts thousands separators: 28000 -> 28,000.
func formatNumber(n int) string {
	s := strconv.Itoa(n)
	if n < 0 {
		return "-" + formatNumber(-n)
	}
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
