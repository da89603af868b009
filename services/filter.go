package services

import (
	"strings"

	"github.com/Timexll/TEMMY-REALTY/models"
	"github.com/Timexll/TEMMY-REALTY/utils"
)

// Filter is the browsing filter configuration. Zero values ("" / "all")
// disable the corresponding predicate.
type Filter struct {
	Query      string
	Category   string
	PriceRange string
}

// Price range bucket identifiers as used by the search surface. Sale and
// rental listings use different bucket families; on a combined view the
// family is chosen per listing by its own type.
const (
	RangeAll = "all"

	RangeSaleUnder500k = "0-500k"
	RangeSale500kTo1m  = "500k-1m"
	RangeSale1mTo2m    = "1m-2m"
	RangeSaleOver2m    = "2m+"

	RangeRentUnder2k = "0-2k"
	RangeRent2kTo4k  = "2k-4k"
	RangeRentOver4k  = "4k+"
)

// ApplyFilter returns the listings satisfying every active predicate. The
// input order is preserved and the input slice is not modified.
func ApplyFilter(listings []models.Listing, f Filter) []models.Listing {
	result := make([]models.Listing, 0, len(listings))
	for _, l := range listings {
		if !matchesQuery(l, f.Query) {
			continue
		}
		if !matchesCategory(l, f.Category) {
			continue
		}
		if !matchesPriceRange(l, f.PriceRange) {
			continue
		}
		result = append(result, l)
	}
	return result
}

// matchesQuery is a case-insensitive substring match over title, location
// and description. An empty query matches everything.
func matchesQuery(l models.Listing, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(l.Title), q) ||
		strings.Contains(strings.ToLower(l.Location), q) ||
		strings.Contains(strings.ToLower(l.Description), q)
}

func matchesCategory(l models.Listing, category string) bool {
	if category == "" || category == RangeAll {
		return true
	}
	return l.Category == category
}

// matchesPriceRange classifies the listing's free-text price into a numeric
// bucket. The middle sale buckets are inclusive on both ends, matching the
// original search behavior. Unknown bucket ids pass everything.
func matchesPriceRange(l models.Listing, priceRange string) bool {
	if priceRange == "" || priceRange == RangeAll {
		return true
	}

	price := utils.NumericPrice(l.Price)

	if l.Type == models.TypeSale {
		switch priceRange {
		case RangeSaleUnder500k:
			return price < 500000
		case RangeSale500kTo1m:
			return price >= 500000 && price <= 1000000
		case RangeSale1mTo2m:
			return price >= 1000000 && price <= 2000000
		case RangeSaleOver2m:
			return price > 2000000
		}
		return true
	}

	switch priceRange {
	case RangeRentUnder2k:
		return price < 2000
	case RangeRent2kTo4k:
		return price >= 2000 && price <= 4000
	case RangeRentOver4k:
		return price > 4000
	}
	return true
}

// SimilarListings returns up to limit listings sharing the given listing's
// category, falling back to its type, never including the listing itself.
func SimilarListings(listings []models.Listing, target models.Listing, limit int) []models.Listing {
	similar := make([]models.Listing, 0, limit)
	for _, l := range listings {
		if l.ID == target.ID {
			continue
		}
		if l.Category == target.Category {
			similar = append(similar, l)
			if len(similar) == limit {
				return similar
			}
		}
	}
	for _, l := range listings {
		if l.ID == target.ID || l.Category == target.Category {
			continue
		}
		if l.Type == target.Type {
			similar = append(similar, l)
			if len(similar) == limit {
				return similar
			}
		}
	}
	return similar
}
