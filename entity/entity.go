package entity

import (
	"time"
)

// Vendor types recognised by the directory.
const (
	VendorGrocery       = "grocery"
	VendorFarmersMarket = "farmers-market"
	VendorCraftStore    = "craft-store"
	VendorHardware      = "hardware"
	VendorSpecialtyFood = "specialty-food"
	VendorBakery        = "bakery"
	VendorButcher       = "butcher"
	VendorOther         = "other"
)

// Listing types.
const (
	TypeIngredient = "ingredient"
	TypeMaterial   = "material"
)

// Address locates a vendor. Coordinates are [longitude, latitude] and may be
// empty when the vendor has never been geocoded.
type Address struct {
	Street      string    `json:"street"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	Country     string    `json:"country"`
	Coordinates []float64 `json:"coordinates,omitempty"`
}

// Vendor represents a local shop or market in the vendor directory.
type Vendor struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	Address       Address `json:"address"`
	Rating        float64 `json:"rating"`
	FollowerCount int     `json:"follower_count"`
}

// Price is an optional range; either bound (or both) may be unknown.
type Price struct {
	Min      *float64 `json:"min,omitempty"`
	Max      *float64 `json:"max,omitempty"`
	Currency string   `json:"currency"`
	Unit     string   `json:"unit,omitempty"`
}

// Availability flags for a listing.
type Availability struct {
	InStock  bool   `json:"in_stock"`
	Seasonal bool   `json:"seasonal"`
	Notes    string `json:"notes,omitempty"`
}

// ListingRating is a single user's rating of a listing.
type ListingRating struct {
	UserID    uint   `json:"user_id"`
	Accuracy  int    `json:"accuracy"`
	Freshness int    `json:"freshness"`
	Value     int    `json:"value"`
	Comment   string `json:"comment,omitempty"`
}

// ItemListing is a vendor's offer of a named ingredient or material.
type ItemListing struct {
	ID            uint            `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Type          string          `json:"type"`
	Description   string          `json:"description,omitempty"`
	Price         Price           `json:"price"`
	Availability  Availability    `json:"availability"`
	Tags          []string        `json:"tags,omitempty"`
	Ratings       []ListingRating `json:"ratings,omitempty"`
	AverageRating float64         `json:"average_rating"`
	VendorID      uint            `json:"vendor_id"`
	Vendor        *Vendor         `json:"vendor,omitempty"`
	CreatorID     uint            `json:"creator_id"`
	CreatedAt     time.Time       `json:"created_at"`
}

// NumericPrice collapses the price range to a single comparable value:
// the lower bound when known, otherwise the upper bound, otherwise zero.
func (l *ItemListing) NumericPrice() float64 {
	if l.Price.Min != nil {
		return *l.Price.Min
	}
	if l.Price.Max != nil {
		return *l.Price.Max
	}
	return 0
}

// MidPrice returns the midpoint of the price range, or whichever bound
// exists. The second return is false when the listing carries no price.
func (l *ItemListing) MidPrice() (float64, bool) {
	switch {
	case l.Price.Min != nil && l.Price.Max != nil:
		return (*l.Price.Min + *l.Price.Max) / 2, true
	case l.Price.Min != nil:
		return *l.Price.Min, true
	case l.Price.Max != nil:
		return *l.Price.Max, true
	default:
		return 0, false
	}
}

// AverageRatingOf recomputes the derived listing rating: the mean over all
// ratings of (accuracy+freshness+value)/3. Zero when there are no ratings.
func AverageRatingOf(ratings []ListingRating) float64 {
	if len(ratings) == 0 {
		return 0
	}
	var sum float64
	for _, r := range ratings {
		sum += float64(r.Accuracy+r.Freshness+r.Value) / 3
	}
	return sum / float64(len(ratings))
}

// ListingFilter is the typed filter set accepted by the listing store.
// Nil price bounds mean "not filtered".
type ListingFilter struct {
	Name        string
	Category    string
	Type        string
	InStockOnly bool
	MinPrice    *float64
	MaxPrice    *float64
	PriceUnit   string
}

// Sort strategies for comparison search.
const (
	SortByPrice        = "price"        // numeric price ascending (default)
	SortByDistance     = "distance"     // distance ascending, unknown last
	SortByRating       = "rating"       // vendor rating descending
	SortByVendorRating = "vendorRating" // listing average rating descending
)

// GeoPoint is a user-supplied location in decimal degrees.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// SearchRequest drives a comparison search.
type SearchRequest struct {
	Filter       ListingFilter
	SortBy       string
	UserLocation *GeoPoint
}

// VendorSummary is the vendor snapshot embedded in a comparison entry.
type VendorSummary struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	City        string    `json:"city,omitempty"`
	Coordinates []float64 `json:"coordinates,omitempty"`
	Rating      float64   `json:"rating"`
}

// ComparisonEntry is one vendor's offer inside a comparison group.
type ComparisonEntry struct {
	ListingID     uint          `json:"listing_id"`
	Vendor        VendorSummary `json:"vendor"`
	Price         Price         `json:"price"`
	Availability  Availability  `json:"availability"`
	Distance      *float64      `json:"distance,omitempty"`
	AverageRating float64       `json:"average_rating"`
	Tags          []string      `json:"tags,omitempty"`
}

// ComparisonGroup collects the listings judged to be the same logical item.
// Rebuilt on every request, never stored.
type ComparisonGroup struct {
	ItemName string            `json:"item_name"`
	Category string            `json:"category"`
	Type     string            `json:"type"`
	Vendors  []ComparisonEntry `json:"vendors"`
}

// SearchCriteria echoes the request back in the response.
type SearchCriteria struct {
	Name        string   `json:"name,omitempty"`
	Category    string   `json:"category,omitempty"`
	Type        string   `json:"type,omitempty"`
	InStockOnly bool     `json:"in_stock_only,omitempty"`
	MinPrice    *float64 `json:"min_price,omitempty"`
	MaxPrice    *float64 `json:"max_price,omitempty"`
	PriceUnit   string   `json:"price_unit,omitempty"`
	SortBy      string   `json:"sort_by"`
}

// SearchResult is the comparison search response.
type SearchResult struct {
	Groups           []ComparisonGroup `json:"groups"`
	TotalItems       int               `json:"total_items"`
	TotalUniqueItems int               `json:"total_unique_items"`
	Criteria         SearchCriteria    `json:"criteria"`
}

// PriceSummary is the numeric block of a price-stats response. It is omitted
// entirely when no listing carries a usable positive price.
type PriceSummary struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Average float64 `json:"average"`
	Median  float64 `json:"median"`
}

// UnitCount is one bucket of the unit frequency table.
type UnitCount struct {
	Unit  string `json:"unit"`
	Count int    `json:"count"`
}

// AvailabilityCounts summarises stock state over a listing set.
type AvailabilityCounts struct {
	InStock    int `json:"in_stock"`
	OutOfStock int `json:"out_of_stock"`
	Seasonal   int `json:"seasonal"`
}

// PriceStats is the stats response for a named item.
type PriceStats struct {
	ItemName     string             `json:"item_name"`
	Category     string             `json:"category,omitempty"`
	Type         string             `json:"type,omitempty"`
	VendorCount  int                `json:"vendor_count"`
	ListingCount int                `json:"listing_count"`
	Prices       *PriceSummary      `json:"prices,omitempty"`
	Units        []UnitCount        `json:"units"`
	Availability AvailabilityCounts `json:"availability"`
}

// PopularItem is one row of the coverage-ranked popularity summary.
type PopularItem struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Type        string  `json:"type"`
	Count       int     `json:"count"`
	AvgPrice    float64 `json:"avg_price"`
	VendorCount int     `json:"vendor_count"`
}

// Proximity search sort fields.
const (
	ProximitySortCreated  = "createdAt"
	ProximitySortName     = "name"
	ProximitySortPrice    = "price"
	ProximitySortRating   = "rating"
	ProximitySortDistance = "distance"
)

// GeoFilter restricts listings to vendors within MaxDistance meters of a point.
type GeoFilter struct {
	Lat         float64
	Lng         float64
	MaxDistance float64
}

// ProximityRequest drives a paginated listing browse.
type ProximityRequest struct {
	Filter    ListingFilter
	Geo       *GeoFilter
	SortBy    string
	SortOrder string // "asc" or "desc"
	Page      int
	Limit     int
}

// Pagination describes the page window of a browse response. Pages are
// 1-indexed.
type Pagination struct {
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	TotalItems  int  `json:"total_items"`
	TotalPages  int  `json:"total_pages"`
	HasNextPage bool `json:"has_next_page"`
	HasPrevPage bool `json:"has_prev_page"`
}

// PageResult is the proximity search response.
type PageResult struct {
	Items      []ItemListing `json:"items"`
	Pagination Pagination    `json:"pagination"`
}
