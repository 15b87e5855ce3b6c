package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"craftpantry/entity"
	"craftpantry/logger"

	"go.uber.org/zap"
)

// CompareService groups listings that represent the same logical item across
// vendors and ranks the vendors within each group. Results are rebuilt from
// the stores on every call; nothing is cached.
type CompareService struct {
	listings ListingSource
	vendors  VendorSource
}

// NewCompareService creates and returns a new CompareService.
func NewCompareService(listings ListingSource, vendors VendorSource) *CompareService {
	return &CompareService{
		listings: listings,
		vendors:  vendors,
	}
}

// comparisonRow is a listing joined with its vendor, plus the optional
// distance annotation, carried through sorting and grouping.
type comparisonRow struct {
	listing  entity.ItemListing
	vendor   entity.Vendor
	distance *float64
}

// Search runs a comparison search: filter, join, annotate, sort, group.
func (s *CompareService) Search(ctx context.Context, req entity.SearchRequest) (*entity.SearchResult, error) {
	sortBy := req.SortBy
	if sortBy == "" {
		sortBy = entity.SortByPrice
	}

	listings, err := s.listings.Search(ctx, req.Filter)
	if err != nil {
		logger.Error("comparison search failed", zap.Any("filter", req.Filter), zap.Error(err))
		return nil, fmt.Errorf("comparison search: %w", err)
	}

	rows, err := s.joinVendors(ctx, listings, req.UserLocation)
	if err != nil {
		logger.Error("vendor join failed", zap.Any("filter", req.Filter), zap.Error(err))
		return nil, fmt.Errorf("comparison search: %w", err)
	}

	sortRows(rows, sortBy)

	groups := groupRows(rows)

	return &entity.SearchResult{
		Groups:           groups,
		TotalItems:       len(rows),
		TotalUniqueItems: len(groups),
		Criteria: entity.SearchCriteria{
			Name:        req.Filter.Name,
			Category:    req.Filter.Category,
			Type:        req.Filter.Type,
			InStockOnly: req.Filter.InStockOnly,
			MinPrice:    req.Filter.MinPrice,
			MaxPrice:    req.Filter.MaxPrice,
			PriceUnit:   req.Filter.PriceUnit,
			SortBy:      sortBy,
		},
	}, nil
}

// joinVendors resolves each listing's vendor and drops listings whose vendor
// row has vanished. Every surviving row carries a concrete vendor. When a
// user location is given, rows gain a distance in km rounded to 2 decimals;
// vendors without coordinates keep a nil distance.
func (s *CompareService) joinVendors(ctx context.Context, listings []entity.ItemListing, loc *entity.GeoPoint) ([]comparisonRow, error) {
	ids := make([]uint, 0, len(listings))
	seen := make(map[uint]bool, len(listings))
	for i := range listings {
		if !seen[listings[i].VendorID] {
			seen[listings[i].VendorID] = true
			ids = append(ids, listings[i].VendorID)
		}
	}

	vendors, err := s.vendors.ByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	rows := make([]comparisonRow, 0, len(listings))
	for i := range listings {
		vendor, ok := vendors[listings[i].VendorID]
		if !ok {
			// Orphaned listing, skip it.
			continue
		}
		row := comparisonRow{listing: listings[i], vendor: vendor}
		if loc != nil && len(vendor.Address.Coordinates) == 2 {
			d := round2(Haversine(loc.Lat, loc.Lng, vendor.Address.Coordinates[1], vendor.Address.Coordinates[0]))
			row.distance = &d
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// sortRows orders the flat row set by the requested strategy. The sort is
// stable so the order survives grouping and ties keep store order.
func sortRows(rows []comparisonRow, sortBy string) {
	switch sortBy {
	case entity.SortByDistance:
		sort.SliceStable(rows, func(i, j int) bool {
			// Rows with unknown distance sort last.
			if rows[i].distance == nil {
				return false
			}
			if rows[j].distance == nil {
				return true
			}
			return *rows[i].distance < *rows[j].distance
		})
	case entity.SortByRating:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].vendor.Rating > rows[j].vendor.Rating
		})
	case entity.SortByVendorRating:
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].listing.AverageRating > rows[j].listing.AverageRating
		})
	default: // entity.SortByPrice
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].listing.NumericPrice() < rows[j].listing.NumericPrice()
		})
	}
}

// groupKey is the canonical item identity used to bucket listings.
func groupKey(l *entity.ItemListing) string {
	return strings.ToLower(l.Name) + "|" + l.Category + "|" + l.Type
}

// groupRows buckets rows by canonical key, preserving row order within each
// bucket, then orders the buckets by descending vendor-entry count. Ties keep
// first-seen order.
func groupRows(rows []comparisonRow) []entity.ComparisonGroup {
	index := make(map[string]int)
	groups := make([]entity.ComparisonGroup, 0)

	for i := range rows {
		key := groupKey(&rows[i].listing)
		at, ok := index[key]
		if !ok {
			at = len(groups)
			index[key] = at
			groups = append(groups, entity.ComparisonGroup{
				ItemName: rows[i].listing.Name,
				Category: rows[i].listing.Category,
				Type:     rows[i].listing.Type,
			})
		}
		groups[at].Vendors = append(groups[at].Vendors, toEntry(&rows[i]))
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return len(groups[i].Vendors) > len(groups[j].Vendors)
	})
	return groups
}

func toEntry(row *comparisonRow) entity.ComparisonEntry {
	return entity.ComparisonEntry{
		ListingID: row.listing.ID,
		Vendor: entity.VendorSummary{
			ID:          row.vendor.ID,
			Name:        row.vendor.Name,
			Type:        row.vendor.Type,
			City:        row.vendor.Address.City,
			Coordinates: row.vendor.Address.Coordinates,
			Rating:      row.vendor.Rating,
		},
		Price:         row.listing.Price,
		Availability:  row.listing.Availability,
		Distance:      row.distance,
		AverageRating: row.listing.AverageRating,
		Tags:          row.listing.Tags,
	}
}
