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

// defaultPageLimit is the page size when the caller does not pick one.
const defaultPageLimit = 10

// ProximityService is the paginated listing browse: the same filter set as
// the comparison search plus an optional geospatial radius, without grouping.
type ProximityService struct {
	listings ListingSource
	vendors  VendorSource
}

// NewProximityService creates and returns a new ProximityService.
func NewProximityService(listings ListingSource, vendors VendorSource) *ProximityService {
	return &ProximityService{
		listings: listings,
		vendors:  vendors,
	}
}

// Search fetches, geo-filters, sorts and paginates listings. Pages are
// 1-indexed; the pagination block is always consistent with page/limit.
func (s *ProximityService) Search(ctx context.Context, req entity.ProximityRequest) (*entity.PageResult, error) {
	listings, err := s.listings.Search(ctx, req.Filter)
	if err != nil {
		logger.Error("proximity search failed", zap.Any("filter", req.Filter), zap.Error(err))
		return nil, fmt.Errorf("proximity search: %w", err)
	}

	listings, distances, err := s.annotate(ctx, listings, req.Geo)
	if err != nil {
		logger.Error("proximity vendor join failed", zap.Any("filter", req.Filter), zap.Error(err))
		return nil, fmt.Errorf("proximity search: %w", err)
	}

	sortListings(listings, distances, req.SortBy, req.SortOrder)

	page := req.Page
	if page < 1 {
		page = 1
	}
	limit := req.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}

	total := len(listings)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return &entity.PageResult{
		Items: listings[start:end],
		Pagination: entity.Pagination{
			Page:        page,
			Limit:       limit,
			TotalItems:  total,
			TotalPages:  totalPages,
			HasNextPage: page < totalPages,
			HasPrevPage: page > 1 && total > 0,
		},
	}, nil
}

// annotate attaches vendor snapshots and, when a geo filter is present,
// restricts the set to vendors within the radius. Without a geo filter
// listings keep their place even if the vendor is gone; with one, listings
// lacking a located vendor cannot satisfy the radius and are dropped.
func (s *ProximityService) annotate(ctx context.Context, listings []entity.ItemListing, geo *entity.GeoFilter) ([]entity.ItemListing, map[uint]float64, error) {
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
		return nil, nil, err
	}

	distances := make(map[uint]float64)
	out := make([]entity.ItemListing, 0, len(listings))
	for i := range listings {
		l := listings[i]
		vendor, ok := vendors[l.VendorID]
		if ok {
			v := vendor
			l.Vendor = &v
		}

		if geo != nil {
			if !ok || len(vendor.Address.Coordinates) != 2 {
				continue
			}
			km := Haversine(geo.Lat, geo.Lng, vendor.Address.Coordinates[1], vendor.Address.Coordinates[0])
			if km*1000 > geo.MaxDistance {
				continue
			}
			distances[l.ID] = round2(km)
		}
		out = append(out, l)
	}
	return out, distances, nil
}

// sortListings orders the browse result by the chosen field and direction.
// createdAt is the default field and defaults to newest first; everything
// else defaults to ascending.
func sortListings(listings []entity.ItemListing, distances map[uint]float64, sortBy, order string) {
	if sortBy == "" {
		sortBy = entity.ProximitySortCreated
	}
	if order == "" {
		if sortBy == entity.ProximitySortCreated {
			order = "desc"
		} else {
			order = "asc"
		}
	}
	desc := order == "desc"

	less := func(i, j int) bool { return listings[i].CreatedAt.Before(listings[j].CreatedAt) }
	switch sortBy {
	case entity.ProximitySortName:
		less = func(i, j int) bool {
			return strings.ToLower(listings[i].Name) < strings.ToLower(listings[j].Name)
		}
	case entity.ProximitySortPrice:
		less = func(i, j int) bool {
			return listings[i].NumericPrice() < listings[j].NumericPrice()
		}
	case entity.ProximitySortRating:
		less = func(i, j int) bool {
			return listings[i].AverageRating < listings[j].AverageRating
		}
	case entity.ProximitySortDistance:
		less = func(i, j int) bool {
			di, iOK := distances[listings[i].ID]
			dj, jOK := distances[listings[j].ID]
			if !iOK || !jOK {
				// Listings without a computed distance stay last in either
				// direction.
				return iOK
			}
			if desc {
				return di > dj
			}
			return di < dj
		}
		sort.SliceStable(listings, less)
		return
	}

	if desc {
		inner := less
		less = func(i, j int) bool { return inner(j, i) }
	}
	sort.SliceStable(listings, less)
}
