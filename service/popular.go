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

// defaultPopularLimit caps the popularity summary when no limit is given.
const defaultPopularLimit = 10

// PopularService surfaces the items offered by the most distinct vendors,
// i.e. the items with the most comparison shopping value. Coverage-ranked,
// not frequency-ranked.
type PopularService struct {
	listings ListingSource
}

// NewPopularService creates and returns a new PopularService.
func NewPopularService(listings ListingSource) *PopularService {
	return &PopularService{
		listings: listings,
	}
}

type popularBucket struct {
	item     entity.PopularItem
	priceSum float64
	priceN   int
	vendors  map[uint]bool
}

// Popular aggregates all listings (optionally restricted to one type) by
// canonical item identity and ranks the buckets by distinct vendor count.
func (s *PopularService) Popular(ctx context.Context, itemType string, limit int) ([]entity.PopularItem, error) {
	if limit <= 0 {
		limit = defaultPopularLimit
	}

	filter := entity.ListingFilter{Type: itemType}
	listings, err := s.listings.Search(ctx, filter)
	if err != nil {
		logger.Error("popularity search failed", zap.String("type", itemType), zap.Error(err))
		return nil, fmt.Errorf("popular items: %w", err)
	}

	index := make(map[string]int)
	buckets := make([]*popularBucket, 0)

	for i := range listings {
		l := &listings[i]
		key := strings.ToLower(l.Name) + "|" + l.Category + "|" + l.Type

		at, ok := index[key]
		if !ok {
			at = len(buckets)
			index[key] = at
			buckets = append(buckets, &popularBucket{
				item: entity.PopularItem{
					Name:     strings.ToLower(l.Name),
					Category: l.Category,
					Type:     l.Type,
				},
				vendors: make(map[uint]bool),
			})
		}

		b := buckets[at]
		b.item.Count++
		b.vendors[l.VendorID] = true
		// Listings with no price at all still count toward coverage but are
		// left out of the average.
		if mid, ok := l.MidPrice(); ok {
			b.priceSum += mid
			b.priceN++
		}
	}

	items := make([]entity.PopularItem, 0, len(buckets))
	for _, b := range buckets {
		b.item.VendorCount = len(b.vendors)
		if b.priceN > 0 {
			b.item.AvgPrice = round2(b.priceSum / float64(b.priceN))
		}
		items = append(items, b.item)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].VendorCount > items[j].VendorCount
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}
