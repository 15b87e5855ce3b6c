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

// unspecifiedUnit is the histogram bucket for listings without a price unit.
const unspecifiedUnit = "piece"

// StatsService computes price statistics for a named item across vendors.
type StatsService struct {
	listings ListingSource
}

// NewStatsService creates and returns a new StatsService.
func NewStatsService(listings ListingSource) *StatsService {
	return &StatsService{
		listings: listings,
	}
}

// PriceStats fetches listings matching the name (substring) and optional
// category/type (exact) and derives the stats block. A missing name is a
// validation error; zero matches is ErrNoListings.
func (s *StatsService) PriceStats(ctx context.Context, name, category, itemType string) (*entity.PriceStats, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	filter := entity.ListingFilter{Name: name, Category: category, Type: itemType}
	listings, err := s.listings.Search(ctx, filter)
	if err != nil {
		logger.Error("stats search failed", zap.Any("filter", filter), zap.Error(err))
		return nil, fmt.Errorf("price stats: %w", err)
	}
	if len(listings) == 0 {
		return nil, ErrNoListings
	}

	stats := &entity.PriceStats{
		ItemName:     name,
		Category:     category,
		Type:         itemType,
		ListingCount: len(listings),
	}

	var prices []float64
	vendors := make(map[uint]bool)
	units := make(map[string]int)

	for i := range listings {
		l := &listings[i]
		vendors[l.VendorID] = true

		if p := l.NumericPrice(); p > 0 {
			prices = append(prices, p)
		}

		unit := l.Price.Unit
		if unit == "" {
			unit = unspecifiedUnit
		}
		units[unit]++

		if l.Availability.InStock {
			stats.Availability.InStock++
		} else {
			stats.Availability.OutOfStock++
		}
		if l.Availability.Seasonal {
			stats.Availability.Seasonal++
		}
	}

	stats.VendorCount = len(vendors)
	stats.Units = topUnits(units, 5)

	// With no usable positive price the numeric block is omitted rather than
	// reported as zeros.
	if len(prices) > 0 {
		stats.Prices = summarize(prices)
	}

	return stats, nil
}

// summarize computes min/max/average/median over a non-empty price slice.
func summarize(prices []float64) *entity.PriceSummary {
	sorted := make([]float64, len(prices))
	copy(sorted, prices)
	sort.Float64s(sorted)

	var sum float64
	for _, p := range sorted {
		sum += p
	}

	return &entity.PriceSummary{
		Min:     sorted[0],
		Max:     sorted[len(sorted)-1],
		Average: round2(sum / float64(len(sorted))),
		Median:  median(sorted),
	}
}

// median expects an ascending slice. Even lengths average the two central
// values.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// topUnits returns the most frequent units, descending by count. Ties break
// alphabetically so the table is deterministic.
func topUnits(units map[string]int, limit int) []entity.UnitCount {
	out := make([]entity.UnitCount, 0, len(units))
	for unit, count := range units {
		out = append(out, entity.UnitCount{Unit: unit, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Unit < out[j].Unit
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
