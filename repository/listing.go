package repository

import (
	"context"
	"fmt"
	"strings"

	"craftpantry/entity"
	"craftpantry/mapper"
	"craftpantry/model"

	"gorm.io/gorm"
)

// ListingRepository is a struct that holds the database connection.
type ListingRepository struct {
	DB *gorm.DB
}

// NewListingRepository creates and returns a new ListingRepository.
func NewListingRepository(db *gorm.DB) *ListingRepository {
	return &ListingRepository{
		DB: db,
	}
}

// Search fetches all listings matching the filter set. An empty filter
// returns every listing.
func (r *ListingRepository) Search(ctx context.Context, f entity.ListingFilter) ([]entity.ItemListing, error) {
	var listingModels []model.ItemListing

	q := buildListingQuery(r.DB.WithContext(ctx).Model(&model.ItemListing{}), f)
	if err := q.Preload("Ratings").Find(&listingModels).Error; err != nil {
		return nil, fmt.Errorf("search listings: %w", err)
	}
	return mapper.ListingModelsToEntities(listingModels), nil
}

// buildListingQuery translates the filter set into a WHERE chain.
func buildListingQuery(q *gorm.DB, f entity.ListingFilter) *gorm.DB {
	if name := strings.TrimSpace(f.Name); name != "" {
		needle := strings.ToLower(name)
		// Substring match on the name or exact membership in the tag set.
		q = q.Where("LOWER(name) LIKE ? OR ? = ANY(tags)", "%"+needle+"%", needle)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.PriceUnit != "" {
		q = q.Where("unit = ?", f.PriceUnit)
	}
	if f.InStockOnly {
		q = q.Where("in_stock = TRUE")
	}
	// A bound matches when either end of the stored range satisfies it, so
	// listings that only know one end of their price range are admitted.
	if f.MinPrice != nil {
		q = q.Where("price_min >= ? OR price_max >= ?", *f.MinPrice, *f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price_min <= ? OR price_max <= ?", *f.MaxPrice, *f.MaxPrice)
	}
	return q
}
