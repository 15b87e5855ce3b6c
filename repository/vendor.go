package repository

import (
	"context"
	"fmt"

	"craftpantry/entity"
	"craftpantry/mapper"
	"craftpantry/model"

	"gorm.io/gorm"
)

// VendorRepository is a struct that holds the database connection for Vendor.
type VendorRepository struct {
	DB *gorm.DB
}

// NewVendorRepository creates and returns a new VendorRepository.
func NewVendorRepository(db *gorm.DB) *VendorRepository {
	return &VendorRepository{
		DB: db,
	}
}

// ByIDs bulk-loads vendors into a map keyed by ID. IDs with no surviving
// vendor row are absent from the map; absence is the caller's concern, not
// an error.
func (r *VendorRepository) ByIDs(ctx context.Context, ids []uint) (map[uint]entity.Vendor, error) {
	result := make(map[uint]entity.Vendor, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var vendorModels []model.Vendor
	if err := r.DB.WithContext(ctx).Where("id IN ?", ids).Find(&vendorModels).Error; err != nil {
		return nil, fmt.Errorf("bulk load vendors: %w", err)
	}
	for i := range vendorModels {
		result[vendorModels[i].ID] = *mapper.VendorModelToEntity(&vendorModels[i])
	}
	return result, nil
}
