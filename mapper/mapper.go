package mapper

import (
	"craftpantry/entity"
	"craftpantry/model"
)

// VendorModelToEntity maps a Vendor model to the corresponding entity.
func VendorModelToEntity(m *model.Vendor) *entity.Vendor {
	var coords []float64
	if m.Longitude != nil && m.Latitude != nil {
		coords = []float64{*m.Longitude, *m.Latitude}
	}
	return &entity.Vendor{
		ID:   m.ID,
		Name: m.Name,
		Type: m.Type,
		Address: entity.Address{
			Street:      m.Street,
			City:        m.City,
			State:       m.State,
			Country:     m.Country,
			Coordinates: coords,
		},
		Rating:        m.Rating,
		FollowerCount: m.FollowerCount,
	}
}

// RatingModelToEntity maps a ListingRating model to the corresponding entity.
func RatingModelToEntity(m *model.ListingRating) entity.ListingRating {
	return entity.ListingRating{
		UserID:    m.UserID,
		Accuracy:  m.Accuracy,
		Freshness: m.Freshness,
		Value:     m.Value,
		Comment:   m.Comment,
	}
}

// ListingModelToEntity maps an ItemListing model to the corresponding entity.
func ListingModelToEntity(m *model.ItemListing) *entity.ItemListing {
	ratings := make([]entity.ListingRating, 0, len(m.Ratings))
	for i := range m.Ratings {
		ratings = append(ratings, RatingModelToEntity(&m.Ratings[i]))
	}
	l := &entity.ItemListing{
		ID:          m.ID,
		Name:        m.Name,
		Category:    m.Category,
		Type:        m.Type,
		Description: m.Description,
		Price: entity.Price{
			Min:      m.PriceMin,
			Max:      m.PriceMax,
			Currency: m.Currency,
			Unit:     m.Unit,
		},
		Availability: entity.Availability{
			InStock:  m.InStock,
			Seasonal: m.Seasonal,
			Notes:    m.Notes,
		},
		Tags:          m.Tags,
		Ratings:       ratings,
		AverageRating: m.AverageRating,
		VendorID:      m.VendorID,
		CreatorID:     m.CreatorID,
		CreatedAt:     m.CreatedAt,
	}
	if m.Vendor != nil {
		l.Vendor = VendorModelToEntity(m.Vendor)
	}
	return l
}

// ListingModelsToEntities maps a slice of listing models.
func ListingModelsToEntities(models []model.ItemListing) []entity.ItemListing {
	out := make([]entity.ItemListing, 0, len(models))
	for i := range models {
		out = append(out, *ListingModelToEntity(&models[i]))
	}
	return out
}
