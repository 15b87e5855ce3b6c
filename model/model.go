package model

import (
	"time"

	"github.com/lib/pq"
)

// Vendor represents a local shop or market in the system.
type Vendor struct {
	ID            uint     `gorm:"primaryKey" json:"id"`
	Name          string   `gorm:"size:255;not null" json:"name"`
	Type          string   `gorm:"size:50;not null;default:'other'" json:"type"`
	Street        string   `gorm:"size:255" json:"street"`
	City          string   `gorm:"size:100" json:"city"`
	State         string   `gorm:"size:100" json:"state"`
	Country       string   `gorm:"size:100" json:"country"`
	Longitude     *float64 `json:"longitude"`
	Latitude      *float64 `json:"latitude"`
	Rating        float64  `gorm:"default:0" json:"rating"`
	FollowerCount int      `gorm:"default:0" json:"follower_count"`
	CreatorID     uint     `gorm:"index" json:"creator_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// ItemListing represents a vendor's offer of an ingredient or material.
type ItemListing struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Category    string `gorm:"size:50;not null" json:"category"`
	Type        string `gorm:"size:20;not null" json:"type"`
	Description string `gorm:"type:text" json:"description"`

	PriceMin *float64 `json:"price_min"`
	PriceMax *float64 `json:"price_max"`
	Currency string   `gorm:"size:8;default:'INR'" json:"currency"`
	Unit     string   `gorm:"size:32" json:"unit"`

	InStock  bool   `gorm:"default:true" json:"in_stock"`
	Seasonal bool   `gorm:"default:false" json:"seasonal"`
	Notes    string `gorm:"size:255" json:"notes"`

	Tags          pq.StringArray `gorm:"type:text[]" json:"tags"`
	AverageRating float64        `gorm:"default:0" json:"average_rating"`

	VendorID  uint `gorm:"not null;index" json:"vendor_id"`
	CreatorID uint `gorm:"index" json:"creator_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Vendor stays nil when the referenced vendor row is gone; readers must
	// tolerate the orphan.
	Vendor  *Vendor         `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`
	Ratings []ListingRating `gorm:"foreignKey:ListingID" json:"ratings,omitempty"`
}

// ListingRating is a single user's rating of a listing.
type ListingRating struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ListingID uint      `gorm:"not null;index" json:"listing_id"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	Accuracy  int       `gorm:"not null" json:"accuracy"`
	Freshness int       `gorm:"not null" json:"freshness"`
	Value     int       `gorm:"not null" json:"value"`
	Comment   string    `gorm:"size:500" json:"comment"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
