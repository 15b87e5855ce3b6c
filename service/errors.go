package service

import (
	"context"
	"errors"

	"craftpantry/entity"
)

// ErrNameRequired is returned when a stats request omits the item name.
var ErrNameRequired = errors.New("item name is required")

// ErrNoListings is returned when no listing matches a stats request.
var ErrNoListings = errors.New("no listings matched")

// ListingSource is the filtered read contract of the item listing store.
type ListingSource interface {
	Search(ctx context.Context, f entity.ListingFilter) ([]entity.ItemListing, error)
}

// VendorSource is the bulk-join contract of the vendor directory. IDs whose
// vendor no longer exists are simply absent from the returned map.
type VendorSource interface {
	ByIDs(ctx context.Context, ids []uint) (map[uint]entity.Vendor, error)
}
