package service

import (
	"context"
	"fmt"
	"testing"

	"craftpantry/entity"
)

func TestPopularCoverageExample(t *testing.T) {
	listings := &fakeListings{listings: []entity.ItemListing{
		listing(1, "Flour", 1, fp(2), fp(2)),
		listing(2, "flour", 2, fp(4), nil),
		listing(3, "flour", 1, fp(6), nil),
	}}
	svc := NewPopularService(listings)

	items, err := svc.Popular(context.Background(), "", 0)
	if err != nil {
		t.Fatalf("Popular: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("items: got %d, want 1", len(items))
	}

	got := items[0]
	if got.Count != 3 {
		t.Errorf("Count: got %d, want 3", got.Count)
	}
	if got.VendorCount != 2 {
		t.Errorf("VendorCount: got %d, want 2", got.VendorCount)
	}
	// Midpoints are 2, 4 and 6.
	if got.AvgPrice != 4 {
		t.Errorf("AvgPrice: got %v, want 4", got.AvgPrice)
	}
	if got.Name != "flour" {
		t.Errorf("Name: got %q, want lowercased %q", got.Name, "flour")
	}
}

func TestPopularRanksByVendorCoverage(t *testing.T) {
	listings := &fakeListings{listings: []entity.ItemListing{
		// Jaggery: 3 listings but a single vendor.
		listing(1, "Jaggery", 1, fp(50), nil),
		listing(2, "Jaggery", 1, fp(55), nil),
		listing(3, "Jaggery", 1, fp(60), nil),
		// Turmeric: 2 listings across 2 vendors.
		listing(4, "Turmeric", 1, fp(30), nil),
		listing(5, "Turmeric", 2, fp(35), nil),
	}}
	svc := NewPopularService(listings)

	items, err := svc.Popular(context.Background(), "", 0)
	if err != nil {
		t.Fatalf("Popular: %v", err)
	}
	if items[0].Name != "turmeric" {
		t.Errorf("coverage winner: got %q, want turmeric", items[0].Name)
	}
}

func TestPopularIgnoresPricelessListingsInAverage(t *testing.T) {
	listings := &fakeListings{listings: []entity.ItemListing{
		listing(1, "Clay", 1, fp(10), nil),
		listing(2, "Clay", 2, nil, nil),
	}}
	svc := NewPopularService(listings)

	items, err := svc.Popular(context.Background(), "", 0)
	if err != nil {
		t.Fatalf("Popular: %v", err)
	}
	if items[0].Count != 2 {
		t.Errorf("Count: got %d, want 2", items[0].Count)
	}
	if items[0].AvgPrice != 10 {
		t.Errorf("AvgPrice: got %v, want 10", items[0].AvgPrice)
	}
}

func TestPopularHonorsLimit(t *testing.T) {
	var ls []entity.ItemListing
	for i := 1; i <= 15; i++ {
		ls = append(ls, listing(uint(i), fmt.Sprintf("item-%d", i), uint(i), fp(10), nil))
	}
	listings := &fakeListings{listings: ls}
	svc := NewPopularService(listings)

	items, err := svc.Popular(context.Background(), "", 3)
	if err != nil {
		t.Fatalf("Popular: %v", err)
	}
	if len(items) != 3 {
		t.Errorf("limit 3: got %d items", len(items))
	}

	// Zero falls back to the default of 10.
	items, err = svc.Popular(context.Background(), "", 0)
	if err != nil {
		t.Fatalf("Popular: %v", err)
	}
	if len(items) != 10 {
		t.Errorf("default limit: got %d items, want 10", len(items))
	}
}

func TestPopularPassesTypeFilter(t *testing.T) {
	listings := &fakeListings{}
	svc := NewPopularService(listings)

	if _, err := svc.Popular(context.Background(), entity.TypeMaterial, 0); err != nil {
		t.Fatalf("Popular: %v", err)
	}
	if listings.lastFilter.Type != entity.TypeMaterial {
		t.Errorf("type filter: got %q, want %q", listings.lastFilter.Type, entity.TypeMaterial)
	}
}
