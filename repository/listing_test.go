package repository

import (
	"strings"
	"testing"

	"craftpantry/entity"
	"craftpantry/model"

	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}
	return db
}

func buildSQL(t *testing.T, f entity.ListingFilter) (string, []interface{}) {
	t.Helper()
	db := dryRunDB(t)
	var out []model.ItemListing
	tx := buildListingQuery(db.Model(&model.ItemListing{}), f).Find(&out)
	if tx.Error != nil {
		t.Fatalf("build query: %v", tx.Error)
	}
	return tx.Statement.SQL.String(), tx.Statement.Vars
}

func TestEmptyFilterSelectsEverything(t *testing.T) {
	sql, vars := buildSQL(t, entity.ListingFilter{})
	if strings.Contains(sql, "WHERE") {
		t.Errorf("empty filter produced a WHERE clause: %s", sql)
	}
	if len(vars) != 0 {
		t.Errorf("empty filter bound %d vars", len(vars))
	}
}

func TestNameFilterMatchesNameOrTags(t *testing.T) {
	sql, vars := buildSQL(t, entity.ListingFilter{Name: "Flour"})
	if !strings.Contains(sql, "LOWER(name) LIKE ? OR ? = ANY(tags)") {
		t.Errorf("missing name/tag predicate: %s", sql)
	}
	if len(vars) != 2 || vars[0] != "%flour%" || vars[1] != "flour" {
		t.Errorf("vars: got %v", vars)
	}
}

func TestExactMatchFilters(t *testing.T) {
	sql, vars := buildSQL(t, entity.ListingFilter{
		Category:    "baking",
		Type:        entity.TypeIngredient,
		PriceUnit:   "kg",
		InStockOnly: true,
	})
	for _, want := range []string{"category = ?", "type = ?", "unit = ?", "in_stock = TRUE"} {
		if !strings.Contains(sql, want) {
			t.Errorf("missing %q in: %s", want, sql)
		}
	}
	if len(vars) != 3 {
		t.Errorf("vars: got %v", vars)
	}
}

// Price bounds intentionally match when either stored bound satisfies them,
// so a listing knowing only one end of its range is still admitted: a listing
// with {min:5} and no max matches minPrice=3 AND maxPrice=10. This is a
// product decision, not an accident; tightening it to require both bounds
// would silently drop partial-range listings.
func TestPriceBoundsMatchEitherStoredBound(t *testing.T) {
	min := 3.0
	max := 10.0
	sql, vars := buildSQL(t, entity.ListingFilter{MinPrice: &min, MaxPrice: &max})

	if !strings.Contains(sql, "price_min >= ? OR price_max >= ?") {
		t.Errorf("missing lower-bound OR predicate: %s", sql)
	}
	if !strings.Contains(sql, "price_min <= ? OR price_max <= ?") {
		t.Errorf("missing upper-bound OR predicate: %s", sql)
	}
	if len(vars) != 4 {
		t.Errorf("vars: got %v", vars)
	}
}

func TestNameFilterTrimsWhitespace(t *testing.T) {
	_, vars := buildSQL(t, entity.ListingFilter{Name: "  Flour  "})
	if len(vars) != 2 || vars[0] != "%flour%" {
		t.Errorf("vars: got %v", vars)
	}
}
