package handler

import (
	"fmt"
	"strconv"

	"craftpantry/entity"

	"github.com/gin-gonic/gin"
)

// checkParams rejects requests carrying query keys outside the allowed set.
// Unknown keys are a caller mistake, not something to pass through silently.
func checkParams(c *gin.Context, allowed ...string) error {
	ok := make(map[string]bool, len(allowed))
	for _, key := range allowed {
		ok[key] = true
	}
	for key := range c.Request.URL.Query() {
		if !ok[key] {
			return fmt.Errorf("unknown query parameter %q", key)
		}
	}
	return nil
}

// floatParam parses an optional float query parameter. Absent keys return nil.
func floatParam(c *gin.Context, key string) (*float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %q", key, raw)
	}
	return &v, nil
}

// intParam parses an optional int query parameter, falling back to def.
func intParam(c *gin.Context, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, raw)
	}
	return v, nil
}

// boolParam parses an optional bool query parameter, defaulting to false.
func boolParam(c *gin.Context, key string) (bool, error) {
	raw := c.Query(key)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %q", key, raw)
	}
	return v, nil
}

// listingFilter assembles the shared filter set from query parameters.
func listingFilter(c *gin.Context) (entity.ListingFilter, error) {
	var f entity.ListingFilter
	f.Name = c.Query("name")
	f.Category = c.Query("category")
	f.Type = c.Query("type")
	f.PriceUnit = c.Query("unit")

	inStock, err := boolParam(c, "inStock")
	if err != nil {
		return f, err
	}
	f.InStockOnly = inStock

	if f.MinPrice, err = floatParam(c, "minPrice"); err != nil {
		return f, err
	}
	if f.MaxPrice, err = floatParam(c, "maxPrice"); err != nil {
		return f, err
	}
	return f, nil
}

// userLocation parses the optional lat/lng pair. Both must be present
// together.
func userLocation(c *gin.Context) (*entity.GeoPoint, error) {
	lat, err := floatParam(c, "lat")
	if err != nil {
		return nil, err
	}
	lng, err := floatParam(c, "lng")
	if err != nil {
		return nil, err
	}
	if lat == nil && lng == nil {
		return nil, nil
	}
	if lat == nil || lng == nil {
		return nil, fmt.Errorf("lat and lng must be supplied together")
	}
	return &entity.GeoPoint{Lat: *lat, Lng: *lng}, nil
}
