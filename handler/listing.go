package handler

import (
	"context"
	"fmt"
	"net/http"

	"craftpantry/entity"

	"github.com/gin-gonic/gin"
)

// ProximitySearcher is the paginated listing browse the handler depends on.
type ProximitySearcher interface {
	Search(ctx context.Context, req entity.ProximityRequest) (*entity.PageResult, error)
}

type ListingHandler interface {
	Search(c *gin.Context)
}

type listingHandler struct {
	proximity ProximitySearcher
}

func NewListingHandler(proximity ProximitySearcher) ListingHandler {
	return &listingHandler{
		proximity: proximity,
	}
}

// Search handles GET /api/listings/search
func (h *listingHandler) Search(c *gin.Context) {
	if err := checkParams(c, "name", "category", "type", "inStock", "minPrice", "maxPrice", "unit",
		"lat", "lng", "maxDistance", "page", "limit", "sortBy", "sortOrder"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter, err := listingFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	geo, err := geoFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := intParam(c, "page", 1)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	limit, err := intParam(c, "limit", 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.proximity.Search(c.Request.Context(), entity.ProximityRequest{
		Filter:    filter,
		Geo:       geo,
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "listing search failed"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// geoFilter parses the optional lat/lng/maxDistance triple. maxDistance is in
// meters.
func geoFilter(c *gin.Context) (*entity.GeoFilter, error) {
	loc, err := userLocation(c)
	if err != nil {
		return nil, err
	}
	dist, err := floatParam(c, "maxDistance")
	if err != nil {
		return nil, err
	}
	if loc == nil && dist == nil {
		return nil, nil
	}
	if loc == nil || dist == nil {
		// A radius needs a center and vice versa.
		return nil, fmt.Errorf("lat, lng and maxDistance must be supplied together")
	}
	return &entity.GeoFilter{Lat: loc.Lat, Lng: loc.Lng, MaxDistance: *dist}, nil
}
