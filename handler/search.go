package handler

import (
	"context"
	"errors"
	"net/http"

	"craftpantry/entity"
	"craftpantry/service"

	"github.com/gin-gonic/gin"
)

// CompareSearcher is the comparison engine surface the handler depends on.
type CompareSearcher interface {
	Search(ctx context.Context, req entity.SearchRequest) (*entity.SearchResult, error)
}

// StatsProvider computes price statistics for a named item.
type StatsProvider interface {
	PriceStats(ctx context.Context, name, category, itemType string) (*entity.PriceStats, error)
}

// PopularProvider lists coverage-ranked popular items.
type PopularProvider interface {
	Popular(ctx context.Context, itemType string, limit int) ([]entity.PopularItem, error)
}

type SearchHandler interface {
	Compare(c *gin.Context)
	Stats(c *gin.Context)
	Popular(c *gin.Context)
}

type searchHandler struct {
	compare CompareSearcher
	stats   StatsProvider
	popular PopularProvider
}

func NewSearchHandler(compare CompareSearcher, stats StatsProvider, popular PopularProvider) SearchHandler {
	return &searchHandler{
		compare: compare,
		stats:   stats,
		popular: popular,
	}
}

// Compare handles GET /api/search/compare
func (h *searchHandler) Compare(c *gin.Context) {
	if err := checkParams(c, "name", "category", "type", "inStock", "minPrice", "maxPrice", "unit", "sortBy", "lat", "lng"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filter, err := listingFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	loc, err := userLocation(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.compare.Search(c.Request.Context(), entity.SearchRequest{
		Filter:       filter,
		SortBy:       c.Query("sortBy"),
		UserLocation: loc,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// Stats handles GET /api/search/stats
func (h *searchHandler) Stats(c *gin.Context) {
	if err := checkParams(c, "name", "category", "type"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stats, err := h.stats.PriceStats(c.Request.Context(), c.Query("name"), c.Query("category"), c.Query("type"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNameRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrNoListings):
			c.JSON(http.StatusNotFound, gin.H{"error": "no listings found for item"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "stats failed"})
		}
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Popular handles GET /api/search/popular
func (h *searchHandler) Popular(c *gin.Context) {
	if err := checkParams(c, "type", "limit"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	limit, err := intParam(c, "limit", 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items, err := h.popular.Popular(c.Request.Context(), c.Query("type"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "popular items failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"items": items,
	})
}
