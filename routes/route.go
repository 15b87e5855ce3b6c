package routes

import (
	"net/http"

	"craftpantry/db"
	"craftpantry/entity"
	"craftpantry/handler"
	"craftpantry/middleware"
	"craftpantry/model"
	"craftpantry/repository"
	"craftpantry/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes opens the database, migrates the schema, wires the engine and
// registers the API routes.
func SetupRoutes(r *gin.Engine, config *entity.Config) error {

	if err := db.InitDB(config); err != nil {
		return err
	}
	gormDbInstance := db.GetDBInstance()
	migrationErr := gormDbInstance.AutoMigrate(
		&model.Vendor{},
		&model.ItemListing{},
		&model.ListingRating{},
	)

	if migrationErr != nil {
		return migrationErr
	}

	listingRepository := repository.NewListingRepository(gormDbInstance)
	vendorRepository := repository.NewVendorRepository(gormDbInstance)

	compareService := service.NewCompareService(listingRepository, vendorRepository)
	statsService := service.NewStatsService(listingRepository)
	popularService := service.NewPopularService(listingRepository)
	proximityService := service.NewProximityService(listingRepository, vendorRepository)

	searchHandler := handler.NewSearchHandler(compareService, statsService, popularService)
	listingHandler := handler.NewListingHandler(proximityService)

	r.Use(middleware.CORS())

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	searchRoutes := api.Group("/search")
	searchRoutes.GET("/compare", searchHandler.Compare)
	searchRoutes.GET("/stats", searchHandler.Stats)
	searchRoutes.GET("/popular", searchHandler.Popular)

	listingRoutes := api.Group("/listings")
	listingRoutes.GET("/search", listingHandler.Search)

	return nil
}
