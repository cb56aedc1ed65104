// internal/router/router.go
package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/epoint/product-comparator/internal/config"
	"github.com/epoint/product-comparator/internal/handlers"
	"github.com/epoint/product-comparator/internal/middleware"
	"github.com/epoint/product-comparator/internal/services"
	"github.com/epoint/product-comparator/pkg/comparator"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	catalogService := services.NewCatalogService(db, cfg.Catalog)
	comparisonService := services.NewComparisonService(
		catalogService,
		comparator.NewConfig(cfg.Catalog.Slots, cfg.Catalog.AnchorBrand),
		time.Duration(cfg.Comparison.SessionTTL)*time.Minute,
	)

	// Initialize handlers
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	comparisonHandler := handlers.NewComparisonHandler(comparisonService)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Catalog routes
		catalog := v1.Group("/catalog")
		{
			catalog.GET("/categories", catalogHandler.GetCategories)
			catalog.GET("/brands", catalogHandler.GetBrands)
			catalog.GET("/products", middleware.SearchRateLimit(), catalogHandler.GetProducts)
			catalog.GET("/products/:id", catalogHandler.GetProductDetail)
			catalog.GET("/strip", catalogHandler.GetStrip)

			// Action-discriminated endpoint kept for clients migrating
			// off the admin-ajax style API.
			catalog.POST("/query", middleware.SearchRateLimit(), catalogHandler.LegacyQuery)
		}

		// Comparison session routes
		comparisons := v1.Group("/comparisons")
		{
			comparisons.POST("", comparisonHandler.CreateComparison)
			comparisons.GET("/:id", comparisonHandler.GetComparison)
			comparisons.PUT("/:id/slots/:slot", comparisonHandler.SelectSlot)
			comparisons.DELETE("/:id/slots/:slot", comparisonHandler.RemoveSlot)
			comparisons.DELETE("/:id", comparisonHandler.DeleteComparison)
		}
	}

	return r
}
