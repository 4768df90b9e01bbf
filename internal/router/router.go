// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/variant-catalog/internal/catalog"
	"github.com/javajoker/variant-catalog/internal/config"
	"github.com/javajoker/variant-catalog/internal/handlers"
	"github.com/javajoker/variant-catalog/internal/i18n"
	"github.com/javajoker/variant-catalog/internal/middleware"
	"github.com/javajoker/variant-catalog/internal/services"
	"github.com/javajoker/variant-catalog/internal/store"
	"github.com/javajoker/variant-catalog/internal/utils"
)

const version = "1.0.0"

// Initialize wires services and handlers onto a new engine. The returned
// limiters must be stopped when the server shuts down.
func Initialize(s store.Store, catalogService *services.CatalogService, cfg *config.Config) (*gin.Engine, *middleware.RateLimiters) {
	queryService := catalog.NewQueryService(s)

	// Initialize handlers
	productHandler := handlers.NewProductHandler(catalogService, queryService)
	variantHandler := handlers.NewVariantHandler(catalogService, queryService)
	colorHandler := handlers.NewColorHandler(catalogService, queryService)
	imageHandler := handlers.NewImageHandler(catalogService, queryService)

	limiters := middleware.NewRateLimiters(cfg.RateLimit)

	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.I18nMiddleware())
	r.Use(limiters.General.Middleware())

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, i18n.T(utils.GetLangFromContext(c), i18n.KeyWelcome))
	})

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"version":   version,
			"store":     cfg.Store.Driver,
			"languages": i18n.GetSupportedLanguages(),
		})
	})

	products := r.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.POST("", productHandler.CreateProduct)
		products.GET("/:id", productHandler.GetProduct)
		products.PUT("/:id", productHandler.UpdateProduct)
		products.DELETE("/:id", productHandler.DeleteProduct)

		products.GET("/:id/variants", variantHandler.GetVariants)
		products.POST("/:id/variants", variantHandler.CreateVariant)

		products.GET("/:id/images", imageHandler.GetImages)
		products.POST("/:id/images", imageHandler.AttachImage)
		products.POST("/:id/upload-image", limiters.Upload.Middleware(), imageHandler.UploadProductImage)
	}

	variants := r.Group("/variants")
	{
		variants.PUT("/:id", variantHandler.UpdateVariant)
		variants.DELETE("/:id", variantHandler.DeleteVariant)
	}

	colors := r.Group("/colors")
	{
		colors.GET("", colorHandler.GetColors)
		colors.POST("", colorHandler.CreateColor)
	}

	r.POST("/upload-image", limiters.Upload.Middleware(), imageHandler.UploadFile)

	// Local uploads are served from disk; S3 uploads carry absolute URLs.
	if cfg.AWS.AccessKeyID == "" {
		r.Static(cfg.Storage.PublicPath, cfg.Storage.UploadDir)
	}

	return r, limiters
}
