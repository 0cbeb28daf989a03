// internal/router/router.go
package router

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Ashraf-Atef1/full-stack-task/internal/config"
	"github.com/Ashraf-Atef1/full-stack-task/internal/handlers"
	"github.com/Ashraf-Atef1/full-stack-task/internal/middleware"
	"github.com/Ashraf-Atef1/full-stack-task/internal/services"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	apartmentService := services.NewApartmentService(db)

	// Initialize handlers
	apartmentHandler := handlers.NewApartmentHandler(apartmentService, cfg.Environment)
	uploadHandler := handlers.NewUploadHandler(cfg.Upload, cfg.Server.BaseURL)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.LanguageMiddleware())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
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
		apartments := v1.Group("/apartments")
		{
			apartments.GET("", apartmentHandler.GetApartments)
			apartments.GET("/:id", apartmentHandler.GetApartment)

			writes := apartments.Group("")
			writes.Use(middleware.WriteRateLimit())
			{
				writes.POST("", apartmentHandler.CreateApartment)
				writes.PUT("/:id", apartmentHandler.UpdateApartment)
				writes.DELETE("/:id", apartmentHandler.DeleteApartment)
			}
		}

		uploads := v1.Group("/uploads")
		uploads.Use(middleware.UploadRateLimit())
		{
			uploads.POST("/apartment-image", uploadHandler.UploadApartmentImage)
			uploads.POST("/apartment-images", uploadHandler.UploadApartmentImages)
		}
	}

	// Uploaded files are served from the parent of the apartment upload dir
	// so the generated /uploads/apartments/... URLs resolve.
	r.Static("/uploads", filepath.Dir(cfg.Upload.Path))

	return r
}
