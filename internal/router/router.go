// internal/router/router.go
package router

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/epocha/admin-backend/internal/config"
	"github.com/epocha/admin-backend/internal/handlers"
	"github.com/epocha/admin-backend/internal/middleware"
	"github.com/epocha/admin-backend/internal/services"
	"github.com/epocha/admin-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Initialize services
	tokens := utils.NewTokenManager(cfg.Auth.SecretKey, cfg.Auth.SessionTTLHours)
	mediaService, err := services.NewMediaService(&cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize media storage: %w", err)
	}

	authService := services.NewAuthService(&cfg.Auth, tokens)
	productService := services.NewProductService(db, mediaService)
	reviewService := services.NewReviewService(db)
	colorService := services.NewColorService(db)
	formService := services.NewFormService(db, mediaService)
	categoryService := services.NewCategoryService(db)
	preCategoryService := services.NewPreCategoryService(db)
	metatagService := services.NewMetatagService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	pageHandler := handlers.NewPageHandler()
	productHandler := handlers.NewProductHandler(productService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	colorHandler := handlers.NewColorHandler(colorService)
	formHandler := handlers.NewFormHandler(formService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	preCategoryHandler := handlers.NewPreCategoryHandler(preCategoryService)
	metatagHandler := handlers.NewMetatagHandler(metatagService)

	// Per-IP limiters, budgets from config
	generalLimiter := middleware.NewRateLimiter(
		rate.Limit(cfg.Server.RateLimitPerSecond), cfg.Server.RateLimitPerSecond)
	loginLimiter := middleware.NewRateLimiter(
		rate.Every(time.Minute), cfg.Server.LoginAttemptsPerMinute)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(generalLimiter.Middleware())

	// Admin page templates and the image storage root
	r.LoadHTMLGlob("web/templates/*.html")
	r.Static("/static", cfg.Storage.StaticRoot)

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Admin UI
	r.GET("/", pageHandler.Index)
	r.GET("/admin", middleware.SessionRequired(tokens), pageHandler.Admin)

	// Authentication
	auth := r.Group("/auth")
	auth.Use(loginLimiter.Middleware())
	{
		auth.POST("/login", authHandler.Login)
	}

	// API routes
	api := r.Group("/api")
	{
		products := api.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/:id", productHandler.GetProduct)
			products.POST("", productHandler.CreateProducts)
			products.PATCH("/:id", productHandler.UpdateProduct)
			products.DELETE("", productHandler.DeleteProducts)
		}

		reviews := api.Group("/reviews")
		{
			reviews.GET("", reviewHandler.GetReviews)
			reviews.POST("", reviewHandler.CreateReviews)
			reviews.PATCH("/:id", reviewHandler.UpdateReview)
			reviews.DELETE("", reviewHandler.DeleteReviews)
		}

		colors := api.Group("/colors")
		{
			colors.GET("", colorHandler.GetColors)
			colors.POST("", colorHandler.CreateColors)
			colors.PATCH("/:id", colorHandler.UpdateColor)
			colors.DELETE("", colorHandler.DeleteColors)
		}

		forms := api.Group("/forms")
		{
			forms.GET("", formHandler.GetForms)
			forms.POST("", formHandler.CreateForms)
			forms.PATCH("/:id", formHandler.UpdateForm)
			forms.DELETE("", formHandler.DeleteForms)
		}

		categories := api.Group("/categories")
		{
			categories.GET("", categoryHandler.GetCategories)
			categories.POST("", categoryHandler.CreateCategories)
			categories.PATCH("/:id", categoryHandler.UpdateCategory)
			categories.DELETE("", categoryHandler.DeleteCategories)
		}

		preCategories := api.Group("/precategories")
		{
			preCategories.GET("", preCategoryHandler.GetPreCategories)
			preCategories.POST("", preCategoryHandler.CreatePreCategories)
			preCategories.PATCH("/:id", preCategoryHandler.UpdatePreCategory)
			preCategories.DELETE("", preCategoryHandler.DeletePreCategories)
		}

		metatags := api.Group("/metatags")
		{
			metatags.GET("", metatagHandler.GetMetatags)
			metatags.POST("", metatagHandler.CreateMetatags)
			metatags.PATCH("/:address", metatagHandler.UpdateMetatag)
			metatags.DELETE("", metatagHandler.DeleteMetatags)
		}
	}

	return r, nil
}
