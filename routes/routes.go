package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"motostream-api/config"
	"motostream-api/controllers"
	"motostream-api/middleware"
)

// SetupCORS allows the dealership panel to call the API from another origin.
func SetupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Controllers
	authController := controllers.NewAuthController(db, cfg.JWTSecret)
	motorcycleController := controllers.NewMotorcycleController(db)
	containerController := controllers.NewContainerController(db)
	customerController := controllers.NewCustomerController(db)
	saleController := controllers.NewSaleController(db)
	dashboardController := controllers.NewDashboardController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API version 1
	v1 := r.Group("/api/v1")

	// Auth routes (public)
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		// Stock routes
		motorcycles := protected.Group("/motorcycles")
		{
			motorcycles.GET("/", motorcycleController.GetStock)
			motorcycles.POST("/", motorcycleController.CreateMotorcycle)
			motorcycles.GET("/chassis/:chassis", motorcycleController.FindByChassis)
			motorcycles.GET("/chassis/:chassis/specs", motorcycleController.GetModelSpecs)
			motorcycles.PUT("/:id/registration", motorcycleController.UpdateRegistration)
			motorcycles.DELETE("/:id", motorcycleController.DeleteMotorcycle)
		}

		// Container routes
		containers := protected.Group("/containers")
		{
			containers.GET("/", containerController.GetContainers)
			containers.POST("/", containerController.CreateContainer)
			containers.GET("/:id", containerController.GetContainer)
			containers.POST("/:id/bikes", containerController.ImportBikes)
		}

		// Customer routes
		customers := protected.Group("/customers")
		{
			customers.GET("/", customerController.GetCustomers)
			customers.GET("/:id", customerController.GetCustomer)
			customers.PUT("/:id/notes", customerController.UpdateNotes)
		}

		// Sale routes
		sales := protected.Group("/sales")
		{
			sales.GET("/", saleController.GetSales)
			sales.POST("/", saleController.SubmitSale)
			sales.GET("/:id", saleController.GetSale)
		}

		// Dashboard routes
		dashboard := protected.Group("/dashboard")
		{
			dashboard.GET("/stats", dashboardController.GetStats)
			dashboard.GET("/recent-sales", dashboardController.GetRecentSales)
		}
	}
}
