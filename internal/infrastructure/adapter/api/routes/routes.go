package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authport "github.com/fintrack-app/fintrack/internal/domain/port/auth"
	coreport "github.com/fintrack-app/fintrack/internal/domain/port/core"
	"github.com/fintrack-app/fintrack/internal/infrastructure/adapter/api/handler"
	"github.com/fintrack-app/fintrack/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	tokens authport.TokenService,
	logger coreport.Logger,
	authHandler *handler.AuthHandler,
	categoryHandler *handler.CategoryHandler,
	transactionHandler *handler.TransactionHandler,
	dashboardHandler *handler.DashboardHandler,
) {
	// Public routes
	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
	}

	// Everything under /api requires a valid token
	apiRoutes := router.Group("/api")
	apiRoutes.Use(middleware.RequireAuth(tokens, logger))
	{
		apiRoutes.POST("/categories", categoryHandler.Create)
		apiRoutes.DELETE("/categories/:id", categoryHandler.Delete)

		apiRoutes.POST("/transactions", transactionHandler.Create)
		apiRoutes.PUT("/transactions/:id", transactionHandler.Update)
		apiRoutes.DELETE("/transactions/:id", transactionHandler.Delete)

		apiRoutes.GET("/dashboard", dashboardHandler.Overview)
		apiRoutes.GET("/dashboard/stats", dashboardHandler.Stats)

		apiRoutes.GET("/profile", authHandler.Profile)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(cors.Default())
}
