package routes

import (
	"ecolearn_backend/internal/handlers"
	"ecolearn_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все HTTP маршруты
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.UserHandler.RegisterRoutes(api)
		appHandlers.ProgressHandler.RegisterRoutes(api)
	}

	logger.Info("HTTP routes registered")
}
