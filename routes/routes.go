package routes

import (
	"github.com/YTD26/Big-Five/controllers"
	game "github.com/YTD26/Big-Five/services/game"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, registry *game.Registry) {
	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes group
	api := router.Group("/")

	api.GET("/ping", controllers.Ping)

	// Health check for the hosting platform
	api.GET("/health", controllers.Health)

	api.GET("/rooms/:room_id", controllers.GetRoomInfo(registry))
}
