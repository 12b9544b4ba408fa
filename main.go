package main

import (
	"log"
	"os"

	"github.com/YTD26/Big-Five/config"
	"github.com/YTD26/Big-Five/middleware"
	"github.com/YTD26/Big-Five/routes"
	game "github.com/YTD26/Big-Five/services/game"
	"github.com/YTD26/Big-Five/services/socket_io"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// @title Big Five API
// @version 1.0
// @description Gin-Gonic server hosting the "Big Five" two-player card game
// @BasePath /
func main() {
	godotenv.Load()
	log.Println("Setting up server...")

	if os.Getenv("PROD") == "true" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Registry starts empty and lives for the whole process; rooms are
	// in-memory only and vanish on restart.
	registry := game.NewRegistry()

	r := gin.Default()

	middleware.SetUpMiddleware(r)

	routes.SetupRoutes(r, registry)

	var sio socket_io.MySocketServer
	sio.Start(r, registry)

	port := config.ServerPort()

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
