package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Endpoint just pings the server
// @Description Returns a basic message
// @Tags test
// @Produce json
// @Success 200 {object} object{message=string}
// @Router /ping [get]
func Ping(c *gin.Context) {
	c.JSON(200, gin.H{"message": "pong"})
}

// @Summary Liveness probe
// @Description Returns a fixed OK body for platform health checks
// @Tags test
// @Produce plain
// @Success 200 {string} string "OK"
// @Router /health [get]
func Health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}
