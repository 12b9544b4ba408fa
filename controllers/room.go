package controllers

import (
	"net/http"

	game "github.com/YTD26/Big-Five/services/game"

	"github.com/gin-gonic/gin"
)

// @Summary Gives info of a room
// @Description Given a room code, returns its player count and lifecycle state. Never exposes cards.
// @Tags room
// @Produce json
// @Param room_id path string true "6 character room code"
// @Success 200 {object} object{room_id=string,player_count=integer,state=string}
// @Failure 404 {object} object{error=string}
// @Router /rooms/{room_id} [get]
func GetRoomInfo(registry *game.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomID := c.Param("room_id")

		room, found := registry.Find(roomID)
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"room_id":      room.ID,
			"player_count": room.PlayerCount(),
			"state":        room.Lifecycle(),
		})
	}
}
