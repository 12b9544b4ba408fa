package handlers

import (
	"log"

	game "github.com/YTD26/Big-Five/services/game"
	socketio_types "github.com/YTD26/Big-Five/services/socket_io/types"
	socketio_utils "github.com/YTD26/Big-Five/services/socket_io/utils"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// Function to handle one play-card move. All validation happens inside the
// room under its own lock; any rejection goes back to the acting connection
// only, while a successful move fans out a fresh redacted view per player.
func HandlePlayCard(registry *game.Registry, client *socket.Socket,
	sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		payload, ok := socketio_utils.EventPayload(args)
		if !ok {
			client.Emit("error", gin.H{"message": "Invalid action"})
			return
		}

		roomID, _ := socketio_utils.PayloadString(payload, "roomId")
		playerID, okPlayer := socketio_utils.PayloadInt(payload, "playerId")
		cardID, _ := socketio_utils.PayloadString(payload, "cardId")
		targetAreaID, okArea := socketio_utils.PayloadInt(payload, "targetAreaId")
		if !okPlayer || !okArea {
			client.Emit("error", gin.H{"message": "Invalid action"})
			return
		}

		room, found := registry.Find(roomID)
		if !found {
			log.Printf("[PLAY-ERROR] Room not found: %s", roomID)
			return
		}

		if err := room.PlayCard(playerID, cardID, targetAreaID); err != nil {
			// The client only learns that the move was rejected, the precise
			// reason stays in the server log.
			log.Printf("[PLAY-ERROR] Room %s, player %d: %v", roomID, playerID, err)
			client.Emit("error", gin.H{"message": "Invalid action"})
			return
		}

		for _, p := range room.Roster() {
			conn, exists := sio.GetConnection(string(p.Conn))
			if !exists {
				continue
			}
			conn.Emit("gameStateUpdated", gin.H{
				"gameState": room.ViewFor(p.ID),
			})
		}
		log.Printf("[PLAY-SUCCESS] Room %s, player %d played card %s to area %d",
			roomID, playerID, cardID, targetAreaID)
	}
}
