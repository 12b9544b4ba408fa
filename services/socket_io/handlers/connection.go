package handlers

import (
	"log"

	game_models "github.com/YTD26/Big-Five/models/game"
	game "github.com/YTD26/Big-Five/services/game"
	socketio_types "github.com/YTD26/Big-Five/services/socket_io/types"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// Function to handle socket.io client disconnections. The dropped connection
// is removed from every room that seats it, the remaining player is notified
// and rooms left empty are deleted from the registry. A mid-game disconnect
// does not resolve the game, the remaining player is not declared winner.
func HandleDisconnecting(registry *game.Registry, client *socket.Socket,
	sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		ref := game_models.ConnectionRef(client.Id())
		log.Printf("[DISCONNECT] Socket disconnecting: %s", client.Id())

		for _, room := range registry.Rooms() {
			if !room.RemovePlayer(ref) {
				continue
			}
			log.Printf("[DISCONNECT] Removed connection %s from room %s", client.Id(), room.ID)

			for _, p := range room.Roster() {
				conn, exists := sio.GetConnection(string(p.Conn))
				if !exists {
					continue
				}
				conn.Emit("playerDisconnected", gin.H{
					"message": "Your opponent has disconnected",
				})
			}

			if room.IsEmpty() {
				registry.Delete(room.ID)
				log.Printf("[DISCONNECT] Room %s is empty, deleted", room.ID)
			}
		}

		sio.RemoveConnection(string(client.Id()))
		log.Printf("[DISCONNECT-DONE] Socket disconnected: %s", client.Id())
	}
}
