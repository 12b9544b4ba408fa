package handlers

import (
	"log"

	game "github.com/YTD26/Big-Five/services/game"
	socketio_types "github.com/YTD26/Big-Five/services/socket_io/types"
	socketio_utils "github.com/YTD26/Big-Five/services/socket_io/utils"

	game_models "github.com/YTD26/Big-Five/models/game"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// Function to handle the act of creating a room. The creator is seated as
// player 0 and the room waits for a second player.
func HandleCreateRoom(registry *game.Registry, client *socket.Socket) func(args ...interface{}) {
	return func(args ...interface{}) {
		payload, ok := socketio_utils.EventPayload(args)
		if !ok {
			log.Printf("[CREATE-ERROR] Missing payload - Socket ID: %s", client.Id())
			client.Emit("error", gin.H{"message": "Missing room payload"})
			return
		}
		playerName, _ := socketio_utils.PayloadString(payload, "playerName")

		room, err := registry.CreateRoom()
		if err != nil {
			log.Printf("[CREATE-ERROR] %v", err)
			client.Emit("error", gin.H{"message": "Could not create room"})
			return
		}

		playerID, _ := room.AddPlayer(game_models.ConnectionRef(client.Id()), playerName)
		client.Join(socket.Room(room.ID))

		client.Emit("roomCreated", gin.H{"roomId": room.ID, "playerId": playerID})
		log.Printf("[CREATE-SUCCESS] Room %s created by %s", room.ID, playerName)
	}
}

// Function to handle joining an existing room by code. If this join fills the
// room, the game is dealt and both players receive their own redacted view of
// the opening state.
func HandleJoinRoom(registry *game.Registry, client *socket.Socket,
	sio *socketio_types.SocketServer) func(args ...interface{}) {
	return func(args ...interface{}) {
		payload, ok := socketio_utils.EventPayload(args)
		if !ok {
			log.Printf("[JOIN-ERROR] Missing payload - Socket ID: %s", client.Id())
			client.Emit("error", gin.H{"message": "Missing room payload"})
			return
		}

		roomID, _ := socketio_utils.PayloadString(payload, "roomId")
		playerName, _ := socketio_utils.PayloadString(payload, "playerName")
		log.Printf("[JOIN] Processing room %s for player %s", roomID, playerName)

		room, found := registry.Find(roomID)
		if !found {
			log.Printf("[JOIN-ERROR] Room not found: %s", roomID)
			client.Emit("error", gin.H{"message": "Room not found"})
			return
		}

		playerID, added := room.AddPlayer(game_models.ConnectionRef(client.Id()), playerName)
		if !added {
			log.Printf("[JOIN-ERROR] Room is full: %s", roomID)
			client.Emit("error", gin.H{"message": "Room is full"})
			return
		}

		client.Join(socket.Room(room.ID))
		client.Emit("roomJoined", gin.H{"roomId": room.ID, "playerId": playerID})
		log.Printf("[JOIN-SUCCESS] Player %s joined room %s as %d", playerName, roomID, playerID)

		if room.IsFull() {
			for _, p := range room.Roster() {
				conn, exists := sio.GetConnection(string(p.Conn))
				if !exists {
					continue
				}
				conn.Emit("gameStarted", gin.H{
					"gameState":    room.ViewFor(p.ID),
					"yourPlayerId": p.ID,
				})
			}
			log.Printf("[GAME-START] Game started in room %s", roomID)
		}
	}
}
