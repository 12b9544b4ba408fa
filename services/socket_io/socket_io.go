package socket_io

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	game "github.com/YTD26/Big-Five/services/game"
	"github.com/YTD26/Big-Five/services/socket_io/handlers"
	socketio_types "github.com/YTD26/Big-Five/services/socket_io/types"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io/v2/socket"
)

type MySocketServer socketio_types.SocketServer

// Start wires the socket.io server into the gin router and registers the
// game events for every incoming connection. The registry is injected here;
// the socket layer owns connections, the game packages own everything else.
func (sio *MySocketServer) Start(router *gin.Engine, registry *game.Registry) {
	c := socket.DefaultServerOptions()
	c.SetServeClient(true)
	// NOTE: higher ping interval and timeout to 1) reduce network load and 2) support slower networks
	c.SetPingInterval(5 * time.Second)
	c.SetPingTimeout(3 * time.Second)
	c.SetMaxHttpBufferSize(1000000)
	c.SetConnectTimeout(10 * time.Second)
	c.SetTransports(types.NewSet("polling", "websocket"))
	c.SetCors(&types.Cors{
		Origin:      "*",
		Credentials: true,
	})

	// KEY: initialize the map, it panics otherwise
	sio.Connections = make(map[string]*socket.Socket)

	sio.Sio_server = socket.NewServer(nil, nil)
	sio.Sio_server.On("connection", func(clients ...interface{}) {
		client := clients[0].(*socket.Socket)

		// Add connection to map
		(*socketio_types.SocketServer)(sio).AddConnection(string(client.Id()), client)

		fmt.Println("An individual just connected!: ", client.Id())

		// Create a room and sit down as player 0
		client.On("createRoom", handlers.HandleCreateRoom(registry, client))

		// Join an existing room by its 6 character code
		client.On("joinRoom", handlers.HandleJoinRoom(registry, client, (*socketio_types.SocketServer)(sio)))

		// Play a card from the personal stack onto a play area
		client.On("playCard", handlers.HandlePlayCard(registry, client, (*socketio_types.SocketServer)(sio)))

		// NOTE: will remove sio connection from map and sweep rooms
		client.On("disconnecting", handlers.HandleDisconnecting(registry, client, (*socketio_types.SocketServer)(sio)))
	})

	router.POST("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))
	router.GET("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))

	SignalC := make(chan os.Signal, 1)

	signal.Notify(SignalC, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		for s := range SignalC {
			switch s {
			case syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT:
				registry.Teardown()
				sio.Sio_server.Close(nil)
				os.Exit(0)
			}
		}
	}()

	fmt.Println("Socket server started")
}
