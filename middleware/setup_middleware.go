package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetUpMiddleware installs the CORS policy: any origin, the two methods the
// game client actually uses. The socket.io handler carries its own CORS
// settings on top of this.
func SetUpMiddleware(r *gin.Engine) {
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST"}
	r.Use(cors.New(config))
}
