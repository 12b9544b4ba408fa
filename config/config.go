package config

import "os"

// ServerPort resolves the listen port from the environment, defaulting to
// 8080 for local runs.
func ServerPort() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return port
}
