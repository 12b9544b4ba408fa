package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	game "github.com/YTD26/Big-Five/services/game"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRoomRouter(registry *game.Registry) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/rooms/:room_id", GetRoomInfo(registry))
	return router
}

func TestGetRoomInfo(t *testing.T) {
	registry := game.NewRegistry()
	room, err := registry.CreateRoom()
	require.NoError(t, err)
	room.AddPlayer("conn-0", "alice")

	router := setupRoomRouter(registry)

	req, _ := http.NewRequest("GET", "/rooms/"+room.ID, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	assert.Equal(t, room.ID, response["room_id"])
	assert.Equal(t, float64(1), response["player_count"])
	assert.Equal(t, game.LifecycleWaiting, response["state"])
}

func TestGetRoomInfoActiveGame(t *testing.T) {
	registry := game.NewRegistry()
	room, err := registry.CreateRoom()
	require.NoError(t, err)
	room.AddPlayer("conn-0", "alice")
	room.AddPlayer("conn-1", "bob")

	router := setupRoomRouter(registry)

	req, _ := http.NewRequest("GET", "/rooms/"+room.ID, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	assert.Equal(t, float64(2), response["player_count"])
	assert.Equal(t, game.LifecycleActive, response["state"])

	// The probe must never leak game state, let alone hidden cards.
	assert.NotContains(t, response, "players")
	assert.NotContains(t, response, "deck")
}

func TestGetRoomInfoNotFound(t *testing.T) {
	router := setupRoomRouter(game.NewRegistry())

	req, _ := http.NewRequest("GET", "/rooms/NOPE42", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
