package socketio_utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventPayload(t *testing.T) {
	payload, ok := EventPayload([]interface{}{map[string]interface{}{"roomId": "ABC123"}})
	assert.True(t, ok)
	assert.Equal(t, "ABC123", payload["roomId"])

	_, ok = EventPayload(nil)
	assert.False(t, ok)

	_, ok = EventPayload([]interface{}{"not an object"})
	assert.False(t, ok)
}

func TestPayloadFields(t *testing.T) {
	payload := map[string]interface{}{
		"roomId":       "ABC123",
		"playerId":     float64(1), // JSON numbers decode as float64
		"targetAreaId": 2,
	}

	roomID, ok := PayloadString(payload, "roomId")
	assert.True(t, ok)
	assert.Equal(t, "ABC123", roomID)

	_, ok = PayloadString(payload, "playerId")
	assert.False(t, ok)

	playerID, ok := PayloadInt(payload, "playerId")
	assert.True(t, ok)
	assert.Equal(t, 1, playerID)

	areaID, ok := PayloadInt(payload, "targetAreaId")
	assert.True(t, ok)
	assert.Equal(t, 2, areaID)

	_, ok = PayloadInt(payload, "missing")
	assert.False(t, ok)
}
