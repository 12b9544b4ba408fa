package socketio_utils

// EventPayload pulls the first event argument as a structured payload.
// socket.io delivers JSON objects as map[string]interface{}.
func EventPayload(args []interface{}) (map[string]interface{}, bool) {
	if len(args) < 1 {
		return nil, false
	}
	payload, ok := args[0].(map[string]interface{})
	return payload, ok
}

// PayloadString reads a string field from an event payload.
func PayloadString(payload map[string]interface{}, key string) (string, bool) {
	value, ok := payload[key].(string)
	return value, ok
}

// PayloadInt reads a numeric field from an event payload. JSON numbers come
// through the parser as float64.
func PayloadInt(payload map[string]interface{}, key string) (int, bool) {
	switch value := payload[key].(type) {
	case float64:
		return int(value), true
	case int:
		return value, true
	}
	return 0, false
}
