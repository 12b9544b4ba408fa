package game

// ConnectionRef is an opaque handle to a transport connection. The game core
// only ever compares it for identity, it never parses it.
type ConnectionRef string

/*
 * 'Player' is one seat in a room. ID is assigned by join order (0 or 1) and
 * is never reused within a room, even if the other player leaves.
 */
type Player struct {
	ID            int           `json:"id"`
	Conn          ConnectionRef `json:"-"`
	Name          string        `json:"name"`
	Hand          []Card        `json:"hand"`
	PersonalStack []Card        `json:"personalStack"`
	DiscardPile   []Card        `json:"discardPile"`
	Score         int           `json:"score"`
	Position      int           `json:"position"`
}
