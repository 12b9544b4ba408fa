package game

// TurnPhasePlay is the only phase the current ruleset uses.
const TurnPhasePlay = "play"

/*
 * 'PlayArea' is one of the three shared zones where cards are collected to
 * attempt a big five combo. MaxSpecials is stored but not enforced yet.
 */
type PlayArea struct {
	ID          int    `json:"id"`
	Cards       []Card `json:"cards"`
	MaxSpecials int    `json:"maxSpecials"`
}

/*
 * 'GameState' is the authoritative, server-only snapshot for one room.
 * Clients never see this struct directly, they get a per-player view.
 *
 * Invariant: deck + personal stacks + discard piles + play areas + hands
 * always hold 54 cards in total once the game has been dealt. The combo sink
 * (clearing a completed play area) is the one deliberate exception.
 */
type GameState struct {
	Deck          []Card      `json:"deck"`
	Players       []*Player   `json:"players"`
	PlayAreas     []*PlayArea `json:"playAreas"`
	DiscardStack  []Card      `json:"discardStack"`
	CurrentPlayer int         `json:"currentPlayer"`
	TurnPhase     string      `json:"turnPhase"`
	Winner        *int        `json:"winner"`
}
