package game

import (
	"sync"

	game_constants "github.com/YTD26/Big-Five/constants/game"
	game_models "github.com/YTD26/Big-Five/models/game"
)

// Room lifecycle states, exposed read-only over the REST surface.
const (
	LifecycleWaiting  = "waiting"
	LifecycleActive   = "active"
	LifecycleFinished = "finished"
)

/*
 * 'Room' owns one game between exactly two players. Every mutation goes
 * through the room mutex, so a play-card transition (validate -> mutate ->
 * project) is atomic towards any observer. Different rooms share nothing and
 * run fully independently.
 */
type Room struct {
	mu      sync.Mutex
	ID      string
	Players []*game_models.Player
	State   *game_models.GameState
}

func NewRoom(id string) *Room {
	return &Room{ID: id}
}

// AddPlayer seats a new player and returns its assigned id (join order, 0 or
// 1). Returns false without seating anyone when the room is already full.
// The moment the second player sits down the game is dealt and started.
func (r *Room) AddPlayer(conn game_models.ConnectionRef, name string) (int, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.Players) >= game_constants.MaxPlayersPerRoom {
		return -1, false
	}

	player := &game_models.Player{
		ID:            len(r.Players),
		Conn:          conn,
		Name:          name,
		Hand:          []game_models.Card{},
		PersonalStack: []game_models.Card{},
		DiscardPile:   []game_models.Card{},
	}
	r.Players = append(r.Players, player)

	if len(r.Players) == game_constants.MaxPlayersPerRoom {
		r.initializeGame()
	}

	return player.ID, true
}

// RemovePlayer drops the player owning the given connection from the roster.
// Remaining players keep their ids, they are never renumbered. The game
// state, if any, is left untouched.
func (r *Room) RemovePlayer(conn game_models.ConnectionRef) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.Players {
		if p.Conn == conn {
			r.Players = append(r.Players[:i], r.Players[i+1:]...)
			return true
		}
	}
	return false
}

func (r *Room) IsFull() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Players) == game_constants.MaxPlayersPerRoom
}

func (r *Room) IsEmpty() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Players) == 0
}

func (r *Room) PlayerCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Players)
}

// Roster returns a snapshot of the current seating, safe to iterate while
// other events mutate the room.
func (r *Room) Roster() []*game_models.Player {
	r.mu.Lock()
	defer r.mu.Unlock()
	roster := make([]*game_models.Player, len(r.Players))
	copy(roster, r.Players)
	return roster
}

// Lifecycle reports waiting (seats free, no game), active (dealt, no winner
// yet) or finished (winner set).
func (r *Room) Lifecycle() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch {
	case r.State == nil:
		return LifecycleWaiting
	case r.State.Winner != nil:
		return LifecycleFinished
	default:
		return LifecycleActive
	}
}

// initializeGame deals a fresh shuffled deck: 8 cards to player 0, then 8 to
// player 1, consumed from the front of the deck. The 38 card remainder stays
// on the state as the stored draw pile. Caller must hold r.mu.
func (r *Room) initializeGame() {
	deck := BuildDeck()
	ShuffleDeck(deck)

	for _, p := range r.Players {
		p.PersonalStack = append(p.PersonalStack, deck[:game_constants.PersonalStackSize]...)
		deck = deck[game_constants.PersonalStackSize:]
	}

	areas := make([]*game_models.PlayArea, 0, game_constants.PlayAreaCount)
	for i := 0; i < game_constants.PlayAreaCount; i++ {
		areas = append(areas, &game_models.PlayArea{
			ID:          i,
			Cards:       []game_models.Card{},
			MaxSpecials: game_constants.MaxSpecialsPerArea,
		})
	}

	players := make([]*game_models.Player, len(r.Players))
	copy(players, r.Players)

	r.State = &game_models.GameState{
		Deck:          deck,
		Players:       players,
		PlayAreas:     areas,
		DiscardStack:  []game_models.Card{},
		CurrentPlayer: 0,
		TurnPhase:     game_models.TurnPhasePlay,
	}
}

// PlayCard validates and applies one move. Preconditions fail closed: on any
// error nothing has been mutated. On success the card has moved to the target
// area, a completed combo has been scored and cleared, the turn has passed to
// the other player and the win condition has been evaluated.
func (r *Room) PlayCard(playerID int, cardID string, targetAreaID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.State == nil {
		return ErrNoActiveGame
	}
	if playerID < 0 || playerID >= len(r.State.Players) {
		return ErrCardNotOwned
	}

	player := r.State.Players[playerID]

	cardIndex := -1
	for i, c := range player.PersonalStack {
		if c.ID == cardID {
			cardIndex = i
			break
		}
	}
	if cardIndex == -1 {
		return ErrCardNotOwned
	}
	if r.State.CurrentPlayer != playerID {
		return ErrNotYourTurn
	}

	var targetArea *game_models.PlayArea
	for _, area := range r.State.PlayAreas {
		if area.ID == targetAreaID {
			targetArea = area
			break
		}
	}
	if targetArea == nil {
		return ErrNoSuchArea
	}

	// Ownership transfer: out of the stack, onto the area.
	card := player.PersonalStack[cardIndex]
	player.PersonalStack = append(player.PersonalStack[:cardIndex], player.PersonalStack[cardIndex+1:]...)
	targetArea.Cards = append(targetArea.Cards, card)

	if len(targetArea.Cards) == game_constants.ComboSize {
		if coversAllAnimals(targetArea.Cards) {
			player.Score += game_constants.ComboScore
			player.Position += game_constants.ComboAdvance
			// Combo cards are sunk, not moved to a discard pile. An area
			// that fills with a duplicate animal instead stays blocked at 5.
			targetArea.Cards = []game_models.Card{}
		}
	}

	r.State.CurrentPlayer = (r.State.CurrentPlayer + 1) % game_constants.MaxPlayersPerRoom

	if r.State.Winner == nil &&
		(len(player.PersonalStack) == 0 || player.Position >= game_constants.WinningPosition) {
		winner := playerID
		r.State.Winner = &winner
	}

	return nil
}

// ViewFor projects the current state for one recipient, with the opponent's
// personal stack redacted. Returns nil while the room is still waiting.
func (r *Room) ViewFor(playerID int) *game_models.GameStateView {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.State.ViewFor(playerID)
}

// coversAllAnimals flattens the animal references of the given cards and
// checks that every one of the five animals shows up at least once.
func coversAllAnimals(cards []game_models.Card) bool {
	seen := make(map[string]struct{})
	for _, c := range cards {
		for _, animal := range c.AnimalRefs() {
			seen[animal] = struct{}{}
		}
	}
	return len(seen) == len(game_constants.Animals)
}
