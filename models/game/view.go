package game

/*
 * Per-player views. The old approach was to deep-copy the whole state via
 * JSON and blank out the opponent's stack afterwards; here the projection
 * builds fresh values instead, so the transport layer can never reach the
 * authoritative GameState by reference.
 */

type PlayerView struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Hand          []Card `json:"hand"`
	PersonalStack []Card `json:"personalStack"`
	DiscardPile   []Card `json:"discardPile"`
	Score         int    `json:"score"`
	Position      int    `json:"position"`
}

type PlayAreaView struct {
	ID          int    `json:"id"`
	Cards       []Card `json:"cards"`
	MaxSpecials int    `json:"maxSpecials"`
}

type GameStateView struct {
	Deck          []Card         `json:"deck"`
	Players       []PlayerView   `json:"players"`
	PlayAreas     []PlayAreaView `json:"playAreas"`
	DiscardStack  []Card         `json:"discardStack"`
	CurrentPlayer int            `json:"currentPlayer"`
	TurnPhase     string         `json:"turnPhase"`
	Winner        *int           `json:"winner"`
}

// ViewFor projects the state for one recipient. Every other player's personal
// stack is replaced by opaque placeholders of the same length; the viewer's
// own stack is sent as is.
func (gs *GameState) ViewFor(viewerID int) *GameStateView {
	if gs == nil {
		return nil
	}

	view := &GameStateView{
		Deck:          copyCards(gs.Deck),
		DiscardStack:  copyCards(gs.DiscardStack),
		CurrentPlayer: gs.CurrentPlayer,
		TurnPhase:     gs.TurnPhase,
	}

	for _, p := range gs.Players {
		pv := PlayerView{
			ID:          p.ID,
			Name:        p.Name,
			Hand:        copyCards(p.Hand),
			DiscardPile: copyCards(p.DiscardPile),
			Score:       p.Score,
			Position:    p.Position,
		}
		if p.ID == viewerID {
			pv.PersonalStack = copyCards(p.PersonalStack)
		} else {
			pv.PersonalStack = hiddenStack(len(p.PersonalStack))
		}
		view.Players = append(view.Players, pv)
	}

	for _, area := range gs.PlayAreas {
		view.PlayAreas = append(view.PlayAreas, PlayAreaView{
			ID:          area.ID,
			Cards:       copyCards(area.Cards),
			MaxSpecials: area.MaxSpecials,
		})
	}

	if gs.Winner != nil {
		winner := *gs.Winner
		view.Winner = &winner
	}

	return view
}

// copyCards clones a card slice, including the animal list of combination
// cards, so the view shares no memory with the source.
func copyCards(cards []Card) []Card {
	out := make([]Card, len(cards))
	for i, c := range cards {
		if c.Animals != nil {
			animals := make([]string, len(c.Animals))
			copy(animals, c.Animals)
			c.Animals = animals
		}
		out[i] = c
	}
	return out
}

func hiddenStack(length int) []Card {
	stack := make([]Card, length)
	for i := range stack {
		stack[i] = HiddenCard()
	}
	return stack
}
