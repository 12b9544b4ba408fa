package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testState() *GameState {
	return &GameState{
		Deck: []Card{
			{ID: "bf-LEEUW-3", Type: KindBigFive, Animal: "LEEUW", Color: "yellow"},
		},
		Players: []*Player{
			{
				ID:   0,
				Conn: "conn-0",
				Name: "alice",
				PersonalStack: []Card{
					{ID: "bf-BUFFEL-0", Type: KindBigFive, Animal: "BUFFEL", Color: "yellow"},
					{ID: "combo-0", Type: KindCombination, Animals: []string{"LUIPAARD", "BUFFEL"}},
				},
				Hand:        []Card{},
				DiscardPile: []Card{},
				Score:       3,
				Position:    3,
			},
			{
				ID:   1,
				Conn: "conn-1",
				Name: "bob",
				PersonalStack: []Card{
					{ID: "sp-ZEBRA-0", Type: KindSpecial, Special: "ZEBRA", Color: "blue"},
					{ID: "bf-OLIFANT-1", Type: KindBigFive, Animal: "OLIFANT", Color: "yellow"},
					{ID: "bf-LEEUW-0", Type: KindBigFive, Animal: "LEEUW", Color: "yellow"},
				},
				Hand:        []Card{},
				DiscardPile: []Card{},
			},
		},
		PlayAreas: []*PlayArea{
			{ID: 0, Cards: []Card{{ID: "bf-NEUSHOORN-0", Type: KindBigFive, Animal: "NEUSHOORN"}}, MaxSpecials: 2},
			{ID: 1, Cards: []Card{}, MaxSpecials: 2},
			{ID: 2, Cards: []Card{}, MaxSpecials: 2},
		},
		DiscardStack:  []Card{},
		CurrentPlayer: 1,
		TurnPhase:     TurnPhasePlay,
	}
}

func TestViewRedactsOpponentStack(t *testing.T) {
	gs := testState()

	view := gs.ViewFor(0)
	require.NotNil(t, view)

	// Own stack comes through untouched.
	require.Len(t, view.Players[0].PersonalStack, 2)
	assert.Equal(t, "bf-BUFFEL-0", view.Players[0].PersonalStack[0].ID)
	assert.False(t, view.Players[0].PersonalStack[0].Hidden)

	// Opponent stack: same length, every entry an identical placeholder.
	require.Len(t, view.Players[1].PersonalStack, 3)
	for _, c := range view.Players[1].PersonalStack {
		assert.Equal(t, HiddenCard(), c)
	}

	// Everything else is visible to both sides.
	assert.Equal(t, 1, view.CurrentPlayer)
	assert.Equal(t, TurnPhasePlay, view.TurnPhase)
	assert.Len(t, view.PlayAreas, 3)
	assert.Equal(t, "bf-NEUSHOORN-0", view.PlayAreas[0].Cards[0].ID)
}

func TestViewIsSymmetric(t *testing.T) {
	gs := testState()

	view := gs.ViewFor(1)
	require.NotNil(t, view)

	for _, c := range view.Players[0].PersonalStack {
		assert.Equal(t, HiddenCard(), c)
	}
	assert.Equal(t, "sp-ZEBRA-0", view.Players[1].PersonalStack[0].ID)
}

func TestViewDoesNotAliasState(t *testing.T) {
	gs := testState()
	view := gs.ViewFor(0)

	// Scribbling over the view must not reach the authoritative state.
	view.Players[0].PersonalStack[0].ID = "forged"
	view.Players[0].PersonalStack[1].Animals[0] = "DODO"
	view.PlayAreas[0].Cards[0].Animal = "DODO"
	view.Deck[0].ID = "forged"
	view.CurrentPlayer = 0

	assert.Equal(t, "bf-BUFFEL-0", gs.Players[0].PersonalStack[0].ID)
	assert.Equal(t, "LUIPAARD", gs.Players[0].PersonalStack[1].Animals[0])
	assert.Equal(t, "NEUSHOORN", gs.PlayAreas[0].Cards[0].Animal)
	assert.Equal(t, "bf-LEEUW-3", gs.Deck[0].ID)
	assert.Equal(t, 1, gs.CurrentPlayer)
}

func TestViewCopiesWinner(t *testing.T) {
	gs := testState()
	winner := 0
	gs.Winner = &winner

	view := gs.ViewFor(1)
	require.NotNil(t, view.Winner)
	assert.Equal(t, 0, *view.Winner)

	*view.Winner = 1
	assert.Equal(t, 0, *gs.Winner, "view winner pointer must not alias state")
}

func TestViewOfNilState(t *testing.T) {
	var gs *GameState
	assert.Nil(t, gs.ViewFor(0))
}
