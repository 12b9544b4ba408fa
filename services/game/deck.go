package game

import (
	"fmt"
	"math/rand"

	game_constants "github.com/YTD26/Big-Five/constants/game"
	game_models "github.com/YTD26/Big-Five/models/game"
)

// BuildDeck constructs the full 54 card safari deck, unshuffled:
// 7 copies of each of the 5 animals, the 5 fixed combination cards and
// 2 copies of each of the 7 specials. Card ids are unique across the deck.
func BuildDeck() []game_models.Card {
	deck := make([]game_models.Card, 0, game_constants.DeckSize)

	for _, animal := range game_constants.Animals {
		for i := 0; i < game_constants.BigFiveCopies; i++ {
			deck = append(deck, game_models.Card{
				ID:     fmt.Sprintf("bf-%s-%d", animal, i),
				Type:   game_models.KindBigFive,
				Animal: animal,
				Color:  "yellow",
			})
		}
	}

	for i, combo := range game_constants.Combinations {
		deck = append(deck, game_models.Card{
			ID:      fmt.Sprintf("combo-%d", i),
			Type:    game_models.KindCombination,
			Animals: []string{combo[0], combo[1]},
		})
	}

	for _, special := range game_constants.Specials {
		for i := 0; i < game_constants.SpecialCopies; i++ {
			deck = append(deck, game_models.Card{
				ID:      fmt.Sprintf("sp-%s-%d", special, i),
				Type:    game_models.KindSpecial,
				Special: special,
				Color:   "blue",
			})
		}
	}

	return deck
}

// ShuffleDeck permutes the deck in place (Fisher-Yates via rand.Shuffle).
// math/rand is enough here, the shuffle is about fairness, not secrecy.
func ShuffleDeck(deck []game_models.Card) {
	rand.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
}
