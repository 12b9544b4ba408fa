package game

// Card kinds as they travel over the wire.
const (
	KindBigFive     = "bigfive"
	KindCombination = "combination"
	KindSpecial     = "special"
	KindCardBack    = "back"
)

/*
 * 'Card' is an immutable deck card. Cards are built once by the deck builder
 * and only ever move between containers afterwards, they are never edited.
 */
type Card struct {
	ID      string   `json:"id"`
	Type    string   `json:"type"`
	Animal  string   `json:"animal,omitempty"`
	Animals []string `json:"animals,omitempty"`
	Special string   `json:"special,omitempty"`
	Color   string   `json:"color,omitempty"`
	Hidden  bool     `json:"hidden,omitempty"`
}

// HiddenCard is the placeholder an opponent sees instead of a real stack card.
// Every placeholder is identical on purpose, only the count carries information.
func HiddenCard() Card {
	return Card{ID: "card-back", Type: KindCardBack, Hidden: true}
}

// AnimalRefs returns the animals this card contributes to a play area:
// one for a big five card, both for a combination card, none for specials.
func (c Card) AnimalRefs() []string {
	switch c.Type {
	case KindBigFive:
		return []string{c.Animal}
	case KindCombination:
		return c.Animals
	}
	return nil
}
