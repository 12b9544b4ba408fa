package game_constants

const MaxPlayersPerRoom = 2
const PersonalStackSize = 8
const PlayAreaCount = 3
const MaxSpecialsPerArea = 2 // NOTE: stored on every area, not enforced yet (frontend hint)
const ComboSize = 5
const ComboScore = 3
const ComboAdvance = 3
const WinningPosition = 10

// Room code constants
const (
	RoomCodeLength     = 6
	RoomCodeCharset    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	RoomCodeMaxRetries = 10
)

// Deck composition: 35 big five + 5 combinations + 14 specials = 54
const BigFiveCopies = 7
const SpecialCopies = 2
const DeckSize = 54

// The five animals a play area must cover to score
var Animals = []string{"BUFFEL", "OLIFANT", "LUIPAARD", "LEEUW", "NEUSHOORN"}

// Fixed combination pairs. These 5 are the printed cards, not all C(5,2) pairs.
var Combinations = [][2]string{
	{"LUIPAARD", "BUFFEL"},
	{"BUFFEL", "NEUSHOORN"},
	{"LEEUW", "LUIPAARD"},
	{"LEEUW", "OLIFANT"},
	{"OLIFANT", "NEUSHOORN"},
}

var Specials = []string{"GIRAFFE", "BIG_FIVE_SPOTTER", "IJSBEER", "ZEBRA", "AASGIER", "KAMELEON", "KROKODIL"}
