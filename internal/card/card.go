package card

// Color is the color of a suit, black or red
type Color int

const (
	Black Color = iota
	Red
)

// Suit is one of the four French playing card suits
type Suit int

const (
	Clubs Suit = iota
	Spades
	Hearts
	Diamonds
)

// Suits lists every suit in foundation order
var Suits = [4]Suit{Clubs, Spades, Hearts, Diamonds}

// Color returns the color of the suit
func (s Suit) Color() Color {
	switch s {
	case Hearts, Diamonds:
		return Red
	default:
		return Black
	}
}

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	}
	return "?"
}

// Rank is the rank of a card, Ace low through King high
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// Ranks lists every rank in ascending order
var Ranks = [13]Rank{
	Ace, Two, Three, Four, Five, Six, Seven,
	Eight, Nine, Ten, Jack, Queen, King,
}

func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Ten:
		return "X"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return string(rune('0' + r))
	}
}

// Card represents a playing card. Suit and Rank identify the card and never
// change; FaceUp is flipped by the game engine as cards are exposed.
type Card struct {
	Suit   Suit
	Rank   Rank
	FaceUp bool
}

// Is reports whether two cards have the same identity, ignoring facing.
func (c Card) Is(o Card) bool {
	return c.Suit == o.Suit && c.Rank == o.Rank
}

// String renders the card as rank then suit, e.g. "A♥". Face-down cards
// render as "##".
func (c Card) String() string {
	if !c.FaceUp {
		return "##"
	}
	return c.Rank.String() + c.Suit.String()
}
