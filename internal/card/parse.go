package card

import "fmt"

// Parse reads a card from a two-character notation of rank then suit, e.g.
// "AH" for the Ace of Hearts or "XC" for the Ten of Clubs. Suits may be given
// as letters (C, S, H, D) or as the suit symbols themselves. A leading "#"
// marks the card face-down; otherwise the parsed card is face-up.
func Parse(s string) (Card, error) {
	runes := []rune(s)

	faceUp := true
	if len(runes) > 0 && runes[0] == '#' {
		faceUp = false
		runes = runes[1:]
	}

	if len(runes) != 2 {
		return Card{}, fmt.Errorf("invalid card notation: %q", s)
	}

	rank, err := parseRank(runes[0])
	if err != nil {
		return Card{}, fmt.Errorf("invalid card notation %q: %v", s, err)
	}

	suit, err := parseSuit(runes[1])
	if err != nil {
		return Card{}, fmt.Errorf("invalid card notation %q: %v", s, err)
	}

	return Card{Suit: suit, Rank: rank, FaceUp: faceUp}, nil
}

// MustParse is Parse that panics on malformed notation. Intended for tests
// and fixed literals.
func MustParse(s string) Card {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// MustParseAll parses a sequence of card notations with MustParse.
func MustParseAll(strs ...string) []Card {
	cs := make([]Card, len(strs))
	for i, s := range strs {
		cs[i] = MustParse(s)
	}
	return cs
}

func parseRank(r rune) (Rank, error) {
	switch r {
	case 'A', 'a', '1':
		return Ace, nil
	case '2', '3', '4', '5', '6', '7', '8', '9':
		return Rank(r - '0'), nil
	case 'X', 'x':
		return Ten, nil
	case 'J', 'j':
		return Jack, nil
	case 'Q', 'q':
		return Queen, nil
	case 'K', 'k':
		return King, nil
	}
	return 0, fmt.Errorf("unknown rank %q", r)
}

func parseSuit(r rune) (Suit, error) {
	switch r {
	case 'C', 'c', '♣':
		return Clubs, nil
	case 'S', 's', '♠':
		return Spades, nil
	case 'H', 'h', '♥':
		return Hearts, nil
	case 'D', 'd', '♦':
		return Diamonds, nil
	}
	return 0, fmt.Errorf("unknown suit %q", r)
}
