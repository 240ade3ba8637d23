package deck

import (
	"hash/fnv"
	"math/rand"

	"github.com/arcanaland/patience/internal/card"
)

// Size is the number of cards in a full deck
const Size = 52

// Deck is an ordered collection of playing cards
type Deck []card.Card

// New creates the full 52-card deck in a fixed order, one card of every rank
// for each suit. All cards start face-down.
func New() Deck {
	d := make(Deck, 0, Size)
	for _, suit := range card.Suits {
		for _, rank := range card.Ranks {
			d = append(d, card.Card{Suit: suit, Rank: rank})
		}
	}
	return d
}

// Shuffle permutes the deck in place. The permutation is fully determined by
// the seed, so the same seed always produces the same game.
func Shuffle(d Deck, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(d), func(i, j int) {
		d[i], d[j] = d[j], d[i]
	})
}

// SeedFromString hashes a seed phrase into a Shuffle seed, so games can be
// shared as memorable strings rather than numbers.
func SeedFromString(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
