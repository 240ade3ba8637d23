package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/patience/internal/card"
)

func TestNewDeckComplete(t *testing.T) {
	d := New()
	require.Len(t, d, Size)

	seen := make(map[card.Card]int)
	for _, c := range d {
		assert.False(t, c.FaceUp, "new deck cards should be face-down")
		seen[card.Card{Suit: c.Suit, Rank: c.Rank}]++
	}

	assert.Len(t, seen, Size, "deck should hold 52 unique cards")
	for c, n := range seen {
		assert.Equal(t, 1, n, "card %v appears %d times", c, n)
	}
}

func TestShuffleDeterministic(t *testing.T) {
	a := New()
	b := New()
	Shuffle(a, 42)
	Shuffle(b, 42)
	assert.Equal(t, a, b, "same seed should give the same order")

	c := New()
	Shuffle(c, 43)
	assert.NotEqual(t, a, c, "different seeds should give different orders")
}

func TestShufflePreservesCards(t *testing.T) {
	d := New()
	Shuffle(d, 7)
	require.Len(t, d, Size)

	seen := make(map[card.Card]bool)
	for _, c := range d {
		seen[card.Card{Suit: c.Suit, Rank: c.Rank}] = true
	}
	assert.Len(t, seen, Size)
}

func TestSeedFromString(t *testing.T) {
	assert.Equal(t, SeedFromString("aurora"), SeedFromString("aurora"))
	assert.NotEqual(t, SeedFromString("aurora"), SeedFromString("borealis"))
}
