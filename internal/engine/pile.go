package engine

import "github.com/arcanaland/patience/internal/card"

// Pile is an ordered stack of cards. Index 0 is the bottom of the pile and
// the last element is the top.
type Pile []card.Card

// Len returns the number of cards in the pile
func (p Pile) Len() int {
	return len(p)
}

// Empty reports whether the pile has no cards
func (p Pile) Empty() bool {
	return len(p) == 0
}

// Peek returns the top card without removing it
func (p Pile) Peek() (card.Card, bool) {
	if len(p) == 0 {
		return card.Card{}, false
	}
	return p[len(p)-1], true
}

// Push adds cards onto the top of the pile
func (p *Pile) Push(cs ...card.Card) {
	*p = append(*p, cs...)
}

// Pop removes and returns the top card
func (p *Pile) Pop() (card.Card, bool) {
	if len(*p) == 0 {
		return card.Card{}, false
	}
	c := (*p)[len(*p)-1]
	*p = (*p)[:len(*p)-1]
	return c, true
}

// TopRun returns the top n cards in pile order, but only when all of them are
// face-up. Face-down cards sit below the exposed run and are never
// addressable on their own.
func (p Pile) TopRun(n int) ([]card.Card, bool) {
	if n < 1 || n > len(p) {
		return nil, false
	}
	run := p[len(p)-n:]
	for _, c := range run {
		if !c.FaceUp {
			return nil, false
		}
	}
	out := make([]card.Card, n)
	copy(out, run)
	return out, true
}

// FaceUpLen returns the length of the exposed run on top of the pile
func (p Pile) FaceUpLen() int {
	n := 0
	for i := len(p) - 1; i >= 0 && p[i].FaceUp; i-- {
		n++
	}
	return n
}

// takeTop removes the top n cards and returns them in pile order. Callers
// must have validated n against the pile first.
func (p *Pile) takeTop(n int) []card.Card {
	cs := make([]card.Card, n)
	copy(cs, (*p)[len(*p)-n:])
	*p = (*p)[:len(*p)-n]
	return cs
}
